// Package namespec defines the envelope the upstream span extractor hands to
// the disambiguation pipeline and the pipeline hands back downstream.
//
// The Envelope carries the normalized file name, the ordered path-segment
// markers, and the tagged matches, all offset-addressed into the name with
// half-open byte ranges. Parse validates structure (offsets in range, ordered
// non-overlapping markers) but never inspects what the spans mean: tag
// recognition is the extractor's job, and unknown tags pass through so new
// upstream properties do not break this stage.
//
// Entry points: Parse loads and validates an envelope, Envelope.Collection
// materializes the match collection the rules mutate, and FromCollection
// captures the mutated collection back into an envelope for Encode.
package namespec
