// Package services carries the error classification shared by the supporting
// surfaces (envelope parsing, configuration, cache).
//
// Sentinel errors tag failures for later classification with errors.Is, while
// Wrap folds stage and operation context into the message. The rule pipeline
// itself never produces errors: rule inapplicability is an outcome, not a
// failure.
package services
