// Package pipeline executes the disambiguation rule graph over one match
// collection.
//
// Execution is strictly sequential: rules run one at a time in topological
// order, each observing every mutation made by its predecessors. The engine
// emits one structured decision record per rule so a pipeline run can be
// traced from its log output alone.
package pipeline
