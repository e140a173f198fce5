// Package rules defines the contract between individual disambiguation rules
// and the pipeline that schedules them.
//
// A Rule either mutates the match collection fully or not at all; there is no
// partial application and no error channel. Inapplicability ("fewer than two
// titles", "no season in this segment") is an Outcome, not a failure. Every
// rule must be idempotent: applied a second time to its own output it reports
// not-applied and changes nothing.
//
// Execution order is an explicit directed acyclic graph over rule IDs.
// Graph validates the edges once at construction and produces a deterministic
// topological order, so the position of every rule is a documented choice
// rather than an artifact of registration order.
package rules
