// Package logging wraps log/slog with the conventions the CLI and rule
// pipeline share: standardized field names, attribute constructors, component
// loggers, decision records, and handler construction from configuration.
//
// Rule decisions are logged with the decision_type / decision_result /
// decision_reason triple so a trace of one pipeline run reads as a sequence
// of uniform decision records.
package logging
