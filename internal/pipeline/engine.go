package pipeline

import (
	"log/slog"

	"titlekit/internal/logging"
	"titlekit/internal/match"
	"titlekit/internal/rules"
)

// Engine runs a validated rule graph over match collections.
type Engine struct {
	graph  *rules.Graph
	logger *slog.Logger
}

// New builds an engine from the given rules, validating their dependency
// edges once.
func New(list []rules.Rule, logger *slog.Logger) (*Engine, error) {
	graph, err := rules.NewGraph(list)
	if err != nil {
		return nil, err
	}
	return &Engine{
		graph:  graph,
		logger: logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// SetLogger updates the engine's logging destination.
func (e *Engine) SetLogger(logger *slog.Logger) {
	e.logger = logging.NewComponentLogger(logger, "pipeline")
}

// RuleResult records one rule's outcome within a run.
type RuleResult struct {
	RuleID  string
	Outcome rules.Outcome
}

// Report summarizes one pipeline run.
type Report struct {
	Results []RuleResult
}

// AppliedCount returns how many rules mutated the collection.
func (r Report) AppliedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Applied {
			n++
		}
	}
	return n
}

// Order returns the engine's resolved execution order.
func (e *Engine) Order() []rules.Rule {
	return e.graph.Order()
}

// Run applies every rule in graph order to the collection, mutating it in
// place, and returns the per-rule outcomes.
func (e *Engine) Run(c *match.Collection) Report {
	report := Report{Results: make([]RuleResult, 0, e.graph.Len())}
	for _, rule := range e.graph.Order() {
		outcome := rule.Apply(c)
		report.Results = append(report.Results, RuleResult{RuleID: rule.ID(), Outcome: outcome})

		result := "skipped"
		if outcome.Applied {
			result = "applied"
		}
		attrs := logging.DecisionAttrs("rule_application", result, outcome.Reason)
		attrs = append(attrs,
			logging.String(logging.FieldRule, rule.ID()),
			logging.Int("affected", len(outcome.Affected)),
		)
		e.logger.Debug("rule decision", logging.Args(attrs...)...)
	}
	return report
}
