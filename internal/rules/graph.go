package rules

import (
	"fmt"
	"sort"
)

// Graph is an immutable, validated DAG of rules. Construction rejects
// duplicate IDs, edges to unknown rules, self-loops, and cycles; Order is
// computed once and is deterministic.
type Graph struct {
	rules map[string]Rule
	order []Rule
}

// NewGraph builds and validates a rule graph from the rules and their
// declared dependencies.
func NewGraph(list []Rule) (*Graph, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("rule graph: no rules")
	}

	byID := make(map[string]Rule, len(list))
	for _, r := range list {
		id := r.ID()
		if id == "" {
			return nil, fmt.Errorf("rule graph: rule with empty id")
		}
		if _, exists := byID[id]; exists {
			return nil, fmt.Errorf("rule graph: duplicate rule id %q", id)
		}
		byID[id] = r
	}

	indeg := make(map[string]int, len(list))
	dependents := make(map[string][]string, len(list))
	for _, r := range list {
		indeg[r.ID()] += 0
		for _, dep := range r.DependsOn() {
			if _, known := byID[dep]; !known {
				return nil, fmt.Errorf("rule graph: rule %q depends on unknown rule %q", r.ID(), dep)
			}
			if dep == r.ID() {
				return nil, fmt.Errorf("rule graph: rule %q depends on itself", r.ID())
			}
			dependents[dep] = append(dependents[dep], r.ID())
			indeg[r.ID()]++
		}
	}

	// Kahn's algorithm with a lexicographic tie-break keeps the order
	// stable across runs and registration shuffles.
	var ready []string
	for id, d := range indeg {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]Rule, 0, len(list))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, byID[id])
		released := false
		for _, next := range dependents[id] {
			indeg[next]--
			if indeg[next] == 0 {
				ready = append(ready, next)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}
	if len(order) != len(list) {
		return nil, fmt.Errorf("rule graph: dependency cycle among %d rules", len(list)-len(order))
	}

	return &Graph{rules: byID, order: order}, nil
}

// Order returns the rules in execution order.
func (g *Graph) Order() []Rule {
	out := make([]Rule, len(g.order))
	copy(out, g.order)
	return out
}

// Lookup returns the rule registered under id, if any.
func (g *Graph) Lookup(id string) (Rule, bool) {
	r, ok := g.rules[id]
	return r, ok
}

// Len returns the number of rules in the graph.
func (g *Graph) Len() int { return len(g.order) }
