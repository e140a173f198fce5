package rules

import "titlekit/internal/match"

// Rule is one disambiguation step over the shared match collection.
type Rule interface {
	// ID is the stable identifier used for dependency edges and logging.
	ID() string
	// DependsOn lists the IDs of rules that must run before this one.
	DependsOn() []string
	// Apply inspects the collection and either mutates it fully or leaves
	// it untouched.
	Apply(c *match.Collection) Outcome
}

// Outcome reports what a rule did. Reason is a short machine-friendly token
// ("promoted", "no_titles", "episode_title_exists") used in decision logs.
type Outcome struct {
	Applied  bool
	Reason   string
	Affected []*match.Match
}

// Skipped builds a not-applied outcome with the given reason.
func Skipped(reason string) Outcome {
	return Outcome{Reason: reason}
}

// AppliedTo builds an applied outcome covering the given matches.
func AppliedTo(reason string, affected ...*match.Match) Outcome {
	return Outcome{Applied: true, Reason: reason, Affected: affected}
}
