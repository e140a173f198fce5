package namespec

import (
	"encoding/json"
	"fmt"
	"strings"

	"titlekit/internal/match"
	"titlekit/internal/services"
)

// Envelope is the wire form of one disambiguation request or response.
type Envelope struct {
	Input   string  `json:"input"`
	Markers []Span  `json:"markers,omitempty"`
	Matches []Entry `json:"matches,omitempty"`
}

// Span is a named range over the input, used for path markers.
type Span struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Entry is the wire form of one tagged match.
type Entry struct {
	Tag   string   `json:"tag"`
	Tags  []string `json:"tags,omitempty"`
	Value string   `json:"value"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// Parse loads an envelope from JSON and validates its structure. Blank input
// is a validation error: there is nothing to disambiguate without a name.
func Parse(raw string) (Envelope, error) {
	var env Envelope
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Envelope{}, services.Wrap(services.ErrValidation,
			"namespec", "parse", "empty input", nil)
	}
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Envelope{}, services.Wrap(services.ErrValidation,
			"namespec", "parse", "invalid JSON", err)
	}
	if err := env.Validate(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// Validate checks offsets and marker ordering.
func (e Envelope) Validate() error {
	if e.Input == "" {
		return validationErr("input name is empty", nil)
	}
	limit := len(e.Input)

	prevEnd := -1
	for i, mk := range e.Markers {
		if mk.Name == "" {
			return validationErr(fmt.Sprintf("marker %d has empty name", i), nil)
		}
		if mk.Start < 0 || mk.End > limit || mk.Start >= mk.End {
			return validationErr(fmt.Sprintf("marker %d range %d..%d out of bounds", i, mk.Start, mk.End), nil)
		}
		if mk.Start < prevEnd {
			return validationErr(fmt.Sprintf("marker %d overlaps its predecessor", i), nil)
		}
		prevEnd = mk.End
	}

	for i, m := range e.Matches {
		if m.Tag == "" {
			return validationErr(fmt.Sprintf("match %d has empty tag", i), nil)
		}
		if m.Start < 0 || m.End > limit || m.Start >= m.End {
			return validationErr(fmt.Sprintf("match %d range %d..%d out of bounds", i, m.Start, m.End), nil)
		}
	}
	return nil
}

func validationErr(message string, err error) error {
	return services.Wrap(services.ErrValidation, "namespec", "validate", message, err)
}

// Collection materializes the match collection the rules operate on.
func (e Envelope) Collection() *match.Collection {
	markers := make([]match.Marker, 0, len(e.Markers))
	for _, mk := range e.Markers {
		markers = append(markers, match.Marker{Name: mk.Name, Start: mk.Start, End: mk.End})
	}
	c := match.NewCollection(e.Input, markers)
	for _, entry := range e.Matches {
		m := &match.Match{
			Tag:   match.Tag(entry.Tag),
			Value: entry.Value,
			Start: entry.Start,
			End:   entry.End,
		}
		for _, t := range entry.Tags {
			m.Markers = append(m.Markers, match.Tag(t))
		}
		c.Append(m)
	}
	return c
}

// FromCollection captures a (possibly mutated) collection back into an
// envelope, preserving document order.
func FromCollection(c *match.Collection) Envelope {
	env := Envelope{Input: c.Input()}
	for _, mk := range c.PathMarkers() {
		env.Markers = append(env.Markers, Span{Name: mk.Name, Start: mk.Start, End: mk.End})
	}
	for _, m := range c.All() {
		entry := Entry{
			Tag:   string(m.Tag),
			Value: m.Value,
			Start: m.Start,
			End:   m.End,
		}
		for _, t := range m.Markers {
			entry.Tags = append(entry.Tags, string(t))
		}
		env.Matches = append(env.Matches, entry)
	}
	return env
}

// Encode serializes the envelope to JSON.
func (e Envelope) Encode() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Canonical returns the deterministic byte form used for cache keys.
func (e Envelope) Canonical() ([]byte, error) {
	return json.Marshal(e)
}
