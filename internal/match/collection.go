package match

import (
	"sort"
	"strings"
)

// Collection is the mutable match set over one normalized file name. Matches
// stay sorted in document order (start, then end); markers are read-only.
type Collection struct {
	input   string
	matches []*Match
	markers []Marker
}

// NewCollection builds a collection over input with the given path markers.
// Markers are stored as provided; callers are expected to hand them over in
// path order, shallowest first.
func NewCollection(input string, markers []Marker) *Collection {
	return &Collection{input: input, markers: markers}
}

// Input returns the normalized file name the spans are addressed into.
func (c *Collection) Input() string { return c.input }

// All returns the matches in document order. The returned slice is a copy;
// the matches themselves are shared.
func (c *Collection) All() []*Match {
	out := make([]*Match, len(c.matches))
	copy(out, c.matches)
	return out
}

// Len returns the number of matches.
func (c *Collection) Len() int { return len(c.matches) }

// Named returns all matches with the given primary tag, in document order.
func (c *Collection) Named(tag Tag) []*Match {
	var out []*Match
	for _, m := range c.matches {
		if m.Tag == tag {
			out = append(out, m)
		}
	}
	return out
}

// First returns the first match in document order satisfying pred, or nil.
func (c *Collection) First(pred Predicate) *Match {
	for _, m := range c.matches {
		if pred.Matches(m) {
			return m
		}
	}
	return nil
}

// Previous returns the nearest match preceding before that satisfies pred.
// It walks backward from before.Start to the nearest position where any match
// ends, skipping unmatched gap content, and considers only the matches ending
// at that position: if none of them satisfies pred the answer is nil, not a
// farther match.
func (c *Collection) Previous(before *Match, pred Predicate) *Match {
	for pos := before.Start; pos > 0; pos-- {
		ending := c.endingAt(pos)
		if len(ending) == 0 {
			continue
		}
		for _, m := range ending {
			if pred.Matches(m) {
				return m
			}
		}
		return nil
	}
	return nil
}

// PreviousAt behaves like Previous for a bare position instead of a match.
func (c *Collection) PreviousAt(pos int, pred Predicate) *Match {
	return c.Previous(&Match{Start: pos}, pred)
}

// Range returns the matches fully inside [start,end) satisfying pred, in
// document order.
func (c *Collection) Range(start, end int, pred Predicate) []*Match {
	var out []*Match
	for _, m := range c.matches {
		if m.Start >= start && m.End <= end && pred.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// RangeFirst returns the first match fully inside [start,end) satisfying
// pred, or nil.
func (c *Collection) RangeFirst(start, end int, pred Predicate) *Match {
	for _, m := range c.matches {
		if m.Start >= start && m.End <= end && pred.Matches(m) {
			return m
		}
	}
	return nil
}

// PathMarkers returns the ordered path-segment markers.
func (c *Collection) PathMarkers() []Marker {
	var out []Marker
	for _, mk := range c.markers {
		if mk.Name == MarkerPath {
			out = append(out, mk)
		}
	}
	return out
}

// ChainBefore returns the nearest match satisfying pred within the contiguous
// run of matches ending at pos. The run extends backward across matches and
// across bare separator bytes from seps; any other unmatched content breaks
// the chain.
func (c *Collection) ChainBefore(pos int, seps string, pred Predicate) *Match {
	var chain []*Match
	cur := pos
	for cur > 0 {
		ending := c.endingAt(cur)
		if len(ending) > 0 {
			next := cur
			for _, m := range ending {
				chain = append(chain, m)
				if m.Start < next {
					next = m.Start
				}
			}
			cur = next
			continue
		}
		if strings.IndexByte(seps, c.input[cur-1]) >= 0 {
			cur--
			continue
		}
		break
	}
	for _, m := range chain {
		if pred.Matches(m) {
			return m
		}
	}
	return nil
}

// Append inserts m keeping document order. Ties on start position preserve
// insertion order behind existing matches, so a relabeled span stays where
// its predecessor was relative to equal-offset neighbors.
func (c *Collection) Append(m *Match) {
	idx := sort.Search(len(c.matches), func(i int) bool {
		o := c.matches[i]
		if o.Start != m.Start {
			return o.Start > m.Start
		}
		return o.End > m.End
	})
	c.matches = append(c.matches, nil)
	copy(c.matches[idx+1:], c.matches[idx:])
	c.matches[idx] = m
}

// Remove deletes m from the collection. Identity comparison: only the exact
// match pointer is removed.
func (c *Collection) Remove(m *Match) bool {
	for i, o := range c.matches {
		if o == m {
			c.matches = append(c.matches[:i], c.matches[i+1:]...)
			return true
		}
	}
	return false
}

// Relabel atomically replaces m with a copy carrying tag as its primary tag,
// preserving span, value, and auxiliary markers. No intermediate state is
// observable: callers holding the collection see either the old match or the
// new one. Returns the new match, or nil when m is not in the collection.
func (c *Collection) Relabel(m *Match, tag Tag) *Match {
	if !c.Remove(m) {
		return nil
	}
	renamed := &Match{
		Tag:     tag,
		Markers: m.Markers,
		Value:   m.Value,
		Start:   m.Start,
		End:     m.End,
	}
	c.Append(renamed)
	return renamed
}

func (c *Collection) endingAt(pos int) []*Match {
	var out []*Match
	for _, m := range c.matches {
		if m.End == pos {
			out = append(out, m)
		}
	}
	return out
}
