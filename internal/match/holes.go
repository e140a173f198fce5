package match

import "strings"

// Hole is a maximal sub-range of the input not covered by any match. Holes
// are the substrate new title spans are carved from; they are computed on
// demand and never stored.
type Hole struct {
	Start int
	End   int
	Value string
}

// HoleOptions controls hole detection.
type HoleOptions struct {
	// Seps are the separator bytes trimmed from both edges of a hole.
	Seps string
	// Formatter post-processes the trimmed text; a hole whose formatted
	// value is empty is dropped. Nil keeps the raw text.
	Formatter func(string) string
	// Ignore marks matches that do not count as coverage, so a hole may
	// span them.
	Ignore Predicate
}

// Holes returns the maximal uncovered sub-ranges of [start,end), trimmed of
// separators, formatted, and filtered of empty values, in document order.
func (c *Collection) Holes(start, end int, opts HoleOptions) []Hole {
	if start < 0 {
		start = 0
	}
	if end > len(c.input) {
		end = len(c.input)
	}
	if start >= end {
		return nil
	}

	covered := make([]bool, end-start)
	for _, m := range c.matches {
		if m.End <= start || m.Start >= end {
			continue
		}
		if opts.Ignore != nil && opts.Ignore.Matches(m) {
			continue
		}
		lo, hi := m.Start, m.End
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		for i := lo; i < hi; i++ {
			covered[i-start] = true
		}
	}

	var out []Hole
	i := 0
	for i < len(covered) {
		if covered[i] {
			i++
			continue
		}
		j := i
		for j < len(covered) && !covered[j] {
			j++
		}
		if h, ok := c.makeHole(start+i, start+j, opts); ok {
			out = append(out, h)
		}
		i = j
	}
	return out
}

// FirstHole returns the first non-empty hole in [start,end), if any.
func (c *Collection) FirstHole(start, end int, opts HoleOptions) (Hole, bool) {
	holes := c.Holes(start, end, opts)
	if len(holes) == 0 {
		return Hole{}, false
	}
	return holes[0], true
}

func (c *Collection) makeHole(start, end int, opts HoleOptions) (Hole, bool) {
	for start < end && strings.IndexByte(opts.Seps, c.input[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(opts.Seps, c.input[end-1]) >= 0 {
		end--
	}
	if start >= end {
		return Hole{}, false
	}
	value := c.input[start:end]
	if opts.Formatter != nil {
		value = opts.Formatter(value)
	}
	if value == "" {
		return Hole{}, false
	}
	return Hole{Start: start, End: end, Value: value}, true
}
