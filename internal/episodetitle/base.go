package episodetitle

import (
	"strings"

	"titlekit/internal/match"
	"titlekit/internal/rules"
	"titlekit/internal/textutil"
)

// positional is the generic positional-title algorithm: scan eligible path
// segments for unmatched gaps adjacent to anchor tags and promote the first
// accepted gap to a new target match. The hook fields let a specialization
// narrow which segments and holes qualify and decide the fate of ignored
// matches swallowed by a candidate gap.
type positional struct {
	target  match.Tag
	anchors []match.Tag

	// ignore marks matches that do not block a hole; nil ignores nothing.
	ignore match.Predicate
	// filepartOK gates which path segments are scanned; nil accepts all.
	filepartOK func(c *match.Collection, fp match.Marker) bool
	// holeOK accepts a candidate hole; nil falls back to anchor adjacency.
	holeOK func(c *match.Collection, h match.Hole) bool
	// keepCrop decides what happens to an ignored match inside an accepted
	// hole: keep retains it as a distinct match, crop excludes its range
	// from the new title span. Nil absorbs and crops.
	keepCrop func(c *match.Collection, m *match.Match) (keep, crop bool)
}

// apply runs the algorithm and appends at most one target match.
func (p positional) apply(c *match.Collection) rules.Outcome {
	fileparts := c.PathMarkers()
	if len(fileparts) == 0 {
		return rules.Skipped("no_path_markers")
	}

	opts := titleHoleOptions()
	opts.Ignore = p.ignore

	for _, fp := range fileparts {
		if p.filepartOK != nil && !p.filepartOK(c, fp) {
			continue
		}
		for _, hole := range c.Holes(fp.Start, fp.End, opts) {
			if !p.acceptHole(c, hole) {
				continue
			}
			if m, ok := p.carve(c, hole); ok {
				return rules.AppliedTo("hole_promoted", m)
			}
		}
	}
	return rules.Skipped("no_eligible_hole")
}

func (p positional) acceptHole(c *match.Collection, h match.Hole) bool {
	if p.holeOK != nil {
		return p.holeOK(c, h)
	}
	return c.PreviousAt(h.Start, match.HasAnyTag(p.anchors...)) != nil
}

// carve resolves ignored matches inside the hole and appends the target
// match. Kept matches stay in the collection; absorbed ones are removed, and
// cropping shrinks the span to the portion before the cropped match (or after
// it when nothing useful remains in front).
func (p positional) carve(c *match.Collection, hole match.Hole) (*match.Match, bool) {
	start, end := hole.Start, hole.End
	var absorbed []*match.Match

	if p.ignore != nil {
		for _, m := range c.Range(hole.Start, hole.End, p.ignore) {
			keep, crop := true, false
			if p.keepCrop != nil {
				keep, crop = p.keepCrop(c, m)
			} else {
				keep, crop = false, true
			}
			if crop {
				if m.Start > start {
					end = min(end, m.Start)
				} else {
					start = max(start, m.End)
				}
			}
			if !keep {
				absorbed = append(absorbed, m)
			}
		}
	}

	start, end, ok := trimSeps(c.Input(), start, end)
	if !ok {
		return nil, false
	}
	value := textutil.Cleanup(c.Input()[start:end])
	if value == "" {
		return nil, false
	}

	for _, m := range absorbed {
		c.Remove(m)
	}
	nm := &match.Match{
		Tag:     p.target,
		Markers: []match.Tag{match.MarkerTitle},
		Value:   value,
		Start:   start,
		End:     end,
	}
	c.Append(nm)
	return nm, true
}

func trimSeps(input string, start, end int) (int, int, bool) {
	for start < end && strings.IndexByte(textutil.TitleSeps, input[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(textutil.TitleSeps, input[end-1]) >= 0 {
		end--
	}
	return start, end, start < end
}
