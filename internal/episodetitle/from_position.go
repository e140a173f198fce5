package episodetitle

import (
	"titlekit/internal/match"
	"titlekit/internal/rules"
)

// episodeTitleFromPosition carves an episode title out of an unmatched gap
// when none exists yet. It specializes the positional algorithm:
//
//   - only path segments that already hold a title span are scanned, so the
//     episode title is looked for next to the main title, never in an
//     unrelated segment;
//   - a hole qualifies only when it follows episode context or the name
//     carries a crc32 checksum;
//   - episodeDetails spans never get absorbed as title text, and one that is
//     not preceded by a season stays in the collection uncropped.
type episodeTitleFromPosition struct{}

// EpisodeTitleFromPosition constructs the rule.
func EpisodeTitleFromPosition() rules.Rule { return episodeTitleFromPosition{} }

func (episodeTitleFromPosition) ID() string { return IDEpisodeTitleFromPosition }

func (episodeTitleFromPosition) DependsOn() []string {
	return []string{IDTitleToEpisodeTitle}
}

func (episodeTitleFromPosition) Apply(c *match.Collection) rules.Outcome {
	if len(c.Named(match.TagEpisodeTitle)) > 0 {
		return rules.Skipped("episode_title_exists")
	}

	p := positional{
		target:  match.TagEpisodeTitle,
		anchors: []match.Tag{match.TagTitle},
		ignore:  match.TagEquals(match.TagEpisodeDetails),
		filepartOK: func(c *match.Collection, fp match.Marker) bool {
			return c.RangeFirst(fp.Start, fp.End, match.TagEquals(match.TagTitle)) != nil
		},
		holeOK: func(c *match.Collection, h match.Hole) bool {
			if c.PreviousAt(h.Start, match.HasAnyTag(anchorTags...)) != nil {
				return true
			}
			return len(c.Named(match.TagCRC32)) > 0
		},
		keepCrop: func(c *match.Collection, m *match.Match) (bool, bool) {
			if m.Tag == match.TagEpisodeDetails &&
				c.Previous(m, match.TagEquals(match.TagSeason)) == nil {
				// Keep the details span distinct, and keep its text
				// inside the new title span.
				return true, false
			}
			return false, true
		},
	}
	return p.apply(c)
}
