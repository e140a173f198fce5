package episodetitle

import (
	"titlekit/internal/match"
	"titlekit/internal/textutil"
)

// Rule identifiers, used for dependency edges and decision logs.
const (
	IDFilepart3EpisodeTitle    = "filepart3-episode-title"
	IDFilepart2EpisodeTitle    = "filepart2-episode-title"
	IDTitleToEpisodeTitle      = "title-to-episode-title"
	IDEpisodeTitleFromPosition = "episode-title-from-position"
	IDAlternativeTitleReplace  = "alternative-title-replace"
)

// anchorTags are the tags whose presence just before a span marks episode
// context: a file name that already looks like a single-episode release.
var anchorTags = []match.Tag{
	match.TagEpisodeNumber,
	match.TagEpisodeDetails,
	match.TagEpisodeCount,
	match.TagSeason,
	match.TagSeasonCount,
	match.TagDate,
	match.TagTitle,
}

// anchored reports whether m immediately follows an episode-context anchor,
// or a crc32 checksum exists anywhere in the collection. The checksum acts as
// a release fingerprint: names carrying one are single-episode releases in
// practice, even without an adjacent anchor.
func anchored(c *match.Collection, m *match.Match) bool {
	if c.Previous(m, match.HasAnyTag(anchorTags...)) != nil {
		return true
	}
	return len(c.Named(match.TagCRC32)) > 0
}

// titleHoleOptions is the hole policy shared by the title-producing rules.
func titleHoleOptions() match.HoleOptions {
	return match.HoleOptions{
		Seps:      textutil.TitleSeps,
		Formatter: textutil.Cleanup,
	}
}
