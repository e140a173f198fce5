package episodetitle

import (
	"titlekit/internal/match"
	"titlekit/internal/rules"
)

// filepart3EpisodeTitle infers a missing series title from the grandparent
// path segment in the "Series Name/Season 1/S01E02 file" layout: episode
// number in the file-name segment, season in the directory above it, series
// name in the segment above that.
type filepart3EpisodeTitle struct{}

// Filepart3EpisodeTitle constructs the rule.
func Filepart3EpisodeTitle() rules.Rule { return filepart3EpisodeTitle{} }

func (filepart3EpisodeTitle) ID() string { return IDFilepart3EpisodeTitle }

func (filepart3EpisodeTitle) DependsOn() []string { return nil }

func (filepart3EpisodeTitle) Apply(c *match.Collection) rules.Outcome {
	parts := c.PathMarkers()
	if len(parts) < 3 {
		return rules.Skipped("fewer_than_three_path_segments")
	}
	filename := parts[len(parts)-1]
	directory := parts[len(parts)-2]
	subdirectory := parts[len(parts)-3]

	return appendSeriesTitle(c, filename, directory, subdirectory)
}

// filepart2EpisodeTitle handles the flatter "Series Name S01/E02 file"
// layout: season shares the directory segment with the series name, so the
// title hole is carved from the directory itself.
type filepart2EpisodeTitle struct{}

// Filepart2EpisodeTitle constructs the rule.
func Filepart2EpisodeTitle() rules.Rule { return filepart2EpisodeTitle{} }

func (filepart2EpisodeTitle) ID() string { return IDFilepart2EpisodeTitle }

func (filepart2EpisodeTitle) DependsOn() []string { return nil }

func (filepart2EpisodeTitle) Apply(c *match.Collection) rules.Outcome {
	parts := c.PathMarkers()
	if len(parts) < 2 {
		return rules.Skipped("fewer_than_two_path_segments")
	}
	filename := parts[len(parts)-1]
	directory := parts[len(parts)-2]

	return appendSeriesTitle(c, filename, directory, directory)
}

// appendSeriesTitle fires when the file-name segment holds an episode number
// and the directory segment holds a season, appending the first usable hole
// of the title segment as a new title match. A title already present in the
// title segment suppresses the inference, which also makes the rule
// idempotent on its own output.
func appendSeriesTitle(c *match.Collection, filename, directory, titlePart match.Marker) rules.Outcome {
	if c.RangeFirst(titlePart.Start, titlePart.End, match.TagEquals(match.TagTitle)) != nil {
		return rules.Skipped("title_exists_in_segment")
	}
	if c.RangeFirst(filename.Start, filename.End, match.TagEquals(match.TagEpisodeNumber)) == nil {
		return rules.Skipped("no_episode_number_in_filename")
	}
	if c.RangeFirst(directory.Start, directory.End, match.TagEquals(match.TagSeason)) == nil {
		return rules.Skipped("no_season_in_directory")
	}

	hole, ok := c.FirstHole(titlePart.Start, titlePart.End, titleHoleOptions())
	if !ok {
		return rules.Skipped("no_usable_hole")
	}

	m := &match.Match{
		Tag:     match.TagTitle,
		Markers: []match.Tag{match.MarkerTitle},
		Value:   hole.Value,
		Start:   hole.Start,
		End:     hole.End,
	}
	c.Append(m)
	return rules.AppliedTo("series_title_from_path", m)
}
