package episodetitle

import (
	"strings"
	"testing"

	"titlekit/internal/match"
)

// pathCollection joins segments with "/" and produces one path marker per
// segment, shallowest first.
func pathCollection(t *testing.T, segments ...string) *match.Collection {
	t.Helper()
	input := strings.Join(segments, "/")
	markers := make([]match.Marker, 0, len(segments))
	offset := 0
	for _, seg := range segments {
		markers = append(markers, match.Marker{Name: match.MarkerPath, Start: offset, End: offset + len(seg)})
		offset += len(seg) + 1
	}
	return match.NewCollection(input, markers)
}

// locate returns the absolute span of needle inside the collection input.
func locate(t *testing.T, c *match.Collection, needle string) (int, int) {
	t.Helper()
	idx := strings.Index(c.Input(), needle)
	if idx < 0 {
		t.Fatalf("fixture error: %q not in %q", needle, c.Input())
	}
	return idx, idx + len(needle)
}

func TestFilepart3InfersSeriesTitleFromGrandparent(t *testing.T) {
	c := pathCollection(t, "Show Name", "Season 1", "Show Name S01E02.ext")

	_, seasonEnd := locate(t, c, "Season 1")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: seasonEnd - 1, End: seasonEnd})

	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	outcome := Filepart3EpisodeTitle().Apply(c)
	if !outcome.Applied {
		t.Fatalf("expected title inference, got %+v", outcome)
	}

	titles := c.Named(match.TagTitle)
	if len(titles) != 1 {
		t.Fatalf("expected one inferred title, got %v", titles)
	}
	if titles[0].Value != "Show Name" || titles[0].Start != 0 || titles[0].End != 9 {
		t.Fatalf("unexpected inferred title %v", titles[0])
	}
}

func TestFilepart3SkipsSeparatorOnlySegment(t *testing.T) {
	c := pathCollection(t, "---", "Season 1", "S01E02.ext")

	_, seasonEnd := locate(t, c, "Season 1")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: seasonEnd - 1, End: seasonEnd})
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	outcome := Filepart3EpisodeTitle().Apply(c)
	if outcome.Applied {
		t.Fatalf("separator-only segment must not produce a title: %+v", outcome)
	}
	if len(c.Named(match.TagTitle)) != 0 {
		t.Fatal("no title expected")
	}
}

func TestFilepart3RequiresThreeSegments(t *testing.T) {
	c := pathCollection(t, "Season 1", "S01E02.ext")
	outcome := Filepart3EpisodeTitle().Apply(c)
	if outcome.Applied || outcome.Reason != "fewer_than_three_path_segments" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestFilepart3RequiresSeasonInDirectory(t *testing.T) {
	c := pathCollection(t, "Show Name", "Extras", "Show Name E02.ext")
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	outcome := Filepart3EpisodeTitle().Apply(c)
	if outcome.Applied || outcome.Reason != "no_season_in_directory" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestFilepart3RequiresEpisodeNumberInFilename(t *testing.T) {
	c := pathCollection(t, "Show Name", "Season 1", "behind the scenes.ext")
	_, seasonEnd := locate(t, c, "Season 1")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: seasonEnd - 1, End: seasonEnd})

	outcome := Filepart3EpisodeTitle().Apply(c)
	if outcome.Applied || outcome.Reason != "no_episode_number_in_filename" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestFilepart2InfersSeriesTitleFromSharedSegment(t *testing.T) {
	c := pathCollection(t, "Show Name S01", "E02.ext")

	s01Start, s01End := locate(t, c, "S01")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: s01Start, End: s01End})
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	outcome := Filepart2EpisodeTitle().Apply(c)
	if !outcome.Applied {
		t.Fatalf("expected title inference, got %+v", outcome)
	}

	titles := c.Named(match.TagTitle)
	if len(titles) != 1 {
		t.Fatalf("expected one inferred title, got %v", titles)
	}
	if titles[0].Value != "Show Name" || titles[0].Start != 0 || titles[0].End != 9 {
		t.Fatalf("unexpected inferred title %v", titles[0])
	}
}

func TestFilepart2RequiresTwoSegments(t *testing.T) {
	c := pathCollection(t, "E02.ext")
	outcome := Filepart2EpisodeTitle().Apply(c)
	if outcome.Applied || outcome.Reason != "fewer_than_two_path_segments" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestFilepart2IdempotentAfterInference(t *testing.T) {
	c := pathCollection(t, "Show Name S01", "E02.ext")
	s01Start, s01End := locate(t, c, "S01")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: s01Start, End: s01End})
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	rule := Filepart2EpisodeTitle()
	if outcome := rule.Apply(c); !outcome.Applied {
		t.Fatalf("first run should infer: %+v", outcome)
	}
	if outcome := rule.Apply(c); outcome.Applied || outcome.Reason != "title_exists_in_segment" {
		t.Fatalf("second run must skip on the existing title: %+v", outcome)
	}
	if len(c.Named(match.TagTitle)) != 1 {
		t.Fatal("exactly one inferred title expected")
	}
}

func TestFilepart2IdempotentWithSplitSegment(t *testing.T) {
	// A date splits the shared segment into two holes; the second run must
	// not promote the leftover hole into an extra title.
	c := pathCollection(t, "Show Name 2010 Rest S01", "E02.ext")

	dateStart, dateEnd := locate(t, c, "2010")
	c.Append(&match.Match{Tag: match.TagDate, Value: "2010", Start: dateStart, End: dateEnd})
	s01Start, s01End := locate(t, c, "S01")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: s01Start, End: s01End})
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	rule := Filepart2EpisodeTitle()
	if outcome := rule.Apply(c); !outcome.Applied {
		t.Fatalf("first run should infer: %+v", outcome)
	}
	titles := c.Named(match.TagTitle)
	if len(titles) != 1 || titles[0].Value != "Show Name" {
		t.Fatalf("expected only the leading title, got %v", titles)
	}

	if outcome := rule.Apply(c); outcome.Applied || outcome.Reason != "title_exists_in_segment" {
		t.Fatalf("second run must skip on the existing title: %+v", outcome)
	}
	titles = c.Named(match.TagTitle)
	if len(titles) != 1 {
		t.Fatalf("second run added a title: %v", titles)
	}
}

func TestFilepart3SkipsWhenSegmentHoldsTitle(t *testing.T) {
	c := pathCollection(t, "Show Name", "Season 1", "Show Name S01E02.ext")

	tStart, tEnd := locate(t, c, "Show Name")
	c.Append(&match.Match{Tag: match.TagTitle, Markers: []match.Tag{match.MarkerTitle}, Value: "Show Name", Start: tStart, End: tEnd})
	_, seasonEnd := locate(t, c, "Season 1")
	c.Append(&match.Match{Tag: match.TagSeason, Value: "1", Start: seasonEnd - 1, End: seasonEnd})
	epStart, epEnd := locate(t, c, "E02")
	c.Append(&match.Match{Tag: match.TagEpisodeNumber, Value: "2", Start: epStart, End: epEnd})

	outcome := Filepart3EpisodeTitle().Apply(c)
	if outcome.Applied || outcome.Reason != "title_exists_in_segment" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if len(c.Named(match.TagTitle)) != 1 {
		t.Fatal("no extra title expected")
	}
}
