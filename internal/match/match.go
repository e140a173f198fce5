package match

import "fmt"

// Tag identifies what a span represents.
type Tag string

// Primary tag vocabulary produced by the upstream extractor and consumed by
// the disambiguation rules.
const (
	TagTitle            Tag = "title"
	TagEpisodeTitle     Tag = "episodeTitle"
	TagAlternativeTitle Tag = "alternativeTitle"
	TagEpisodeNumber    Tag = "episodeNumber"
	TagEpisodeCount     Tag = "episodeCount"
	TagEpisodeDetails   Tag = "episodeDetails"
	TagSeason           Tag = "season"
	TagSeasonCount      Tag = "seasonCount"
	TagDate             Tag = "date"
	TagCRC32            Tag = "crc32"
)

// MarkerTitle is the auxiliary marker attached to spans produced by
// title-positioning logic. Chain-adjacency checks look for it rather than for
// the primary tag, so a span relabeled to episodeTitle still counts as part of
// a title run.
const MarkerTitle Tag = "title"

// Match is a tagged span over the normalized file name. Start and End are
// half-open byte offsets. Markers carries auxiliary tags in addition to the
// primary Tag.
type Match struct {
	Tag     Tag
	Markers []Tag
	Value   string
	Start   int
	End     int
}

// HasMarker reports whether the match carries the auxiliary marker tag.
func (m *Match) HasMarker(tag Tag) bool {
	for _, t := range m.Markers {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTag reports whether tag is the primary tag or one of the auxiliary
// markers.
func (m *Match) HasTag(tag Tag) bool {
	return m.Tag == tag || m.HasMarker(tag)
}

func (m *Match) String() string {
	return fmt.Sprintf("%s@%d..%d=%q", m.Tag, m.Start, m.End, m.Value)
}

// Marker delimits one hierarchical segment of the source path. Markers are
// produced before the rules run and never mutated; the last "path" marker is
// always the file-name segment.
type Marker struct {
	Name  string
	Start int
	End   int
}

// MarkerPath is the marker name used for path segments.
const MarkerPath = "path"
