package match

// Predicate selects matches during queries. The set of variants is closed on
// purpose: rule definitions stay declarative and each variant is trivially
// testable, instead of ad-hoc closures scattered through the rules.
type Predicate interface {
	Matches(*Match) bool
}

type tagEquals Tag

func (p tagEquals) Matches(m *Match) bool { return m.Tag == Tag(p) }

// TagEquals selects matches whose primary tag is t.
func TagEquals(t Tag) Predicate { return tagEquals(t) }

type hasAnyTag []Tag

func (p hasAnyTag) Matches(m *Match) bool {
	for _, t := range p {
		if m.HasTag(t) {
			return true
		}
	}
	return false
}

// HasAnyTag selects matches carrying any of the given tags, primary or
// auxiliary marker.
func HasAnyTag(tags ...Tag) Predicate { return hasAnyTag(tags) }

type markerTag Tag

func (p markerTag) Matches(m *Match) bool { return m.HasMarker(Tag(p)) }

// MarkerTag selects matches carrying the given auxiliary marker tag.
func MarkerTag(t Tag) Predicate { return markerTag(t) }

type nonEmptyValue struct{}

func (nonEmptyValue) Matches(m *Match) bool { return m.Value != "" }

// NonEmptyValue selects matches whose formatted value is not empty.
func NonEmptyValue() Predicate { return nonEmptyValue{} }

type anyMatch struct{}

func (anyMatch) Matches(*Match) bool { return true }

// Any selects every match.
func Any() Predicate { return anyMatch{} }
