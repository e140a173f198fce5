package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// DisplayTitle normalizes a title value for presentation: cleans separators
// and title-cases the words. Values already containing mixed case are left as
// extracted, since the release likely carried intentional casing.
func DisplayTitle(value string) string {
	cleaned := Cleanup(value)
	if cleaned == "" {
		return ""
	}
	lower := strings.ToLower(cleaned)
	upper := strings.ToUpper(cleaned)
	if cleaned != lower && cleaned != upper {
		return cleaned
	}
	return titleCaser.String(lower)
}
