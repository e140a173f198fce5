package textutil

import "strings"

// Seps are the separator characters recognized between spans of a normalized
// file name.
const Seps = " .,;:-_/\\|[](){}+*=~#"

// TitleSeps are the separators trimmed around candidate title holes. Quotes
// join the base set because release names often wrap titles in them.
const TitleSeps = Seps + "'`\""

// Cleanup collapses every run of separator characters into a single space and
// trims leading and trailing whitespace. It is the formatting function
// applied to hole text before it becomes a title value.
func Cleanup(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	pendingSpace := false
	for _, r := range value {
		if r < 128 && strings.ContainsRune(Seps, r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsSep reports whether b is a separator byte.
func IsSep(b byte) bool {
	return strings.IndexByte(Seps, b) >= 0
}
