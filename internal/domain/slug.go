package domain

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify turns a title into a URL-safe slug: lower-cased, non-word
// characters removed, runs of whitespace, underscores and hyphens collapsed
// into one hyphen, leading and trailing hyphens trimmed.
//
//	Slugify("Spiti Valley Trek") == "spiti-valley-trek"
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
