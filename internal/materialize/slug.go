package materialize

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a title to a file-name slug: lower-cased, with runs of
// non-alphanumeric characters collapsed to single hyphens and no leading
// or trailing hyphen.
func Slug(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
