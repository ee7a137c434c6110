package slug

import (
	"regexp"
	"strings"
)

const maxLen = 48

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases input and collapses every run of non-alphanumerics into a
// single dash, e.g. "JB-19 (BJC)" becomes "jb-19-bjc". Results are capped so
// they stay usable as file names.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	if s == "" {
		return "untitled"
	}
	return s
}
