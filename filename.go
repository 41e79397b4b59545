package notemd

import (
	"regexp"
	"strings"
)

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
	dashRuns             = regexp.MustCompile(`-+`)
)

// SanitizeFilename turns a page title into a string safe to use as a file
// name: characters illegal in filenames become "-", whitespace runs collapse
// to a single "-", repeated dashes collapse, leading/trailing dashes are
// trimmed, and the result is truncated to 100 characters.
func SanitizeFilename(name string) string {
	s := illegalFilenameChars.ReplaceAllString(name, "-")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if runes := []rune(s); len(runes) > 100 {
		s = string(runes[:100])
	}
	return s
}
