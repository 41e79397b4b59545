package goquery

import (
	"regexp"
	"strings"
)

var (
	trailingSpaces   = regexp.MustCompile(`(?m)[ \t]+$`)
	markerOnlyLines  = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]*$`)
	headingOnlyLines = regexp.MustCompile(`(?m)^#+[ \t]*$`)
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
)

// Cleanup is the final text-level pass over rendered Markdown: trailing
// spaces go, lines holding only a list marker or only heading markers go,
// runs of three or more newlines collapse to a blank line, and the whole
// document is trimmed. The pass order makes Cleanup idempotent:
// Cleanup(Cleanup(s)) == Cleanup(s).
func Cleanup(markdown string) string {
	s := trailingSpaces.ReplaceAllString(markdown, "")
	s = markerOnlyLines.ReplaceAllString(s, "")
	s = headingOnlyLines.ReplaceAllString(s, "")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
