package goquery

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// artifactPatterns strip residual interface tokens that leak into copied
// text. The action words only match when not followed by a lowercase word,
// so "Edit" goes but "Edit this document" stays; the negative lookahead is
// why these are regexp2 rather than stdlib RE2.
var artifactPatterns = []*regexp2.Regexp{
	regexp2.MustCompile(`\bPlain Text\b`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bCopy\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bCopied\b`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bEdit\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bDelete\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bDuplicate\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bMove\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`\bShare\b(?!\s+[a-z])`, regexp2.IgnoreCase),
	regexp2.MustCompile(`•{3}`, regexp2.None),
	regexp2.MustCompile(`⋮`, regexp2.None),
	regexp2.MustCompile(`⋯`, regexp2.None),
}

var spaceRuns = regexp.MustCompile(`\s+`)

// inlineFormat reconstructs inline Markdown for one block: every text node in
// the block's subtree is wrapped according to the formatting elements on its
// ancestor chain up to the block boundary. Text under a noisy ancestor is
// suppressed entirely. Falls back to the block's raw trimmed text when
// cleanup leaves nothing.
func (e *Extractor) inlineFormat(block *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(e.formatTextNode(n, block))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := block.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	if text := cleanArtifacts(b.String()); text != "" {
		return text
	}
	return trimmedText(block)
}

// formatTextNode wraps one text node's payload per its ancestors between the
// node and the block boundary, innermost first, so outer ancestors' markers
// enclose inner ones.
func (e *Extractor) formatTextNode(t *html.Node, block *html.Node) string {
	for p := t.Parent; p != nil && p != block; p = p.Parent {
		if p.Type == html.ElementNode && e.isNoise(p) {
			return ""
		}
	}

	text := t.Data
	for p := t.Parent; p != nil && p != block; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		style := attrVal(p, "style")
		switch {
		case p.DataAtom == atom.Strong || p.DataAtom == atom.B || strings.Contains(style, "font-weight: bold"):
			text = "**" + text + "**"
		case p.DataAtom == atom.Em || p.DataAtom == atom.I || strings.Contains(style, "font-style: italic"):
			text = "*" + text + "*"
		case p.DataAtom == atom.Code || hasClassToken(p, "notion-inline-code"):
			text = "`" + text + "`"
		case p.DataAtom == atom.Del || p.DataAtom == atom.S || strings.Contains(style, "line-through"):
			text = "~~" + text + "~~"
		case p.DataAtom == atom.A:
			if href := attrVal(p, "href"); href != "" {
				text = "[" + text + "](" + href + ")"
			}
		}
	}
	return text
}

// cleanArtifacts strips interface tokens and normalizes whitespace runs to
// single spaces.
func cleanArtifacts(text string) string {
	for _, p := range artifactPatterns {
		if replaced, err := p.Replace(text, "", -1, -1); err == nil {
			text = replaced
		}
	}
	return strings.TrimSpace(spaceRuns.ReplaceAllString(text, " "))
}
