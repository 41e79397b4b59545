package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// render converts one element and its subtree to Markdown. Depth increases
// only for nesting constructs (lists, toggles), not for plain descent into
// wrapper elements. Noise and hidden elements contribute nothing; failures
// inside a subtree degrade to an empty contribution rather than aborting the
// walk.
func (e *Extractor) Render(n *html.Node, depth int) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	if e.hidden(n) || e.isNoise(n) {
		return ""
	}

	if hasAttrKey(n, "data-block-id") {
		return e.renderBlock(n, depth)
	}

	text := trimmedText(n)

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return headingLine(headingLevelOf(n.DataAtom), text)
	case atom.P:
		if text == "" {
			return ""
		}
		return e.inlineFormat(n) + "\n\n"
	case atom.Blockquote:
		if text == "" {
			return ""
		}
		return quoteLines(text)
	case atom.Code:
		return "`" + text + "`"
	case atom.Pre:
		return "```\n" + text + "\n```\n\n"
	case atom.Ul:
		return e.renderList(n, depth, false)
	case atom.Ol:
		return e.renderList(n, depth, true)
	case atom.Li:
		// rendered by renderList
		return ""
	case atom.A:
		if href := attrVal(n, "href"); href != "" && text != "" {
			return "[" + text + "](" + href + ")"
		}
		return text
	case atom.Strong, atom.B:
		return "**" + text + "**"
	case atom.Em, atom.I:
		return "*" + text + "*"
	case atom.Del, atom.S:
		return "~~" + text + "~~"
	default:
		var b strings.Builder
		kids := elementChildren(n)
		for _, c := range kids {
			b.WriteString(e.Render(c, depth))
		}
		if len(kids) == 0 && text != "" {
			b.WriteString(text + " ")
		}
		return b.String()
	}
}

// renderBlock renders an element carrying a block-identifier attribute
// according to its classification.
func (e *Extractor) renderBlock(n *html.Node, depth int) string {
	text := trimmedText(n)

	switch bc := e.Classify(n); bc.Kind {
	case BlockHeading:
		return headingLine(bc.Level, text)

	case BlockParagraph:
		if text == "" {
			return ""
		}
		return e.inlineFormat(n) + "\n\n"

	case BlockQuote:
		if text == "" {
			return ""
		}
		return quoteLines(text)

	case BlockCode:
		// The nested code/pre element carries the raw, untrimmed code;
		// fall back to the block's own text when there is none.
		code := textContent(n)
		if nested := query(n, "code, pre"); nested.Length() > 0 {
			code = textContent(nested.Get(0))
		}
		return "```\n" + code + "\n```\n\n"

	case BlockListItem:
		marker := "-"
		if bc.Ordered {
			// Numbered blocks all render as "1."; Markdown renderers
			// auto-increment the sequence anyway.
			marker = "1."
		}
		return indent(depth) + marker + " " + e.inlineFormat(n) + "\n"

	case BlockToggle:
		var b strings.Builder
		b.WriteString("<details>\n<summary>")
		b.WriteString(text)
		b.WriteString("</summary>\n\n")
		for _, c := range elementChildren(n) {
			b.WriteString(e.Render(c, depth+1))
		}
		b.WriteString("</details>\n\n")
		return b.String()

	case BlockColumn:
		var b strings.Builder
		if nested := query(n, "[data-block-id]"); nested.Length() > 0 {
			nested.Each(func(_ int, s *goquery.Selection) {
				b.WriteString(e.Render(s.Get(0), depth))
			})
		} else {
			for _, c := range elementChildren(n) {
				b.WriteString(e.Render(c, depth))
			}
		}
		return b.String()

	default:
		if text == "" {
			return ""
		}
		// Children first; only when they yield nothing does the block's
		// own inline text stand in for them.
		var b strings.Builder
		for _, c := range elementChildren(n) {
			b.WriteString(e.Render(c, depth))
		}
		if strings.TrimSpace(b.String()) != "" {
			return b.String()
		}
		return e.inlineFormat(n) + "\n\n"
	}
}

func headingLine(level int, text string) string {
	return strings.Repeat("#", level) + " " + text + "\n\n"
}

func quoteLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n") + "\n\n"
}
