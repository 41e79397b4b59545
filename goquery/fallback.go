package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fallbackExtract is the flat last resort when structured rendering yields
// too little: it harvests every non-noise element with substantial direct
// text, classifying formatting from tag, class and computed style alone.
// No nesting, no list semantics.
func (e *Extractor) fallbackExtract(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if e.isNoise(n) {
			return
		}
		direct := directText(n)
		if textLen(direct) <= 10 {
			return
		}
		if formatted := e.formatByContext(n, direct); formatted != "" {
			b.WriteString(formatted)
			b.WriteString("\n\n")
		}
	})
	return b.String()
}

// formatByContext picks a Markdown rendering for a fragment of direct text.
// Plain text below 16 characters is judged too insubstantial to keep.
func (e *Extractor) formatByContext(n *html.Node, text string) string {
	st := e.styles.Computed(n)
	switch {
	case isHeadingAtom(n.DataAtom):
		return strings.Repeat("#", headingLevelOf(n.DataAtom)) + " " + text
	case e.looksLikeHeader(n):
		return "## " + text
	case n.DataAtom == atom.Pre:
		return "```\n" + text + "\n```"
	case n.DataAtom == atom.Code || strings.Contains(className(n), "code"):
		return "`" + text + "`"
	case n.DataAtom == atom.A && attrVal(n, "href") != "":
		return "[" + text + "](" + attrVal(n, "href") + ")"
	case n.DataAtom == atom.Strong || n.DataAtom == atom.B || st.FontWeight > 400:
		return "**" + text + "**"
	case n.DataAtom == atom.Em || n.DataAtom == atom.I || st.FontStyle == "italic":
		return "*" + text + "*"
	default:
		if textLen(text) > 15 {
			return text
		}
		return ""
	}
}
