package goquery

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderList renders the direct li children of a ul/ol element. Ordered items
// are numbered by document position. Lists nested directly inside an item are
// rendered right after that item's line, one indent level deeper.
func (e *Extractor) renderList(list *html.Node, depth int, ordered bool) string {
	var b strings.Builder
	index := 0
	for item := list.FirstChild; item != nil; item = item.NextSibling {
		if item.Type != html.ElementNode || item.DataAtom != atom.Li {
			continue
		}

		marker := "-"
		if ordered {
			marker = strconv.Itoa(index+1) + "."
		}
		b.WriteString(indent(depth))
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(e.inlineFormat(item))
		b.WriteString("\n")

		for nested := item.FirstChild; nested != nil; nested = nested.NextSibling {
			if nested.Type == html.ElementNode && (nested.DataAtom == atom.Ul || nested.DataAtom == atom.Ol) {
				b.WriteString(e.renderList(nested, depth+1, nested.DataAtom == atom.Ol))
			}
		}

		index++
	}
	return b.String() + "\n"
}
