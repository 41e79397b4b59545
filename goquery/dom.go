package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// query returns the descendants of n matching the selector, in document
// order. Matches querySelectorAll semantics: n itself is never included.
func query(n *html.Node, selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Find(selector)
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttrKey(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func className(n *html.Node) string {
	return attrVal(n, "class")
}

// hasClassToken reports whether the class attribute contains the exact token,
// matching classList.contains semantics rather than substring search.
func hasClassToken(n *html.Node, token string) bool {
	for _, f := range strings.Fields(className(n)) {
		if f == token {
			return true
		}
	}
	return false
}

// textContent returns the concatenated raw text of n's subtree.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func trimmedText(n *html.Node) string {
	return strings.TrimSpace(textContent(n))
}

// directText returns the trimmed text of n's immediate text-node children
// only, excluding text inherited from deeper descendants.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

func elementChildren(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, c)
		}
	}
	return kids
}

// textLen counts characters, not bytes.
func textLen(s string) int {
	return len([]rune(s))
}

func headingLevelOf(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func isHeadingAtom(a atom.Atom) bool {
	return headingLevelOf(a) > 0
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
