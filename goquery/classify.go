package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// BlockKind is the closed set of Markdown constructs a block element can
// resolve to.
type BlockKind int

// Block kinds, in no particular order. Classification order lives in
// blockRules.
const (
	BlockGeneric BlockKind = iota
	BlockHeading
	BlockParagraph
	BlockQuote
	BlockCode
	BlockListItem
	BlockToggle
	BlockColumn
)

// String returns the kind's name for logs and test output.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockQuote:
		return "quote"
	case BlockCode:
		return "code"
	case BlockListItem:
		return "list-item"
	case BlockToggle:
		return "toggle"
	case BlockColumn:
		return "column"
	}
	return "generic"
}

// BlockClass is the classification verdict for one block element.
type BlockClass struct {
	Kind BlockKind

	// Source names the rule that produced the verdict, e.g.
	// "heading/class", so classification reasons can be asserted
	// independently of rendering.
	Source string

	// Level is the resolved heading level for BlockHeading.
	Level int

	// Ordered marks numbered list-item blocks.
	Ordered bool
}

type blockRule struct {
	source string
	match  func(e *Extractor, n *html.Node, class, text string) (BlockClass, bool)
}

// blockRules are evaluated in order; the first match wins. The order encodes
// the same precedence the class-name heuristics have always had: headings
// beat paragraphs, class markers beat structural probes.
var blockRules = []blockRule{
	{
		source: "heading/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "header") || strings.Contains(class, "heading") {
				return BlockClass{Kind: BlockHeading, Level: headerLevel(n)}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "heading/nested-tag",
		match: func(e *Extractor, n *html.Node, _, _ string) (BlockClass, bool) {
			if query(n, "h1, h2, h3, h4, h5, h6").Length() > 0 {
				return BlockClass{Kind: BlockHeading, Level: headerLevel(n)}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "heading/style",
		match: func(e *Extractor, n *html.Node, _, text string) (BlockClass, bool) {
			if text != "" && e.looksLikeHeader(n) {
				return BlockClass{Kind: BlockHeading, Level: headerLevel(n)}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "paragraph/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "text") || strings.Contains(class, "paragraph") {
				return BlockClass{Kind: BlockParagraph}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "paragraph/editable",
		match: func(e *Extractor, n *html.Node, _, _ string) (BlockClass, bool) {
			if query(n, `[data-content-editable-leaf="true"], [contenteditable]`).Length() > 0 {
				return BlockClass{Kind: BlockParagraph}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "quote/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "quote") || strings.Contains(class, "callout") {
				return BlockClass{Kind: BlockQuote}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "code/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "code") {
				return BlockClass{Kind: BlockCode}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "code/nested-tag",
		match: func(e *Extractor, n *html.Node, _, _ string) (BlockClass, bool) {
			if query(n, "code, pre").Length() > 0 {
				return BlockClass{Kind: BlockCode}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "list/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "list") || strings.Contains(class, "bullet") || strings.Contains(class, "numbered") {
				return BlockClass{Kind: BlockListItem, Ordered: strings.Contains(class, "numbered")}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "toggle/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "toggle") {
				return BlockClass{Kind: BlockToggle}, true
			}
			return BlockClass{}, false
		},
	},
	{
		source: "column/class",
		match: func(e *Extractor, n *html.Node, class, _ string) (BlockClass, bool) {
			if strings.Contains(class, "column") {
				return BlockClass{Kind: BlockColumn}, true
			}
			return BlockClass{}, false
		},
	},
}

// Classify resolves the block kind of an element carrying a block-identifier
// attribute.
func (e *Extractor) Classify(n *html.Node) BlockClass {
	class := className(n)
	text := trimmedText(n)
	for _, r := range blockRules {
		if bc, ok := r.match(e, n, class, text); ok {
			bc.Source = r.source
			return bc
		}
	}
	return BlockClass{Kind: BlockGeneric, Source: "generic"}
}

// headerLevel resolves a heading block's level: explicit h1/h2/h3 class
// markers first, then a nested native heading tag, defaulting to 2.
func headerLevel(n *html.Node) int {
	class := className(n)
	if strings.Contains(class, "notion-header-block") {
		switch {
		case strings.Contains(class, "notion-h1-block"):
			return 1
		case strings.Contains(class, "notion-h2-block"):
			return 2
		case strings.Contains(class, "notion-h3-block"):
			return 3
		}
	}

	if nested := query(n, "h1, h2, h3, h4, h5, h6"); nested.Length() > 0 {
		if level := headingLevelOf(nested.Get(0).DataAtom); level > 0 {
			return level
		}
	}

	return 2
}

// looksLikeHeader reports whether an element reads like a heading: larger or
// bolder font than body text, short, and single-line.
func (e *Extractor) looksLikeHeader(n *html.Node) bool {
	text := trimmedText(n)
	if text == "" {
		return false
	}
	if textLen(text) >= 100 || strings.Contains(text, "\n") {
		return false
	}
	st := e.styles.Computed(n)
	return st.FontSize > 16 || st.FontWeight > 400
}
