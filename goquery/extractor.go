// Package goquery implements the Notion-aware extraction engine. It locates
// the content area of a captured page with CSS selector probes, classifies
// block elements into Markdown constructs, and renders them recursively.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/notemd/notemd"
	"golang.org/x/net/html"
)

// Ensure Extractor implements notemd.Extractor at compile time.
var _ notemd.Extractor = (*Extractor)(nil)

// fallbackThreshold is the minimum trimmed length of the primary render;
// anything shorter triggers the flat fallback extraction.
const fallbackThreshold = 50

// Extractor converts a captured Notion page tree into Markdown.
// Style and geometry queries go through the injected StyleSource so the
// engine works without a live rendering environment.
type Extractor struct {
	styles notemd.StyleSource
}

// NewExtractor creates a new Extractor. A nil styles source means no style
// information: every element is treated as visible.
func NewExtractor(styles notemd.StyleSource) *Extractor {
	if styles == nil {
		styles = notemd.Unstyled{}
	}
	return &Extractor{styles: styles}
}

// Extract walks the page tree and returns the Markdown conversion.
// Title resolution and content extraction are independent: a page with no
// resolvable title still extracts, falling back to derived title strings.
func (e *Extractor) Extract(page *notemd.Page) (*notemd.ExtractResult, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	doc := goquery.NewDocumentFromNode(page.Root)

	title := e.resolveTitle(doc, page)

	area := e.locateContentArea(doc)
	if area == nil {
		return nil, notemd.Errorf(notemd.ENOCONTENT, "no content area found")
	}

	markdown := e.Render(area, 0)

	// Very little content from the structured walk means the page layout
	// defeated the block heuristics; harvest flat text instead.
	if textLen(strings.TrimSpace(markdown)) < fallbackThreshold {
		markdown = e.fallbackExtract(doc)
	}

	markdown = Cleanup(markdown)
	if markdown == "" {
		return nil, notemd.Errorf(notemd.ENOCONTENT, "no content found")
	}

	return &notemd.ExtractResult{Title: title, Markdown: markdown}, nil
}

func (e *Extractor) hidden(n *html.Node) bool {
	return e.styles.Computed(n).Hidden()
}
