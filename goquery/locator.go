package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockIDSelector marks elements that represent one semantic content unit in
// the Notion document model.
const blockIDSelector = "[data-block-id]"

// contentSelectors are structural predicates for the content area, tried in
// priority order.
var contentSelectors = []string{
	".notion-page-content",
	".notion-page-block",
	blockIDSelector,
	"main",
	".notion-app-inner",
	".notion-frame",
	"#notion-app",
	".notion-body",
	`[role="main"]`,
}

// locateContentArea finds the subtree most likely to hold the document's real
// content. It tries the selector list first; failing that it scans for the
// densest non-noise div, and as a last resort returns the body (or document
// root for body-less fragments). It only returns nil for an empty document.
func (e *Extractor) locateContentArea(doc *goquery.Document) *html.Node {
	for _, sel := range contentSelectors {
		matches := doc.Find(sel)
		if matches.Length() == 0 {
			continue
		}
		if sel == blockIDSelector {
			if container := blockContainer(matches); container != nil {
				return container
			}
			continue
		}
		return matches.Get(0)
	}

	// No structural marker matched; fall back to the container with the
	// most text, past a floor that rules out stray labels.
	var best *html.Node
	maxLen := 0
	doc.Find("div").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		l := textLen(trimmedText(n))
		if l > maxLen && l > 100 && !e.isNoise(n) {
			maxLen = l
			best = n
		}
	})
	if best != nil {
		return best
	}

	if body := doc.Find("body"); body.Length() > 0 {
		return body.Get(0)
	}
	if root := doc.Get(0); root != nil {
		return root
	}
	return nil
}

// blockContainer resolves multiple block-identifier matches to their common
// ancestor: the nearest ancestor of the first match holding at least
// min(matchCount, 3) blocks.
func blockContainer(matches *goquery.Selection) *html.Node {
	first := matches.Get(0)
	if matches.Length() == 1 {
		return first.Parent
	}

	want := matches.Length()
	if want > 3 {
		want = 3
	}
	for c := first.Parent; c != nil && c.DataAtom != atom.Body; c = c.Parent {
		if query(c, blockIDSelector).Length() >= want {
			return c
		}
	}
	return first.Parent
}
