package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parsePage parses an HTML document (or fragment) into a full node tree.
func parsePage(t *testing.T, src string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return root
}

// firstMatch returns the first element matching the selector in the parsed
// document.
func firstMatch(t *testing.T, src, selector string) *html.Node {
	t.Helper()
	sel := gq.NewDocumentFromNode(parsePage(t, src)).Find(selector)
	require.Positive(t, sel.Length(), "selector %q matched nothing", selector)
	return sel.Get(0)
}
