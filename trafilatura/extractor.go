// Package trafilatura implements the article extraction engine. It treats the
// captured page as a generic web article rather than a Notion block tree,
// which suits public pages wrapped in marketing or blog layouts.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/notemd/notemd"
	"golang.org/x/net/html"
)

// Ensure Extractor implements notemd.Extractor at compile time.
var _ notemd.Extractor = (*Extractor)(nil)

// Extractor isolates the main article content of a page and hands it to a
// Converter for the Markdown rendering.
type Extractor struct {
	conv notemd.Converter
}

// NewExtractor creates a new Extractor converting content with conv.
func NewExtractor(conv notemd.Converter) *Extractor {
	return &Extractor{conv: conv}
}

// Extract isolates the page's main content and converts it to Markdown.
func (e *Extractor) Extract(page *notemd.Page) (*notemd.ExtractResult, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	rawHTML, err := renderNode(page.Root)
	if err != nil {
		return nil, notemd.Errorf(notemd.EINTERNAL, "render page: %s", err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, notemd.Errorf(notemd.ENOCONTENT, "article extraction: %s", err)
	}
	if result.ContentNode == nil {
		return nil, notemd.Errorf(notemd.ENOCONTENT, "no article content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, notemd.Errorf(notemd.EINTERNAL, "render content: %s", err)
	}

	markdown, err := e.conv.Convert(contentHTML)
	if err != nil {
		return nil, err
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, notemd.Errorf(notemd.ENOCONTENT, "no article content found")
	}

	return &notemd.ExtractResult{
		Title:    e.resolveTitle(result.Metadata.Title, page),
		Markdown: markdown,
	}, nil
}

// resolveTitle prefers the extracted metadata title, then the document title,
// then the last path segment.
func (e *Extractor) resolveTitle(metaTitle string, page *notemd.Page) string {
	for _, candidate := range []string{metaTitle, page.Title} {
		candidate = strings.TrimSpace(strings.Replace(candidate, " - Notion", "", 1))
		if candidate == "" || candidate == "Notion" {
			continue
		}
		if title := notemd.SanitizeFilename(candidate); title != "" {
			return title
		}
	}

	segments := strings.Split(page.Path, "/")
	if last := segments[len(segments)-1]; last != "" {
		if title := notemd.SanitizeFilename(last); title != "" {
			return title
		}
	}
	return "notion-export"
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
