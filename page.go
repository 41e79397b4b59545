package notemd

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Page represents a captured page handed to an Extractor. The tree is
// read-only input: extraction never mutates or reparents nodes, and the
// caller retains ownership.
type Page struct {
	// Root is the parsed document tree.
	Root *html.Node

	// Title is the document metadata title (the browser tab title).
	// Used as a fallback when no title can be found in the tree.
	Title string

	// Path is the location pathname of the page, e.g. "/My-Page-abc123".
	// Its last segment is the final title fallback.
	Path string
}

// Validate returns an error if the page cannot be extracted from.
func (p *Page) Validate() error {
	if p == nil || p.Root == nil {
		return Errorf(EINVALID, "page root required")
	}
	return nil
}

// SupportedURL reports whether the URL points at a page the Notion engine
// understands. Mirrors the notion.site gate of the capture surface.
func SupportedURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	switch host {
	case "notion.so", "www.notion.so", "notion.site", "www.notion.site":
		return true
	}
	return strings.HasSuffix(host, ".notion.site") || strings.HasSuffix(host, ".notion.so")
}
