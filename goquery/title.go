package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/notemd/notemd"
)

// titleSelectors are tried in priority order; the first selector matching an
// element with non-empty text wins.
var titleSelectors = []string{
	`[data-block-id] [placeholder="Untitled"]`,
	`[data-block-id] h1`,
	`.notion-page-block h1`,
	`.notion-header-block`,
	`h1`,
	`title`,
}

// defaultTitle names exports of pages with no derivable title.
const defaultTitle = "notion-export"

// resolveTitle derives a filesystem-safe title. It never fails: selector
// probes fall back to the document metadata title (with the site-name suffix
// stripped), then to the last location path segment, then to a fixed default.
func (e *Extractor) resolveTitle(doc *goquery.Document, page *notemd.Page) string {
	for _, sel := range titleSelectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			if title := notemd.SanitizeFilename(text); title != "" {
				return title
			}
		}
	}

	docTitle := strings.TrimSpace(strings.Replace(page.Title, " - Notion", "", 1))
	if docTitle != "" && docTitle != "Notion" {
		if title := notemd.SanitizeFilename(docTitle); title != "" {
			return title
		}
	}

	segments := strings.Split(page.Path, "/")
	if last := segments[len(segments)-1]; last != "" {
		if title := notemd.SanitizeFilename(last); title != "" {
			return title
		}
	}

	return defaultTitle
}
