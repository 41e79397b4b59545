package notemd

// ExtractResult holds the Markdown conversion of a captured page.
// Immutable once produced.
type ExtractResult struct {
	// Title is a filesystem-safe title derived from the page, suitable for
	// naming the output file.
	Title string

	// Markdown is the converted page content.
	Markdown string
}

// Extractor converts a captured page into Markdown.
type Extractor interface {
	// Extract walks the page tree and returns the Markdown conversion.
	// Extraction is deterministic: re-running it against an unchanged tree
	// yields the same result.
	// Returns ENOCONTENT when the page yields no usable content.
	Extract(page *Page) (*ExtractResult, error)
}
