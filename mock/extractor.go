package mock

import "github.com/notemd/notemd"

var _ notemd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of notemd.Extractor.
type Extractor struct {
	ExtractFn func(page *notemd.Page) (*notemd.ExtractResult, error)
}

func (e *Extractor) Extract(page *notemd.Page) (*notemd.ExtractResult, error) {
	return e.ExtractFn(page)
}
