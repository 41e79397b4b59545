package mock

import (
	"github.com/notemd/notemd"
	"golang.org/x/net/html"
)

var _ notemd.StyleSource = (*StyleSource)(nil)

// StyleSource is a mock implementation of notemd.StyleSource.
type StyleSource struct {
	ComputedFn func(n *html.Node) notemd.Style
}

func (s *StyleSource) Computed(n *html.Node) notemd.Style {
	return s.ComputedFn(n)
}
