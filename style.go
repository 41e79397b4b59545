package notemd

import "golang.org/x/net/html"

// Style holds the computed style and geometry of an element, as far as the
// supplying StyleSource can know it. Numeric zero values mean "unknown" for
// font properties; geometry uses -1 for unknown so that a measured zero size
// can be told apart from missing layout data.
type Style struct {
	Display    string
	Visibility string
	Opacity    string

	// FontWeight is the numeric weight; keyword bold parses to 700.
	// Zero means unknown.
	FontWeight int

	FontStyle string

	// FontSize is the size in pixels. Zero means unknown.
	FontSize float64

	Cursor   string
	Position string

	// Width and Height are the rendered size in pixels, -1 when unknown.
	Width  int
	Height int
}

// DefaultStyle returns a Style with no information: visible, unstyled,
// unmeasured.
func DefaultStyle() Style {
	return Style{Width: -1, Height: -1}
}

// Hidden reports whether an element with this style is invisible: display
// none, hidden visibility, zero opacity, or a measured zero size. Unknown
// geometry counts as visible.
func (s Style) Hidden() bool {
	if s.Display == "none" || s.Visibility == "hidden" || s.Opacity == "0" {
		return true
	}
	return s.Width == 0 || s.Height == 0
}

// StyleSource answers computed-style queries for elements of a page tree.
// Queries must be idempotent, side-effect-free reads. Implementations without
// access to a live rendering environment report what they can and leave the
// rest unknown.
type StyleSource interface {
	Computed(n *html.Node) Style
}

// Ensure Unstyled implements StyleSource at compile time.
var _ StyleSource = Unstyled{}

// Unstyled is a StyleSource with no style information; every element is
// visible with unknown fonts and geometry.
type Unstyled struct{}

// Computed returns the default style for any node.
func (Unstyled) Computed(*html.Node) Style {
	return DefaultStyle()
}
