// Package douceur supplies element styles parsed from inline style
// attributes. Serialized captures carry no live layout, so this is as much
// style information as a static tree can offer: no stylesheets, no
// inheritance, no geometry beyond explicit width and height declarations.
package douceur

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/notemd/notemd"
	"golang.org/x/net/html"
)

// Ensure Source implements notemd.StyleSource at compile time.
var _ notemd.StyleSource = (*Source)(nil)

// Source derives computed styles from each element's style attribute.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Computed parses the element's style attribute. Elements without one, and
// declarations that fail to parse, resolve to the default style.
func (s *Source) Computed(n *html.Node) notemd.Style {
	st := notemd.DefaultStyle()
	if n == nil || n.Type != html.ElementNode {
		return st
	}

	raw := styleAttr(n)
	if raw == "" {
		return st
	}
	decls, err := parser.ParseDeclarations(raw)
	if err != nil {
		return st
	}

	for _, d := range decls {
		val := strings.TrimSpace(d.Value)
		switch strings.ToLower(d.Property) {
		case "display":
			st.Display = strings.ToLower(val)
		case "visibility":
			st.Visibility = strings.ToLower(val)
		case "opacity":
			st.Opacity = val
		case "font-weight":
			st.FontWeight = parseWeight(val)
		case "font-style":
			st.FontStyle = strings.ToLower(val)
		case "font-size":
			if px, ok := parsePx(val); ok {
				st.FontSize = px
			}
		case "cursor":
			st.Cursor = strings.ToLower(val)
		case "position":
			st.Position = strings.ToLower(val)
		case "width":
			if px, ok := parsePx(val); ok {
				st.Width = int(px)
			}
		case "height":
			if px, ok := parsePx(val); ok {
				st.Height = int(px)
			}
		}
	}
	return st
}

// parseWeight maps keyword weights to their numeric equivalents. Unparseable
// values stay unknown.
func parseWeight(val string) int {
	switch strings.ToLower(val) {
	case "bold", "bolder":
		return 700
	case "normal":
		return 400
	}
	if w, err := strconv.Atoi(val); err == nil {
		return w
	}
	return 0
}

func parsePx(val string) (float64, bool) {
	val = strings.ToLower(strings.TrimSpace(val))
	if !strings.HasSuffix(val, "px") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "px"), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func styleAttr(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "style" {
			return a.Val
		}
	}
	return ""
}
