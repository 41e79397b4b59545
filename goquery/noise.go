package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var nonContentAtoms = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Meta:     true,
	atom.Link:     true,
	atom.Noscript: true,
}

// uiChromeText holds interface labels that appear as the entire text of a
// control; matched case-insensitively against the trimmed text content.
var uiChromeText = map[string]bool{
	"plain text": true,
	"copy":       true,
	"copied":     true,
	"edit":       true,
	"delete":     true,
	"duplicate":  true,
	"move":       true,
	"share":      true,
	"comment":    true,
	"•••":        true,
	"⋮":          true,
	"⋯":          true,
}

// chromeMarkers are class/id fragments indicating navigation or UI chrome.
// Only short elements are suppressed on this evidence; substantial text
// overrides the marker.
var chromeMarkers = []string{
	"topbar", "sidebar", "navbar", "menu", "navigation",
	"overlay", "modal", "popup", "tooltip", "cursor",
	"scroller", "peek", "button", "icon", "logo",
	"share", "comment", "reaction", "like", "follow",
	"copy", "edit", "delete", "duplicate", "move",
}

var interactiveAtoms = map[atom.Atom]bool{
	atom.Button:   true,
	atom.Input:    true,
	atom.Select:   true,
	atom.Textarea: true,
}

var interactiveRoles = map[string]bool{
	"button":   true,
	"menuitem": true,
	"tab":      true,
	"option":   true,
}

// NoiseRule is one entry of the prioritized filter deciding whether an
// element is UI chrome rather than content.
type NoiseRule struct {
	// Name identifies the rule in verdicts.
	Name string

	Match func(e *Extractor, n *html.Node) bool
}

// noiseRules are evaluated in order; the first match wins.
var noiseRules = []NoiseRule{
	{
		Name: "non-content-tag",
		Match: func(_ *Extractor, n *html.Node) bool {
			return nonContentAtoms[n.DataAtom]
		},
	},
	{
		Name: "ui-chrome-text",
		Match: func(_ *Extractor, n *html.Node) bool {
			return uiChromeText[strings.ToLower(trimmedText(n))]
		},
	},
	{
		Name: "chrome-marker",
		Match: func(_ *Extractor, n *html.Node) bool {
			marker := strings.ToLower(className(n) + " " + attrVal(n, "id"))
			if textLen(trimmedText(n)) >= 100 {
				return false
			}
			for _, m := range chromeMarkers {
				if strings.Contains(marker, m) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "hidden",
		Match: func(e *Extractor, n *html.Node) bool {
			return e.hidden(n)
		},
	},
	{
		Name: "interactive-tag",
		Match: func(_ *Extractor, n *html.Node) bool {
			return interactiveAtoms[n.DataAtom]
		},
	},
	{
		Name: "interactive-role",
		Match: func(_ *Extractor, n *html.Node) bool {
			return interactiveRoles[attrVal(n, "role")]
		},
	},
	{
		Name: "ui-control",
		Match: func(e *Extractor, n *html.Node) bool {
			return e.looksLikeUIControl(n)
		},
	},
}

// Noise evaluates the rule table in order and reports the name of the first
// matching rule. ok is false when the element is content.
func (e *Extractor) Noise(n *html.Node) (rule string, ok bool) {
	if n == nil || n.Type != html.ElementNode {
		return "non-element", true
	}
	for _, r := range noiseRules {
		if r.Match(e, n) {
			return r.Name, true
		}
	}
	return "", false
}

func (e *Extractor) isNoise(n *html.Node) bool {
	_, ok := e.Noise(n)
	return ok
}

// looksLikeUIControl flags short-text elements positioned like controls:
// pointer cursor under 10 characters, or absolute positioning under 8.
func (e *Extractor) looksLikeUIControl(n *html.Node) bool {
	l := textLen(trimmedText(n))
	if l == 0 || l > 15 {
		return false
	}
	st := e.styles.Computed(n)
	if st.Cursor == "pointer" && l < 10 {
		return true
	}
	return st.Position == "absolute" && l < 8
}
