package notemd_test

import (
	"testing"

	"github.com/notemd/notemd"
	"github.com/stretchr/testify/assert"
)

func TestStyle_Hidden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style notemd.Style
		want  bool
	}{
		{"default style is visible", notemd.DefaultStyle(), false},
		{"display none", with(func(s *notemd.Style) { s.Display = "none" }), true},
		{"visibility hidden", with(func(s *notemd.Style) { s.Visibility = "hidden" }), true},
		{"zero opacity", with(func(s *notemd.Style) { s.Opacity = "0" }), true},
		{"partial opacity visible", with(func(s *notemd.Style) { s.Opacity = "0.5" }), false},
		{"measured zero width", with(func(s *notemd.Style) { s.Width = 0 }), true},
		{"measured zero height", with(func(s *notemd.Style) { s.Height = 0 }), true},
		{"measured nonzero size", with(func(s *notemd.Style) { s.Width = 120; s.Height = 24 }), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.style.Hidden())
		})
	}
}

func with(mutate func(*notemd.Style)) notemd.Style {
	s := notemd.DefaultStyle()
	mutate(&s)
	return s
}
