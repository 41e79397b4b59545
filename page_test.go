package notemd_test

import (
	"strings"
	"testing"

	"github.com/notemd/notemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid page", func(t *testing.T) {
		t.Parallel()

		root, err := html.Parse(strings.NewReader("<p>hi</p>"))
		require.NoError(t, err)

		page := &notemd.Page{Root: root}

		assert.NoError(t, page.Validate())
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		page := &notemd.Page{}

		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, notemd.EINVALID, notemd.ErrorCode(err))
	})
}

func TestSupportedURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.notion.so/My-Page-abc123", true},
		{"https://notion.so/workspace/page", true},
		{"https://acme.notion.site/Handbook-def456", true},
		{"https://notion.site/public", true},
		{"https://team.notion.so/doc", true},
		{"https://example.com/notion.site", false},
		{"https://notnotion.so/page", false},
		{"https://docs.example.com/page", false},
		{"://bad-url", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, notemd.SupportedURL(tt.url))
		})
	}
}
