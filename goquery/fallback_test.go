package goquery_test

import (
	"testing"

	"github.com/notemd/notemd"
	"github.com/notemd/notemd/goquery"
	"github.com/notemd/notemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// The flat harvest takes over when the structured walk produces almost
// nothing; these pages keep their text next to element children, which the
// structured walk cannot see.
func TestExtractor_Extract_FlatHarvest(t *testing.T) {
	t.Parallel()

	t.Run("keeps every substantial fragment in document order", func(t *testing.T) {
		t.Parallel()

		src := `<body>` +
			`<div>First harvested sentence with plenty of characters to keep. <br/></div>` +
			`<section>Second harvested thought, also long enough to stay. <br/></section>` +
			`</body>`

		res, err := goquery.NewExtractor(nil).Extract(&notemd.Page{Root: parsePage(t, src)})

		require.NoError(t, err)
		want := "First harvested sentence with plenty of characters to keep.\n\n" +
			"Second harvested thought, also long enough to stay."
		assert.Equal(t, want, res.Markdown)
	})

	t.Run("classifies fragments by tag, class and style", func(t *testing.T) {
		t.Parallel()

		styles := &mock.StyleSource{ComputedFn: func(n *html.Node) notemd.Style {
			st := notemd.DefaultStyle()
			for _, a := range n.Attr {
				if a.Key == "data-big" && a.Val == "true" {
					st.FontSize = 24
				}
			}
			return st
		}}

		src := `<body>` +
			`<div>First harvested sentence with plenty of characters to keep. <br/></div>` +
			`<div class="code">configure_widget(42) <br/></div>` +
			`<strong>Bold standalone</strong>` +
			`<div data-big="true">Styled heading line <br/></div>` +
			`</body>`

		res, err := goquery.NewExtractor(styles).Extract(&notemd.Page{Root: parsePage(t, src)})

		require.NoError(t, err)
		want := "First harvested sentence with plenty of characters to keep.\n\n" +
			"`configure_widget(42)`\n\n" +
			"**Bold standalone**\n\n" +
			"## Styled heading line"
		assert.Equal(t, want, res.Markdown)
	})

	t.Run("short fragments are dropped", func(t *testing.T) {
		t.Parallel()

		src := `<body>` +
			`<div>First harvested sentence with plenty of characters to keep. <br/></div>` +
			`<div>tiny bit <br/></div>` +
			`</body>`

		res, err := goquery.NewExtractor(nil).Extract(&notemd.Page{Root: parsePage(t, src)})

		require.NoError(t, err)
		assert.Equal(t, "First harvested sentence with plenty of characters to keep.", res.Markdown)
	})
}
