package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_BasicDocument(t *testing.T) {
	html, err := Render([]byte("# Title\n\nSome *emphasis*.\n"))
	require.NoError(t, err)
	require.Contains(t, string(html), "<h1>Title</h1>")
	require.Contains(t, string(html), "<em>emphasis</em>")
}

func TestRender_GFMTable(t *testing.T) {
	html, err := Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	require.Contains(t, string(html), "<table>")
}

func TestFirstHeading(t *testing.T) {
	require.Equal(t, "Reader", FirstHeading([]byte("intro text\n\n# Reader\n\n## Later\n")))
	require.Empty(t, FirstHeading([]byte("no headings here\n")))
}
