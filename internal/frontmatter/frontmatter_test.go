package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_WithFrontmatter(t *testing.T) {
	content := []byte("---\ntitle: Hello\n---\n# Body\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Hello\n", string(fm))
	require.Equal(t, "# Body\n", string(body))
}

func TestSplit_WithoutFrontmatter(t *testing.T) {
	content := []byte("# Just a body\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, content, body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	content := []byte("---\n---\nbody\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "body\n", string(body))
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: Oops\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestFields_And_Title(t *testing.T) {
	fields, err := Fields([]byte("title: Hello\nweight: 3\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", Title(fields))

	empty, err := Fields(nil)
	require.NoError(t, err)
	require.Empty(t, Title(empty))
}
