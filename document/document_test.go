package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyBrackets/knut/treesitter"
)

func TestNewUnsupportedFile(t *testing.T) {
	_, err := New("notes.txt", []byte("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int main() { return 0; }\n"), 0644))

	d, err := Open(path)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, path, d.Path())
	assert.Equal(t, "cpp", d.Language().Name)
	assert.Equal(t, 25, d.Len())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.cpp"))
	assert.Error(t, err)
}

func TestMalformedInputStillOpens(t *testing.T) {
	d := newTestDoc(t, "int @@@ nonsense {{{")
	assert.True(t, d.Tree().Root().HasError())
}

func TestTextIn(t *testing.T) {
	d := newTestDoc(t, "int x = 1;\n")

	text, err := d.TextIn(TextRange{Start: 4, End: 5})
	require.NoError(t, err)
	assert.Equal(t, "x", text)

	_, err = d.TextIn(TextRange{Start: 4, End: 99})
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = d.TextIn(TextRange{Start: 5, End: 4})
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestDocumentQuery(t *testing.T) {
	d := newTestDoc(t, "int alpha;\nint beta;\n")

	matches, err := d.Query(`((identifier) @id (#eq? @id "beta"))`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "beta", matches[0].Get("id").Text())

	// Same pattern again exercises the compiled-query cache.
	again, err := d.Query(`((identifier) @id (#eq? @id "beta"))`)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestDocumentQueryBadPattern(t *testing.T) {
	d := newTestDoc(t, "int x;\n")

	_, err := d.Query(`((identifier`)
	require.Error(t, err)
	var pe *treesitter.PatternError
	assert.ErrorAs(t, err, &pe)
}

func TestDocumentQueryInRange(t *testing.T) {
	d := newTestDoc(t, "int a;\nint b;\n")

	matches, err := d.QueryInRange(`(identifier) @id`, TextRange{Start: 7, End: 14})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].Get("id").Text())
}

func TestNodeAtDocument(t *testing.T) {
	d := newTestDoc(t, "int main() { return 0; }\n")

	node := d.NodeAt(13)
	require.True(t, node.IsValid())
	assert.Equal(t, "return_statement", node.Kind())
}

func TestTextRangeContains(t *testing.T) {
	r := TextRange{Start: 2, End: 5}

	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5)) // half-open
	assert.Equal(t, 3, r.Length())
	assert.Equal(t, "{2, 5}", r.String())

	assert.True(t, r.ContainsRange(TextRange{Start: 2, End: 5}))
	assert.True(t, r.ContainsRange(TextRange{Start: 3, End: 4}))
	assert.False(t, r.ContainsRange(TextRange{Start: 1, End: 4}))
}
