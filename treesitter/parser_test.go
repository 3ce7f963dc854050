package treesitter

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCpp(t *testing.T, content string) *Tree {
	t.Helper()
	p := NewParser(cpp.GetLanguage())
	t.Cleanup(p.Close)
	tree, err := p.Parse([]byte(content))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestPointAt(t *testing.T) {
	content := []byte("ab\ncd")

	assert.Equal(t, sitter.Point{Row: 0, Column: 0}, PointAt(content, 0))
	assert.Equal(t, sitter.Point{Row: 0, Column: 2}, PointAt(content, 2))
	assert.Equal(t, sitter.Point{Row: 1, Column: 0}, PointAt(content, 3))
	assert.Equal(t, sitter.Point{Row: 1, Column: 2}, PointAt(content, 5))
	// Past-the-end offsets clamp.
	assert.Equal(t, sitter.Point{Row: 1, Column: 2}, PointAt(content, 99))
}

func TestParse(t *testing.T) {
	tree := parseCpp(t, "int x = 1;\n")

	root := tree.Root()
	require.True(t, root.IsValid())
	assert.Equal(t, "translation_unit", root.Kind())
	assert.False(t, root.HasError())
	assert.Equal(t, 0, root.StartByte())
	assert.Equal(t, len(tree.Content()), root.EndByte())
}

func TestParseMalformedInput(t *testing.T) {
	tree := parseCpp(t, "int @@@ garbage")

	// Malformed input still yields a tree, with ERROR nodes inside.
	root := tree.Root()
	require.True(t, root.IsValid())
	assert.True(t, root.HasError())
}

func TestReparseIncremental(t *testing.T) {
	p := NewParser(cpp.GetLanguage())
	defer p.Close()

	oldContent := []byte("int x = 1;\n")
	tree, err := p.Parse(oldContent)
	require.NoError(t, err)

	// Replace "x" with "abc".
	newContent := []byte("int abc = 1;\n")
	edit := Edit{
		Start:       4,
		OldEnd:      5,
		NewEnd:      7,
		StartPoint:  PointAt(oldContent, 4),
		OldEndPoint: PointAt(oldContent, 5),
		NewEndPoint: PointAt(newContent, 7),
	}
	newTree, err := p.Reparse(tree, newContent, edit)
	require.NoError(t, err)
	defer newTree.Close()

	assert.False(t, newTree.Root().HasError())
	assert.Equal(t, newContent, newTree.Content())

	q, err := NewQuery(`(identifier) @id`, cpp.GetLanguage())
	require.NoError(t, err)
	defer q.Close()
	matches := q.Exec(newTree)
	require.Len(t, matches, 1)
	assert.Equal(t, "abc", matches[0].Get("id").Text())
}

func TestNodeAt(t *testing.T) {
	tree := parseCpp(t, "int main() { return 0; }\n")

	// Offset 13 sits on "return".
	node := tree.NodeAt(13)
	require.True(t, node.IsValid())
	assert.Equal(t, "return_statement", node.Kind())
	assert.True(t, node.ContainsByte(13))

	assert.False(t, tree.NodeAt(-1).IsValid())
	assert.False(t, tree.NodeAt(len(tree.Content())+1).IsValid())
}

func TestNamedDescendantForRange(t *testing.T) {
	tree := parseCpp(t, "int main() { return 0; }\n")

	// The span of "return 0;".
	node := tree.NamedDescendantForRange(13, 22)
	require.True(t, node.IsValid())
	assert.Equal(t, "return_statement", node.Kind())

	assert.False(t, tree.NamedDescendantForRange(-1, 5).IsValid())
	assert.False(t, tree.NamedDescendantForRange(5, 2).IsValid())
}

func TestZeroNodeIsSafe(t *testing.T) {
	var nd Node

	assert.False(t, nd.IsValid())
	assert.Equal(t, "", nd.Kind())
	assert.Equal(t, "", nd.Text())
	assert.Equal(t, 0, nd.StartByte())
	assert.Equal(t, 0, nd.EndByte())
	assert.False(t, nd.Parent().IsValid())
	assert.Nil(t, nd.NamedChildren())
	assert.False(t, nd.ChildByField("name").IsValid())
	assert.False(t, nd.ContainsByte(0))
}

func TestNodeNavigation(t *testing.T) {
	tree := parseCpp(t, "int main() { return 0; }\n")

	fn := tree.Root().NamedChildren()[0]
	assert.Equal(t, "function_definition", fn.Kind())

	body := fn.ChildByField("body")
	require.True(t, body.IsValid())
	assert.Equal(t, "compound_statement", body.Kind())
	assert.Equal(t, "{ return 0; }", body.Text())

	assert.Equal(t, "function_definition", body.Parent().Kind())
}
