// Package treesitter wraps the tree-sitter parsing and query machinery
// behind the small surface the rest of the module needs: parsed trees that
// own their content snapshot, node handles in byte offsets, and compiled
// structural queries with predicate filtering.
package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Tree owns one parsed syntax tree together with the exact content snapshot
// it was parsed from. Trees are replaced, never mutated: every committed
// edit block produces a new Tree via Parser.Reparse.
type Tree struct {
	tree    *sitter.Tree
	content []byte
	lang    *sitter.Language
}

// Root returns the root node of the tree. Malformed input still yields a
// root; parse problems show up as ERROR nodes inside it.
func (t *Tree) Root() Node {
	return Node{n: t.tree.RootNode(), tree: t}
}

// Content returns the text snapshot this tree was parsed from.
func (t *Tree) Content() []byte { return t.content }

// Language returns the grammar the tree was parsed with.
func (t *Tree) Language() *sitter.Language { return t.lang }

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// NamedDescendantForRange returns the smallest named node spanning the
// half-open byte range [start, end).
func (t *Tree) NamedDescendantForRange(start, end int) Node {
	if start < 0 || end > len(t.content) || start > end {
		return Node{}
	}
	n := t.tree.RootNode().NamedDescendantForPointRange(
		PointAt(t.content, start), PointAt(t.content, end))
	return Node{n: n, tree: t}
}

// NodeAt returns the innermost named node whose span contains the given
// byte offset. The zero Node is returned if the offset is out of range.
func (t *Tree) NodeAt(offset int) Node {
	if offset < 0 || offset > len(t.content) {
		return Node{}
	}
	cur := t.tree.RootNode()
	if cur == nil {
		return Node{}
	}
	for {
		var next *sitter.Node
		for i := 0; i < int(cur.NamedChildCount()); i++ {
			child := cur.NamedChild(i)
			if int(child.StartByte()) <= offset && offset < int(child.EndByte()) {
				next = child
				break
			}
		}
		if next == nil {
			return Node{n: cur, tree: t}
		}
		cur = next
	}
}
