package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Node is a handle on one element of a Tree. The zero Node is invalid;
// accessors on it return zero values rather than panicking, so "no matching
// node" stays a normal, non-fatal outcome for callers.
type Node struct {
	n    *sitter.Node
	tree *Tree
}

// IsValid reports whether the node refers to an actual tree element.
func (nd Node) IsValid() bool { return nd.n != nil }

// Kind returns the grammar type of the node (e.g. "function_definition").
func (nd Node) Kind() string {
	if nd.n == nil {
		return ""
	}
	return nd.n.Type()
}

// IsNamed reports whether the node is a named grammar node, as opposed to
// anonymous syntax such as punctuation.
func (nd Node) IsNamed() bool { return nd.n != nil && nd.n.IsNamed() }

// IsError reports whether this node is an ERROR node produced by
// error recovery.
func (nd Node) IsError() bool { return nd.n != nil && nd.n.IsError() }

// HasError reports whether the node or any of its descendants is malformed.
func (nd Node) HasError() bool { return nd.n != nil && nd.n.HasError() }

// IsMissing reports whether the node was inserted by error recovery.
func (nd Node) IsMissing() bool { return nd.n != nil && nd.n.IsMissing() }

// StartByte returns the byte offset where the node begins.
func (nd Node) StartByte() int {
	if nd.n == nil {
		return 0
	}
	return int(nd.n.StartByte())
}

// EndByte returns the byte offset just past the node (half-open).
func (nd Node) EndByte() int {
	if nd.n == nil {
		return 0
	}
	return int(nd.n.EndByte())
}

// Text returns the source text covered by the node.
func (nd Node) Text() string {
	if nd.n == nil || nd.tree == nil {
		return ""
	}
	return nd.n.Content(nd.tree.content)
}

// Parent returns the parent node, or an invalid Node at the root.
func (nd Node) Parent() Node {
	if nd.n == nil {
		return Node{}
	}
	return Node{n: nd.n.Parent(), tree: nd.tree}
}

// NamedChildren returns the ordered named children of the node.
func (nd Node) NamedChildren() []Node {
	if nd.n == nil {
		return nil
	}
	count := int(nd.n.NamedChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, Node{n: nd.n.NamedChild(i), tree: nd.tree})
	}
	return children
}

// Children returns all ordered children, anonymous nodes included.
func (nd Node) Children() []Node {
	if nd.n == nil {
		return nil
	}
	count := int(nd.n.ChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, Node{n: nd.n.Child(i), tree: nd.tree})
	}
	return children
}

// ChildByField returns the child in the given grammar field, or an
// invalid Node.
func (nd Node) ChildByField(name string) Node {
	if nd.n == nil {
		return Node{}
	}
	return Node{n: nd.n.ChildByFieldName(name), tree: nd.tree}
}

// ContainsByte reports whether the node's half-open span contains the offset.
func (nd Node) ContainsByte(offset int) bool {
	return nd.n != nil && nd.StartByte() <= offset && offset < nd.EndByte()
}

func wrapNode(n *sitter.Node, tree *Tree) Node {
	return Node{n: n, tree: tree}
}
