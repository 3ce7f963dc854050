package treesitter

import (
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// PatternError reports a structural pattern that failed to compile.
// Offset is a byte position inside the pattern text, suitable for
// surfacing to an editor. A pattern that compiles but matches nothing is
// not an error; it is success with an empty result.
type PatternError struct {
	Offset  int
	Kind    uint32
	Message string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern error at offset %d: %s", e.Offset, e.Message)
}

// Query is a compiled structural pattern. Patterns use the tree-sitter
// S-expression query grammar with @capture tags; the #eq? and #match?
// predicates filter candidate matches against a capture's text.
type Query struct {
	q       *sitter.Query
	lang    *sitter.Language
	pattern string
}

// NewQuery compiles a pattern for the given grammar. Compilation failures
// are returned as a *PatternError.
func NewQuery(pattern string, lang *sitter.Language) (*Query, error) {
	q, err := sitter.NewQuery([]byte(pattern), lang)
	if err != nil {
		var qe *sitter.QueryError
		if errors.As(err, &qe) {
			return nil, &PatternError{
				Offset:  int(qe.Offset),
				Kind:    uint32(qe.Type),
				Message: qe.Message,
			}
		}
		return nil, &PatternError{Message: err.Error()}
	}
	return &Query{q: q, lang: lang, pattern: pattern}, nil
}

// Pattern returns the source text the query was compiled from.
func (q *Query) Pattern() string { return q.pattern }

// Close releases the compiled query.
func (q *Query) Close() {
	if q.q != nil {
		q.q.Close()
		q.q = nil
	}
}

// Capture is one named binding inside a match, in appearance order.
type Capture struct {
	Name string
	Node Node
}

// Match is one successful pattern match. Repeated captures of the same
// name are kept in appearance order, never overwritten.
type Match struct {
	captures []Capture
	start    int
	end      int
}

// Start returns the byte offset where the overall match begins.
func (m *Match) Start() int { return m.start }

// End returns the byte offset just past the overall match.
func (m *Match) End() int { return m.end }

// Get returns the first node captured under name, or an invalid Node.
func (m *Match) Get(name string) Node {
	for _, c := range m.captures {
		if c.Name == name {
			return c.Node
		}
	}
	return Node{}
}

// GetAll returns every node captured under name, in appearance order.
func (m *Match) GetAll(name string) []Node {
	var nodes []Node
	for _, c := range m.captures {
		if c.Name == name {
			nodes = append(nodes, c.Node)
		}
	}
	return nodes
}

// Has reports whether the match contains a capture with the given name.
func (m *Match) Has(name string) bool {
	for _, c := range m.captures {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Captures returns the full ordered capture list of the match.
func (m *Match) Captures() []Capture { return m.captures }

// Exec runs the query over the whole tree. Matches come back in source
// (pre-order) order; running the same query twice against an unchanged
// tree yields the identical ordered list. A match discarded by a failing
// predicate is silently dropped.
func (q *Query) Exec(tree *Tree) []*Match {
	return q.ExecNode(tree.Root())
}

// ExecNode runs the query against the subtree rooted at scope.
func (q *Query) ExecNode(scope Node) []*Match {
	if !scope.IsValid() || scope.tree == nil {
		return nil
	}
	content := scope.tree.content

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(q.q, scope.n)

	var matches []*Match
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		m = cursor.FilterPredicates(m, content)
		if len(m.Captures) == 0 {
			continue
		}
		match := &Match{captures: make([]Capture, 0, len(m.Captures))}
		for i, c := range m.Captures {
			node := wrapNode(c.Node, scope.tree)
			match.captures = append(match.captures, Capture{
				Name: q.q.CaptureNameForId(c.Index),
				Node: node,
			})
			if i == 0 || node.StartByte() < match.start {
				match.start = node.StartByte()
			}
			if node.EndByte() > match.end {
				match.end = node.EndByte()
			}
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})
	return matches
}

// ExecRange runs the query over the whole tree, keeping only matches fully
// contained in the half-open byte range [start, end). Used to search, for
// example, only inside a class body.
func (q *Query) ExecRange(tree *Tree, start, end int) []*Match {
	all := q.Exec(tree)
	matches := make([]*Match, 0, len(all))
	for _, m := range all {
		if m.start >= start && m.end <= end {
			matches = append(matches, m)
		}
	}
	return matches
}
