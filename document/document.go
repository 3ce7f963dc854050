// Package document implements the buffer side of the transformation core:
// documents owning a text snapshot and its syntax tree, live range marks,
// atomic edit blocks, delimiter-balance block navigation and the symbol
// index built from each language's query battery.
//
// All offsets are byte offsets. Documents are plain values threaded
// explicitly through every call; there is no process-wide current document.
// A document is not safe for concurrent use, and independent documents
// share no mutable state.
package document

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/phyBrackets/knut/languages"
	"github.com/phyBrackets/knut/treesitter"
)

var log = commonlog.GetLogger("knut.document")

// Document is one open buffer: its text, current syntax tree, mark tracker,
// symbol index and undo stack.
type Document struct {
	path    string
	lang    *languages.Language
	parser  *treesitter.Parser
	tree    *treesitter.Tree
	text    []byte
	tracker tracker
	index   *SymbolIndex
	session *EditSession
	undo    [][]editRecord
	queries map[string]*treesitter.Query
}

// Open reads the file at path and parses it with the language registered
// for its extension.
func Open(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return New(path, content)
}

// New creates a document for path with the given content. The content is
// parsed immediately; malformed input still produces a document whose tree
// contains ERROR nodes.
func New(path string, content []byte) (*Document, error) {
	lang := languages.ForPath(path)
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	d := &Document{
		path:    path,
		lang:    lang,
		parser:  treesitter.NewParser(lang.Sitter),
		text:    content,
		queries: make(map[string]*treesitter.Query),
	}
	tree, err := d.parser.Parse(content)
	if err != nil {
		return nil, err
	}
	d.tree = tree
	d.index = newSymbolIndex(d)
	d.index.rebuild()
	return d, nil
}

// Close releases the document's parser, tree and compiled queries.
func (d *Document) Close() {
	for _, q := range d.queries {
		q.Close()
	}
	d.queries = nil
	if d.tree != nil {
		d.tree.Close()
		d.tree = nil
	}
	if d.parser != nil {
		d.parser.Close()
		d.parser = nil
	}
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string { return d.path }

// Language returns the language the document is parsed with.
func (d *Document) Language() *languages.Language { return d.lang }

// Text returns the current buffer content.
func (d *Document) Text() string { return string(d.text) }

// Len returns the buffer length in bytes.
func (d *Document) Len() int { return len(d.text) }

// TextIn returns the text covered by the given range.
func (d *Document) TextIn(r TextRange) (string, error) {
	if r.Start < 0 || r.End > len(d.text) || r.Start > r.End {
		return "", fmt.Errorf("%w: %s in buffer of length %d", ErrPositionOutOfRange, r, len(d.text))
	}
	return string(d.text[r.Start:r.End]), nil
}

// Tree returns the current syntax tree. The tree is replaced, never
// mutated, on every committed edit block.
func (d *Document) Tree() *treesitter.Tree { return d.tree }

// NodeAt returns the innermost named node containing the byte offset.
func (d *Document) NodeAt(offset int) treesitter.Node {
	return d.tree.NodeAt(offset)
}

// CreateMark registers a live mark over [start, end). The mark follows the
// text across every committed edit block.
func (d *Document) CreateMark(start, end int) (*RangeMark, error) {
	if start < 0 || end > len(d.text) || start > end {
		return nil, fmt.Errorf("%w: {%d, %d} in buffer of length %d", ErrPositionOutOfRange, start, end, len(d.text))
	}
	m := &RangeMark{doc: d, start: start, end: end}
	d.tracker.register(m)
	return m, nil
}

// compiled returns a cached compiled query for the pattern.
func (d *Document) compiled(pattern string) (*treesitter.Query, error) {
	if q, ok := d.queries[pattern]; ok {
		return q, nil
	}
	q, err := treesitter.NewQuery(pattern, d.lang.Sitter)
	if err != nil {
		return nil, err
	}
	d.queries[pattern] = q
	return q, nil
}

// Query compiles (with caching) and runs a structural pattern over the
// whole document. An empty result is success, not an error; compilation
// failures come back as a *treesitter.PatternError.
func (d *Document) Query(pattern string) ([]*treesitter.Match, error) {
	q, err := d.compiled(pattern)
	if err != nil {
		return nil, err
	}
	return q.Exec(d.tree), nil
}

// QueryInRange runs a pattern keeping only matches fully contained in r.
func (d *Document) QueryInRange(pattern string, r TextRange) ([]*treesitter.Match, error) {
	q, err := d.compiled(pattern)
	if err != nil {
		return nil, err
	}
	return q.ExecRange(d.tree, r.Start, r.End), nil
}

// Symbols returns the ordered symbol catalogue of the document.
func (d *Document) Symbols() []*Symbol { return d.index.Symbols() }

// FindSymbols returns all symbols with the given qualified name.
func (d *Document) FindSymbols(name string) []*Symbol { return d.index.Find(name) }

// FindSymbol returns the symbol with the given qualified name and exact
// signature, or nil.
func (d *Document) FindSymbol(name, signature string) *Symbol {
	return d.index.FindWithSignature(name, signature)
}

// SymbolAt returns the innermost symbol enclosing pos for which pred
// holds, or nil. A nil pred accepts every symbol.
func (d *Document) SymbolAt(pos int, pred func(*Symbol) bool) *Symbol {
	return d.index.At(pos, pred)
}

// commit installs the new buffer produced by an edit block: the tree is
// reparsed incrementally first, and only on success are the text, the
// marks (renormalized once per edit), the rebuilt symbol index, and the
// undo entry installed. A reparse error leaves the document on the old
// buffer.
func (d *Document) commit(newText []byte, records []editRecord, pushUndo bool) error {
	edits := make([]treesitter.Edit, 0, len(records))
	for _, rec := range records {
		edits = append(edits, rec.edit)
	}
	tree, err := d.parser.Reparse(d.tree, newText, edits...)
	if err != nil {
		return err
	}
	for _, rec := range records {
		d.tracker.adjust(rec.pos, len(rec.removed), len(rec.inserted))
	}
	d.text = newText
	d.tree = tree
	d.index.rebuild()
	if pushUndo {
		d.undo = append(d.undo, records)
	}
	return nil
}

// Undo reverts the most recently committed edit block. The inverse edits
// run through the normal commit path, so marks are renormalized and the
// tree reparsed exactly as for a forward block.
func (d *Document) Undo() error {
	if len(d.undo) == 0 {
		return ErrNothingToUndo
	}
	if d.session != nil {
		return ErrNestedEditBlock
	}
	records := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]

	s, err := d.Begin()
	if err != nil {
		return err
	}
	s.undoing = true
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		end := rec.pos + len(rec.inserted)
		if err := s.ReplaceRange(TextRange{Start: rec.pos, End: end}, string(rec.removed)); err != nil {
			s.Rollback()
			return err
		}
	}
	return s.Commit()
}
