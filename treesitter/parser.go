package treesitter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Edit describes one text mutation in byte offsets, with the row/column
// points tree-sitter needs for incremental reparsing.
type Edit struct {
	Start       int
	OldEnd      int
	NewEnd      int
	StartPoint  sitter.Point
	OldEndPoint sitter.Point
	NewEndPoint sitter.Point
}

func (e Edit) input() sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  uint32(e.Start),
		OldEndIndex: uint32(e.OldEnd),
		NewEndIndex: uint32(e.NewEnd),
		StartPoint:  e.StartPoint,
		OldEndPoint: e.OldEndPoint,
		NewEndPoint: e.NewEndPoint,
	}
}

// PointAt computes the row/column point of a byte offset in content.
// Offsets past the end clamp to the final position.
func PointAt(content []byte, offset int) sitter.Point {
	if offset > len(content) {
		offset = len(content)
	}
	var p sitter.Point
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// Parser wraps a tree-sitter parser bound to a single grammar. It is not
// safe for concurrent use; each document owns its own Parser.
type Parser struct {
	parser *sitter.Parser
	lang   *sitter.Language
}

// NewParser creates a parser for the given grammar.
func NewParser(lang *sitter.Language) *Parser {
	p := sitter.NewParser()
	p.SetLanguage(lang)
	return &Parser{parser: p, lang: lang}
}

// Language returns the grammar the parser is bound to.
func (p *Parser) Language() *sitter.Language { return p.lang }

// Close releases the underlying parser.
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
}

// Parse parses content from scratch. Malformed input never fails the
// parse; it yields a tree containing ERROR nodes.
func (p *Parser) Parse(content []byte) (*Tree, error) {
	t, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &Tree{tree: t, content: content, lang: p.lang}, nil
}

// Reparse produces a new tree for content, reusing old as an incremental
// hint after applying the given edits to it. The old tree is consumed and
// must not be used afterwards. With a nil old tree this is a full parse.
func (p *Parser) Reparse(old *Tree, content []byte, edits ...Edit) (*Tree, error) {
	if old == nil || old.tree == nil {
		return p.Parse(content)
	}
	for _, e := range edits {
		old.tree.Edit(e.input())
	}
	t, err := p.parser.ParseCtx(context.Background(), old.tree, content)
	if err != nil {
		return nil, fmt.Errorf("reparse: %w", err)
	}
	if t != old.tree {
		old.tree.Close()
	}
	old.tree = nil
	return &Tree{tree: t, content: content, lang: p.lang}, nil
}
