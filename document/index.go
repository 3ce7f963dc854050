package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phyBrackets/knut/languages"
	"github.com/phyBrackets/knut/treesitter"
)

// SymbolIndex is the flat, queryable catalogue of a document's named
// entities. It is rebuilt by running the language's fixed query battery
// after every committed edit block.
type SymbolIndex struct {
	doc     *Document
	symbols []*Symbol
}

func newSymbolIndex(d *Document) *SymbolIndex {
	return &SymbolIndex{doc: d}
}

// Symbols returns the catalogue ordered by start offset.
func (ix *SymbolIndex) Symbols() []*Symbol { return ix.symbols }

// Find returns all symbols with the given qualified name (overloads
// included). Absence is a normal outcome: the result is simply empty.
func (ix *SymbolIndex) Find(name string) []*Symbol {
	var found []*Symbol
	for _, s := range ix.symbols {
		if s.name == name {
			found = append(found, s)
		}
	}
	return found
}

// FindWithSignature returns the symbol with the given name and exact
// signature string, or nil.
func (ix *SymbolIndex) FindWithSignature(name, signature string) *Symbol {
	for _, s := range ix.symbols {
		if s.name == name && s.signature == signature {
			return s
		}
	}
	return nil
}

// At returns the innermost symbol enclosing pos for which pred holds,
// or nil. A nil pred accepts every symbol.
func (ix *SymbolIndex) At(pos int, pred func(*Symbol) bool) *Symbol {
	var best *Symbol
	bestLen := 0
	for _, s := range ix.symbols {
		r, err := s.Range()
		if err != nil || !r.Contains(pos) {
			continue
		}
		if pred != nil && !pred(s) {
			continue
		}
		if best == nil || r.Length() < bestLen {
			best = s
			bestLen = r.Length()
		}
	}
	return best
}

// rebuild runs the battery and replaces the catalogue. Marks of the old
// catalogue are discarded so the tracker only carries live data.
func (ix *SymbolIndex) rebuild() {
	for _, s := range ix.symbols {
		s.discardMarks()
	}
	ix.symbols = nil

	for _, sq := range ix.doc.lang.Battery {
		q, err := ix.doc.compiled(sq.Pattern)
		if err != nil {
			// A battery pattern that does not compile is a bug in the
			// language definition; skip it rather than fail the parse.
			log.Errorf("symbol battery pattern failed to compile: %s", err.Error())
			continue
		}
		for _, m := range q.Exec(ix.doc.tree) {
			if s := ix.symbolFromMatch(sq.Kind, m); s != nil {
				ix.symbols = append(ix.symbols, s)
			}
		}
	}

	sort.SliceStable(ix.symbols, func(i, j int) bool {
		return ix.symbols[i].mark.start < ix.symbols[j].mark.start
	})
}

func (ix *SymbolIndex) symbolFromMatch(kind string, m *treesitter.Match) *Symbol {
	nameNode := m.Get("name")
	if !nameNode.IsValid() {
		return nil
	}

	whole := m.Get("definition")
	if !whole.IsValid() {
		whole = m.Get("declaration")
	}
	start, end := m.Start(), m.End()
	if whole.IsValid() {
		start, end = whole.StartByte(), whole.EndByte()
	}

	mark, err := ix.doc.CreateMark(start, end)
	if err != nil {
		return nil
	}
	selMark, err := ix.doc.CreateMark(nameNode.StartByte(), nameNode.EndByte())
	if err != nil {
		mark.Discard()
		return nil
	}

	s := &Symbol{
		kind:    kind,
		name:    symbolName(kind, nameNode.Text()),
		scope:   enclosingScope(nameNode),
		mark:    mark,
		selMark: selMark,
	}
	if kind == languages.KindFunction {
		s.signature = functionSignature(m)
	}
	if body := m.Get("body"); body.IsValid() {
		if defMark, err := ix.doc.CreateMark(body.StartByte(), body.EndByte()); err == nil {
			s.defMark = defMark
		}
	}
	return s
}

// symbolName normalizes the captured name: include paths lose their quotes
// or angle brackets, everything else is taken verbatim.
func symbolName(kind, text string) string {
	if kind == languages.KindInclude {
		return strings.Trim(text, `"<>`)
	}
	return text
}

// functionSignature builds the symbol description from the return type and
// the repeated parameter captures: "<return type> (<type>, <type>, ...)".
func functionSignature(m *treesitter.Match) string {
	ret := "void"
	if rt := m.Get("returnType"); rt.IsValid() {
		ret = rt.Text()
	}
	var types []string
	for _, p := range m.GetAll("parameters") {
		if t := p.ChildByField("type"); t.IsValid() {
			types = append(types, t.Text())
		}
	}
	return fmt.Sprintf("%s (%s)", ret, strings.Join(types, ", "))
}

// enclosingScope walks up from the name node to the nearest class or
// struct and returns its name. Lookup only; the symbol never owns the
// scope it reports.
func enclosingScope(nd treesitter.Node) string {
	for cur := nd.Parent(); cur.IsValid(); cur = cur.Parent() {
		switch cur.Kind() {
		case "class_specifier", "struct_specifier":
			if name := cur.ChildByField("name"); name.IsValid() {
				return name.Text()
			}
		}
	}
	return ""
}

// DeleteSymbols removes the given symbols from the buffer in one edit
// block. Removal happens back-to-front, by descending start offset, so
// deleting one symbol never shifts the still-pending ranges of the others
// (symbol ranges never overlap).
func (d *Document) DeleteSymbols(symbols []*Symbol) error {
	if len(symbols) == 0 {
		return nil
	}

	ranges := make([]TextRange, 0, len(symbols))
	for _, s := range symbols {
		r, err := s.Range()
		if err != nil {
			return err
		}
		ranges = append(ranges, r)
	}
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start > ranges[j].Start
	})

	session, err := d.Begin()
	if err != nil {
		return err
	}
	for _, r := range ranges {
		if err := session.RemoveRange(r); err != nil {
			session.Rollback()
			return err
		}
	}
	return session.Commit()
}
