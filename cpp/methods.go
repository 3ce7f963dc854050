package cpp

import (
	"sort"
	"strings"

	"github.com/phyBrackets/knut/document"
)

// Position selects where InsertCodeInMethod places code inside a body.
type Position int

const (
	StartOfMethod Position = iota
	EndOfMethod
)

const tab = "    "

// DeleteMethod deletes the function or method with the given qualified
// name. With an empty signature every overload is removed; otherwise only
// the exact match. Symbols are removed back-to-front, by descending start
// offset, in a single edit block, so removing one never invalidates the
// still-pending ranges of the others. Returns the number of symbols
// removed; a method that does not exist is a normal zero result.
func DeleteMethod(doc *document.Document, methodName, signature string) (int, error) {
	var victims []*document.Symbol
	for _, s := range doc.FindSymbols(methodName) {
		if !s.IsFunction() {
			continue
		}
		if signature != "" && s.Signature() != signature {
			continue
		}
		victims = append(victims, s)
	}
	if len(victims) == 0 {
		log.Infof("DeleteMethod: no method %q in %s", methodName, doc.Path())
		return 0, nil
	}

	sort.SliceStable(victims, func(i, j int) bool {
		ri, erri := victims[i].Range()
		rj, errj := victims[j].Range()
		return erri == nil && errj == nil && ri.Start > rj.Start
	})
	for _, s := range victims {
		log.Debugf("DeleteMethod: removing symbol %q", s.Name())
	}

	if err := doc.DeleteSymbols(victims); err != nil {
		return 0, err
	}
	return len(victims), nil
}

// DeleteMethodAt deletes the function enclosing the given position.
// Overloads are left alone. Returns false if the position is not inside a
// function definition or declaration.
func DeleteMethodAt(doc *document.Document, pos int) (bool, error) {
	sym := doc.SymbolAt(pos, (*document.Symbol).IsFunction)
	if sym == nil {
		log.Warningf("DeleteMethodAt: position %d is not within a function in %s", pos, doc.Path())
		return false, nil
	}
	n, err := DeleteMethod(doc, sym.Name(), sym.Signature())
	return n > 0, err
}

// InsertCodeInMethod inserts code at the start or end of an existing
// method definition's body. Does nothing (and reports false) if the method
// does not exist in the document or has no body.
func InsertCodeInMethod(doc *document.Document, methodName, code string, insertAt Position) (bool, error) {
	var sym *document.Symbol
	for _, s := range doc.FindSymbols(methodName) {
		if s.IsFunction() {
			sym = s
			break
		}
	}
	if sym == nil {
		log.Warningf("InsertCodeInMethod: no symbol found for %q", methodName)
		return false, nil
	}
	r, err := sym.Range()
	if err != nil {
		return false, err
	}
	text := doc.Text()
	if r.End == 0 || r.End > len(text) || text[r.End-1] != '}' {
		log.Warningf("InsertCodeInMethod: %q is not a function definition", methodName)
		return false, nil
	}

	code = strings.TrimRight(code, "\n")
	indented := strings.ReplaceAll(code, "\n", "\n"+tab)

	var insertPos int
	var payload string
	if insertAt == StartOfMethod {
		open := doc.BlockStart(r.End - 1)
		insertPos = open + 1
		payload = "\n" + tab + indented
	} else {
		insertPos = r.End - 1
		payload = tab + indented + "\n"
	}

	session, err := doc.Begin()
	if err != nil {
		return false, err
	}
	if err := session.InsertAt(insertPos, payload); err != nil {
		session.Rollback()
		return false, err
	}
	if err := session.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// CommentOutRange comments out the given span with a block comment, as one
// atomic edit block. The closing marker is inserted first so the opening
// insertion cannot shift it.
func CommentOutRange(doc *document.Document, r document.TextRange) error {
	session, err := doc.Begin()
	if err != nil {
		return err
	}
	if err := session.InsertAt(r.End, "*/"); err != nil {
		session.Rollback()
		return err
	}
	if err := session.InsertAt(r.Start, "/*"); err != nil {
		session.Rollback()
		return err
	}
	return session.Commit()
}
