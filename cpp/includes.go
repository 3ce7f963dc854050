package cpp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyBrackets/knut/document"
	"github.com/phyBrackets/knut/languages"
)

// ErrMalformedInclude is returned for include arguments that are neither
// `"foo.h"` nor `<foo.h>`.
var ErrMalformedInclude = errors.New(`malformed include, expected "foo.h" or <foo.h>`)

func validateInclude(include string) error {
	if len(include) >= 2 {
		if strings.HasPrefix(include, `"`) && strings.HasSuffix(include, `"`) {
			return nil
		}
		if strings.HasPrefix(include, "<") && strings.HasSuffix(include, ">") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMalformedInclude, include)
}

func includeSymbols(doc *document.Document) []*document.Symbol {
	var includes []*document.Symbol
	for _, s := range doc.Symbols() {
		if s.Kind() == languages.KindInclude {
			includes = append(includes, s)
		}
	}
	return includes
}

// InsertInclude inserts `#include <include>` into the document: after the
// last existing include, or at the top of the buffer when there is none.
// With newGroup the new directive is separated by a blank line. Returns
// false without touching the buffer if the include is already present.
func InsertInclude(doc *document.Document, include string, newGroup bool) (bool, error) {
	if err := validateInclude(include); err != nil {
		log.Errorf("InsertInclude: %s", err.Error())
		return false, err
	}
	name := strings.Trim(include, `"<>`)

	includes := includeSymbols(doc)
	for _, s := range includes {
		if s.Name() == name {
			log.Infof("InsertInclude: %s is already included in %s", include, doc.Path())
			return false, nil
		}
	}

	directive := "#include " + include
	insertPos := 0
	payload := directive + "\n"
	if len(includes) > 0 {
		last := includes[len(includes)-1]
		r, err := last.Range()
		if err != nil {
			return false, err
		}
		insertPos = lineEnd(doc.Text(), r.Start)
		payload = "\n" + directive
		if newGroup {
			payload = "\n" + payload
		}
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

// RemoveInclude deletes the line containing `#include <include>`. A
// directive that is not present is a normal no-op result.
func RemoveInclude(doc *document.Document, include string) (bool, error) {
	if err := validateInclude(include); err != nil {
		log.Errorf("RemoveInclude: %s", err.Error())
		return false, err
	}
	name := strings.Trim(include, `"<>`)

	for _, s := range includeSymbols(doc) {
		if s.Name() != name {
			continue
		}
		r, err := s.Range()
		if err != nil {
			return false, err
		}
		text := doc.Text()
		start := lineStart(text, r.Start)
		end := lineEnd(text, r.Start)
		if end < len(text) {
			end++ // take the newline with the line
		}

		session, err := doc.Begin()
		if err != nil {
			return false, err
		}
		if err := session.RemoveRange(document.TextRange{Start: start, End: end}); err != nil {
			session.Rollback()
			return false, err
		}
		if err := session.Commit(); err != nil {
			return false, err
		}
		return true, nil
	}

	log.Infof("RemoveInclude: %s is not included in %s", include, doc.Path())
	return false, nil
}

func lineStart(text string, pos int) int {
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEnd(text string, pos int) int {
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}
