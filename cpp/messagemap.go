package cpp

import (
	"fmt"

	"github.com/phyBrackets/knut/document"
)

// MessageMapEntry is one entry of an MFC message map: the macro name and
// its arguments, with a live mark over the whole entry.
type MessageMapEntry struct {
	Name       string
	Parameters []string
	Range      *document.RangeMark
}

// MessageMap is the information contained in an MFC MESSAGE_MAP block:
// the class and superclass it is declared for, the entries between
// BEGIN_MESSAGE_MAP and END_MESSAGE_MAP, and a live mark over the whole
// block. The marks stay valid across subsequent edit blocks.
type MessageMap struct {
	ClassName  string
	SuperClass string
	Entries    []MessageMapEntry
	Range      *document.RangeMark
}

// IsValid reports whether a message map was found and its text is still
// present.
func (m *MessageMap) IsValid() bool {
	return m != nil && m.Range.IsValid()
}

// ExtractMessageMap finds the MESSAGE_MAP in the document. With a
// non-empty className the map must belong to that class. Returns nil if
// the document has no (matching) message map; that is a normal outcome.
// The message map is assumed to be top-level.
func ExtractMessageMap(doc *document.Document, className string) (*MessageMap, error) {
	classCheck := ""
	if className != "" {
		classCheck = fmt.Sprintf("(#eq? @class %q)", className)
	}

	pattern := fmt.Sprintf(`
		(translation_unit
			(
				(expression_statement
					(call_expression
						function: (identifier) @begin_ident
						(#eq? @begin_ident "BEGIN_MESSAGE_MAP")
						arguments: (argument_list
							(identifier) @class
							%s
							(identifier) @superclass)) @begin)
				[
					(expression_statement
						(call_expression
							function: (identifier) @message-name
							arguments: (argument_list
								((_) @parameter ("," (_) @parameter)*)?))) @message
					(_)
				]*
				(expression_statement
					(call_expression
						function: (identifier) @end_ident
						(#eq? @end_ident "END_MESSAGE_MAP")) @end)
			)
		)`, classCheck)

	matches, err := doc.Query(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		log.Warningf("ExtractMessageMap: no message map found in %s", doc.Path())
		return nil, nil
	}
	match := matches[0]

	begin := match.Get("begin")
	end := match.Get("end")
	rng, err := doc.CreateMark(begin.StartByte(), end.EndByte())
	if err != nil {
		return nil, err
	}

	mm := &MessageMap{
		ClassName:  match.Get("class").Text(),
		SuperClass: match.Get("superclass").Text(),
		Range:      rng,
	}

	// Entries first, then names and parameters attached by containment:
	// the END_MESSAGE_MAP identifiers are excluded by construction.
	for _, msg := range match.GetAll("message") {
		mark, err := doc.CreateMark(msg.StartByte(), msg.EndByte())
		if err != nil {
			continue
		}
		mm.Entries = append(mm.Entries, MessageMapEntry{Range: mark})
	}
	locate := func(start int) *MessageMapEntry {
		for i := range mm.Entries {
			r, err := mm.Entries[i].Range.Range()
			if err == nil && r.Contains(start) {
				return &mm.Entries[i]
			}
		}
		return nil
	}
	for _, c := range match.Captures() {
		switch c.Name {
		case "message-name":
			if e := locate(c.Node.StartByte()); e != nil {
				e.Name = c.Node.Text()
			}
		case "parameter":
			if e := locate(c.Node.StartByte()); e != nil {
				e.Parameters = append(e.Parameters, c.Node.Text())
			}
		}
	}
	return mm, nil
}
