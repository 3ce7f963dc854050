package document

import (
	"github.com/phyBrackets/knut/languages"
)

// Symbol is a named, located code entity derived from the language's query
// battery. Its ranges are live marks. The catalogue is rebuilt after every
// committed edit block; symbol handles taken before the commit are detached
// at that point and report ErrRangeInvalid rather than stale positions. The
// scope is a lookup-only name of the enclosing entity, never an owning
// reference.
type Symbol struct {
	kind      string
	name      string
	signature string
	scope     string
	mark      *RangeMark // whole declaration or definition
	selMark   *RangeMark // the name
	defMark   *RangeMark // the body, for definitions only
}

// Kind returns the symbol kind, one of the languages.Kind* values.
func (s *Symbol) Kind() string { return s.kind }

// Name returns the qualified name (e.g. "Foo::bar").
func (s *Symbol) Name() string { return s.name }

// Signature returns the symbol description, "<return type> (<parameter
// types>)" for functions and empty otherwise.
func (s *Symbol) Signature() string { return s.signature }

// Scope returns the name of the enclosing class or struct, if any.
func (s *Symbol) Scope() string { return s.scope }

// IsFunction reports whether the symbol is a function or method.
func (s *Symbol) IsFunction() bool { return s.kind == languages.KindFunction }

// IsClass reports whether the symbol is a class or struct.
func (s *Symbol) IsClass() bool { return s.kind == languages.KindClass }

// Range returns the symbol's current declaration range.
func (s *Symbol) Range() (TextRange, error) {
	return s.mark.Range()
}

// SelectionRange returns the current range of the symbol's name.
func (s *Symbol) SelectionRange() (TextRange, error) {
	return s.selMark.Range()
}

// HasDefinition reports whether the symbol carries a body.
func (s *Symbol) HasDefinition() bool { return s.defMark != nil }

// DefinitionRange returns the current range of the symbol's body.
// Symbols without a body report ErrRangeInvalid.
func (s *Symbol) DefinitionRange() (TextRange, error) {
	if s.defMark == nil {
		return TextRange{}, ErrRangeInvalid
	}
	return s.defMark.Range()
}

// IsValid reports whether the symbol's backing text is still present.
func (s *Symbol) IsValid() bool { return s.mark.IsValid() }

func (s *Symbol) discardMarks() {
	s.mark.Discard()
	s.selMark.Discard()
	if s.defMark != nil {
		s.defMark.Discard()
	}
}
