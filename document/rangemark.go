package document

// RangeMark is a TextRange bound to one live document. Every edit block
// committed on the document repositions the mark; a mark whose backing span
// is entirely removed becomes dead, and further use returns ErrRangeInvalid.
type RangeMark struct {
	doc   *Document
	start int
	end   int
	dead  bool
}

// IsValid reports whether the mark still tracks live text.
func (m *RangeMark) IsValid() bool { return m != nil && !m.dead }

// Range returns the mark's current span.
func (m *RangeMark) Range() (TextRange, error) {
	if !m.IsValid() {
		return TextRange{}, ErrRangeInvalid
	}
	return TextRange{Start: m.start, End: m.end}, nil
}

// Start returns the mark's current start offset.
func (m *RangeMark) Start() (int, error) {
	if !m.IsValid() {
		return 0, ErrRangeInvalid
	}
	return m.start, nil
}

// End returns the mark's current end offset.
func (m *RangeMark) End() (int, error) {
	if !m.IsValid() {
		return 0, ErrRangeInvalid
	}
	return m.end, nil
}

// Text returns the text currently covered by the mark.
func (m *RangeMark) Text() (string, error) {
	if !m.IsValid() {
		return "", ErrRangeInvalid
	}
	return string(m.doc.text[m.start:m.end]), nil
}

// Discard detaches the mark from its document. The mark is dead afterwards.
func (m *RangeMark) Discard() {
	if m == nil || m.dead {
		return
	}
	m.dead = true
	m.doc.tracker.discard(m)
}
