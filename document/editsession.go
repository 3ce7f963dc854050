package document

import (
	"fmt"

	"github.com/phyBrackets/knut/treesitter"
)

// editRecord is one primitive operation of a block, with enough text kept
// to invert it for undo.
type editRecord struct {
	pos      int
	removed  []byte
	inserted []byte
	edit     treesitter.Edit
}

// EditSession groups primitive text operations into one atomic, undoable
// block. Operations apply in call order to a working copy; each position
// addresses the buffer as left by the previous operations of the same
// block. An out-of-bounds position poisons the whole block: Commit then
// leaves the document exactly as it was before Begin.
type EditSession struct {
	doc     *Document
	work    []byte
	records []editRecord
	err     error
	closed  bool
	undoing bool
}

// Begin opens an edit block on the document. Nested blocks on one
// document are not supported and fail fast.
func (d *Document) Begin() (*EditSession, error) {
	if d.session != nil {
		return nil, ErrNestedEditBlock
	}
	s := &EditSession{doc: d, work: append([]byte(nil), d.text...)}
	d.session = s
	return s, nil
}

// InsertAt inserts text at pos.
func (s *EditSession) InsertAt(pos int, text string) error {
	return s.apply(pos, pos, text)
}

// RemoveRange deletes the text covered by r.
func (s *EditSession) RemoveRange(r TextRange) error {
	return s.apply(r.Start, r.End, "")
}

// ReplaceRange replaces the text covered by r with text.
func (s *EditSession) ReplaceRange(r TextRange, text string) error {
	return s.apply(r.Start, r.End, text)
}

func (s *EditSession) apply(start, end int, text string) error {
	if s.closed {
		return ErrEditBlockClosed
	}
	if s.err != nil {
		return s.err
	}
	if start < 0 || end > len(s.work) || start > end {
		s.err = fmt.Errorf("%w: {%d, %d} in buffer of length %d", ErrPositionOutOfRange, start, end, len(s.work))
		return s.err
	}

	removed := append([]byte(nil), s.work[start:end]...)
	inserted := []byte(text)

	edit := treesitter.Edit{
		Start:       start,
		OldEnd:      end,
		NewEnd:      start + len(inserted),
		StartPoint:  treesitter.PointAt(s.work, start),
		OldEndPoint: treesitter.PointAt(s.work, end),
	}

	next := make([]byte, 0, len(s.work)+len(inserted)-len(removed))
	next = append(next, s.work[:start]...)
	next = append(next, inserted...)
	next = append(next, s.work[end:]...)
	s.work = next

	edit.NewEndPoint = treesitter.PointAt(s.work, start+len(inserted))

	s.records = append(s.records, editRecord{
		pos:      start,
		removed:  removed,
		inserted: inserted,
		edit:     edit,
	})
	return nil
}

// Commit atomically applies the block: the buffer is swapped, all live
// marks are renormalized once, the tree is reparsed and the symbol index
// rebuilt. If any operation of the block failed, Commit returns that
// error and the document is untouched.
func (s *EditSession) Commit() error {
	if s.closed {
		return ErrEditBlockClosed
	}
	s.close()
	if s.err != nil {
		return s.err
	}
	if len(s.records) == 0 {
		return nil
	}
	return s.doc.commit(s.work, s.records, !s.undoing)
}

// Rollback abandons the block; the document is untouched.
func (s *EditSession) Rollback() {
	if s.closed {
		return
	}
	s.close()
}

func (s *EditSession) close() {
	s.closed = true
	if s.doc.session == s {
		s.doc.session = nil
	}
}
