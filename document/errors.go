package document

import "errors"

// Typed, recoverable errors. None of these corrupt document state: the
// failing operation leaves the buffer exactly as it was, and the caller may
// retry after correcting its input.
var (
	// ErrRangeInvalid is returned when using a RangeMark whose backing
	// text was entirely deleted.
	ErrRangeInvalid = errors.New("range mark is no longer valid")

	// ErrPositionOutOfRange is returned for an offset outside the buffer;
	// inside an edit block it aborts the whole pending block.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrNestedEditBlock is returned by Begin while a block is already
	// open on the same document.
	ErrNestedEditBlock = errors.New("edit block already open")

	// ErrEditBlockClosed is returned when operating on a session that was
	// already committed or rolled back.
	ErrEditBlockClosed = errors.New("edit block already closed")

	// ErrNothingToUndo is returned by Undo on an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrUnsupportedFile is returned when no registered language claims
	// the file's extension.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
