package document

// Delimiter-balance block navigation. Works on the raw buffer with no
// parse, as a complement to structural queries for legacy or macro-heavy
// regions where the tree is unreliable. The two strategies are never
// interleaved: callers pick one.
//
// The walk optionally steps into an immediately-adjacent delimiter, then
// moves character by character keeping a nesting counter, and returns the
// position where the counter first balances to the matching side. If the
// buffer is exhausted without balancing (unbalanced or malformed input),
// the original offset is returned unchanged; that fallback is part of the
// contract, not an error.

const (
	openDelims  = "({["
	closeDelims = ")}]"
)

func delimIn(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

func charAt(text []byte, pos int) byte {
	if pos < 0 || pos >= len(text) {
		return 0
	}
	return text[pos]
}

// moveBlock walks from startPos to the balancing side of the enclosing
// block. forward scans toward the closing delimiter, backward toward the
// opening one.
func moveBlock(text []byte, startPos int, forward bool) int {
	inc := 1
	lastPos := len(text)
	if !forward {
		inc = -1
		lastPos = 0
	}
	if startPos == lastPos {
		return startPos
	}

	// Delimiters that increment or decrement the counter depend on the
	// scan direction.
	incDelims, decDelims := openDelims, closeDelims
	if !forward {
		incDelims, decDelims = closeDelims, openDelims
	}

	pos := startPos + inc

	// If the adjacent character is a delimiter, step inside the block.
	if delimIn(incDelims, charAt(text, pos)) {
		pos += inc
	}

	counter := 0
	pos += inc

	// The backward walk must still examine offset 0: an opening delimiter
	// at the start of the buffer is a valid block start.
	hitLast := func(p int) bool {
		if forward {
			return p >= lastPos
		}
		return p < lastPos
	}

	for !hitLast(pos) {
		c := charAt(text, pos)
		if delimIn(incDelims, c) {
			counter++
		} else if delimIn(decDelims, c) {
			counter--
			// Counter going negative means we found the other side.
			if counter < 0 {
				if forward {
					return pos + 1
				}
				return pos
			}
		}
		pos += inc
	}
	return startPos
}

// BlockEnd returns the position just past the closing delimiter of the
// block containing pos, or pos unchanged if no balancing delimiter exists.
func BlockEnd(text []byte, pos int) int {
	return moveBlock(text, pos, true)
}

// BlockStart returns the position of the opening delimiter of the block
// containing pos, or pos unchanged.
func BlockStart(text []byte, pos int) int {
	return moveBlock(text, pos, false)
}

// BlockEnd returns the end of the block containing pos in the document.
func (d *Document) BlockEnd(pos int) int { return BlockEnd(d.text, pos) }

// BlockStart returns the start of the block containing pos in the document.
func (d *Document) BlockStart(pos int) int { return BlockStart(d.text, pos) }

// BlockRange returns the span of the block containing pos: from the
// opening delimiter to just past its closer. If either side cannot be
// found the degenerate range {pos, pos} is returned.
func (d *Document) BlockRange(pos int) TextRange {
	end := d.BlockEnd(pos)
	if end == pos {
		return TextRange{Start: pos, End: pos}
	}
	start := d.BlockStart(end)
	if start == end {
		return TextRange{Start: pos, End: pos}
	}
	return TextRange{Start: start, End: end}
}
