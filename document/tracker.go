package document

// tracker is the registry of live marks for one document. Marks are
// renormalized synchronously at edit-block commit, one O(live-mark-count)
// pass per committed edit; there is no callback graph.
type tracker struct {
	marks []*RangeMark
}

func (t *tracker) register(m *RangeMark) {
	t.marks = append(t.marks, m)
}

func (t *tracker) discard(m *RangeMark) {
	for i, cur := range t.marks {
		if cur == m {
			t.marks = append(t.marks[:i], t.marks[i+1:]...)
			return
		}
	}
}

// adjust repositions every live mark for one committed edit that removed
// `removed` bytes at pos and inserted `inserted` bytes in their place.
//
// Boundary rule (documented decision): an insertion exactly at a mark's
// end stays outside the mark; an insertion exactly at its start shifts the
// whole mark right. This keeps the half-open edit laws exact:
// i <= s shifts, i >= e leaves the mark alone, s < i < e grows the end.
func (t *tracker) adjust(pos, removed, inserted int) {
	delta := inserted - removed
	removedEnd := pos + removed

	live := t.marks[:0]
	for _, m := range t.marks {
		switch {
		case removed > 0 && pos <= m.start && m.end <= removedEnd:
			// The mark's whole backing span is gone.
			m.dead = true
			continue
		case removedEnd <= m.start:
			m.start += delta
			m.end += delta
		case pos >= m.end:
			// Edit fully after the mark.
		case pos <= m.start:
			// Removal overlaps the start boundary; the start absorbs
			// down to the edit position.
			m.start = pos
			m.end += delta
		case removedEnd >= m.end:
			// Removal overlaps the end boundary; the end absorbs the
			// replacement text.
			m.end = pos + inserted
		default:
			// Edit fully inside the mark.
			m.end += delta
		}
		live = append(live, m)
	}
	// Keep dead marks out of future passes.
	for i := len(live); i < len(t.marks); i++ {
		t.marks[i] = nil
	}
	t.marks = live
}
