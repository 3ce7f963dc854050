package document

import "fmt"

// TextRange is a half-open [Start, End) span of byte offsets in a buffer.
// Invariant: Start <= End.
type TextRange struct {
	Start int
	End   int
}

// Length returns End - Start.
func (r TextRange) Length() int { return r.End - r.Start }

// Contains reports whether pos lies inside the range: Start <= pos < End.
func (r TextRange) Contains(pos int) bool {
	return r.Start <= pos && pos < r.End
}

// ContainsRange reports whether other is fully nested inside r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("{%d, %d}", r.Start, r.End)
}
