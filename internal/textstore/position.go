package textstore

import (
	"fmt"
	"sync/atomic"
)

// Position is a line/column location in the document.
// Both Line and Column are 1-indexed. Column is measured in bytes from the
// start of the line; column lineLength+1 is the caret position at end-of-line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Span is a half-open byte range [Start, End) in the document.
type Span struct {
	Start int
	End   int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Revision identifies one state of a store. Every mutation produces a new
// revision, so hosts can cheaply detect whether cached derived data is stale.
type Revision uint64

var revisionCounter uint64

// NextRevision generates a new unique revision. Thread-safe.
func NextRevision() Revision {
	return Revision(atomic.AddUint64(&revisionCounter, 1))
}
