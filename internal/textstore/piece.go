package textstore

import "fmt"

// Source identifies which backing buffer a piece references.
type Source uint8

const (
	// Original is the buffer holding the text the store was constructed with.
	// It is never written after construction.
	Original Source = iota
	// Added is the append-only buffer holding every inserted run of text.
	Added
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case Original:
		return "original"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Piece references one contiguous run of text in a backing buffer.
// The ordered concatenation of all pieces is the current document text.
type Piece struct {
	Source Source // Which backing buffer the run lives in
	Start  int    // Byte offset of the run within that buffer
	Length int    // Byte length of the run
}

// String returns a human-readable representation of the piece.
func (p Piece) String() string {
	return fmt.Sprintf("%s[%d:%d)", p.Source, p.Start, p.Start+p.Length)
}

// End returns the exclusive end offset of the run within its buffer.
func (p Piece) End() int {
	return p.Start + p.Length
}
