package textstore

import (
	"io"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// Store is a piece-table text store. The document is represented as an
// ordered list of pieces referencing two backing buffers: the original text
// and an append-only buffer of insertions. A derived line index is rebuilt
// after every mutation.
//
// All numeric arguments are clamped into range; no operation fails or panics
// for out-of-range input.
//
// All methods are thread-safe, but the store is designed for one writer:
// hosts interleaving edits from multiple goroutines get well-defined but
// unspecified ordering.
type Store struct {
	mu       sync.RWMutex
	original []byte
	added    []byte
	pieces   []Piece
	length   int
	lines    []LineInfo
	revision Revision
}

// New creates an empty store.
func New() *Store {
	s := &Store{revision: NextRevision()}
	s.rebuildLines()
	return s
}

// NewFromString creates a store with initial content.
// CRLF and CR line endings are normalized to LF.
func NewFromString(text string) *Store {
	s := &Store{revision: NextRevision()}
	text = normalizeNewlines(text)
	s.original = []byte(text)
	if len(s.original) > 0 {
		s.pieces = []Piece{{Source: Original, Start: 0, Length: len(s.original)}}
	}
	s.length = len(s.original)
	s.rebuildLines()
	return s
}

// NewFromReader creates a store from an io.Reader.
func NewFromReader(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data)), nil
}

// normalizeNewlines converts CRLF and CR line endings to LF so the line
// index never sees a bare carriage return.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Insert inserts text at the given byte offset. Offsets below zero clamp to
// the document start; offsets past the end clamp to the end. Empty text is a
// no-op. The text is appended to the added buffer and a piece referencing it
// is spliced in, splitting an existing piece when the offset falls strictly
// inside it.
func (s *Store) Insert(offset int, text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	text = normalizeNewlines(text)
	if offset < 0 {
		offset = 0
	}
	if offset > s.length {
		offset = s.length
	}

	addStart := len(s.added)
	s.added = append(s.added, text...)
	piece := Piece{Source: Added, Start: addStart, Length: len(text)}

	// Locate the splice point: the first piece whose span reaches offset.
	acc := 0
	i := 0
	for i < len(s.pieces) && acc+s.pieces[i].Length < offset {
		acc += s.pieces[i].Length
		i++
	}

	switch {
	case i == len(s.pieces):
		s.pieces = append(s.pieces, piece)
	case offset == acc:
		s.pieces = insertPiece(s.pieces, i, piece)
	case offset == acc+s.pieces[i].Length:
		s.pieces = insertPiece(s.pieces, i+1, piece)
	default:
		// Offset falls strictly inside piece i: split it around the insertion.
		p := s.pieces[i]
		rel := offset - acc
		before := Piece{Source: p.Source, Start: p.Start, Length: rel}
		after := Piece{Source: p.Source, Start: p.Start + rel, Length: p.Length - rel}
		s.pieces[i] = before
		s.pieces = insertPiece(s.pieces, i+1, piece)
		s.pieces = insertPiece(s.pieces, i+2, after)
	}

	s.length += len(text)
	s.revision = NextRevision()
	s.rebuildLines()
}

// Delete removes up to length bytes starting at offset. The range is clamped
// into the document; a non-positive clamped length is a no-op. Pieces fully
// inside the range are dropped, straddling pieces are truncated, and a piece
// covering the whole range is split into its surviving head and tail.
func (s *Store) Delete(offset, length int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset < 0 {
		length += offset
		offset = 0
	}
	if length <= 0 || offset >= s.length {
		return
	}
	end := offset + length
	if end > s.length {
		end = s.length
	}

	out := make([]Piece, 0, len(s.pieces)+1)
	acc := 0
	for _, p := range s.pieces {
		pStart, pEnd := acc, acc+p.Length
		acc = pEnd

		if pEnd <= offset || pStart >= end {
			out = append(out, p)
			continue
		}
		if pStart < offset {
			out = append(out, Piece{Source: p.Source, Start: p.Start, Length: offset - pStart})
		}
		if pEnd > end {
			out = append(out, Piece{Source: p.Source, Start: p.Start + (end - pStart), Length: pEnd - end})
		}
	}

	s.pieces = out
	s.length -= end - offset
	s.revision = NextRevision()
	s.rebuildLines()
}

// Text returns the full document content.
func (s *Store) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textRangeLocked(0, s.length)
}

// TextRange returns the substring in [start, end), clamped into the document.
// An inverted or fully out-of-range request returns the empty string.
func (s *Store) TextRange(start, end int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textRangeLocked(start, end)
}

func (s *Store) textRangeLocked(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > s.length {
		end = s.length
	}
	if end <= start {
		return ""
	}

	var b strings.Builder
	b.Grow(end - start)
	acc := 0
	for _, p := range s.pieces {
		pStart, pEnd := acc, acc+p.Length
		acc = pEnd
		if pEnd <= start {
			continue
		}
		if pStart >= end {
			break
		}
		from, to := p.Start, p.End()
		if pStart < start {
			from += start - pStart
		}
		if pEnd > end {
			to -= pEnd - end
		}
		b.Write(s.bufferFor(p.Source)[from:to])
	}
	return b.String()
}

func (s *Store) bufferFor(src Source) []byte {
	if src == Added {
		return s.added
	}
	return s.original
}

// Len returns the total byte length of the document.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length
}

// IsEmpty returns true if the document has no content.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length == 0
}

// Revision returns the current revision.
func (s *Store) Revision() Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// LineCount returns the number of lines. An empty document has one line.
func (s *Store) LineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Line returns the text of the 1-indexed line without its terminator.
// Lines outside [1, LineCount] yield the empty string.
func (s *Store) Line(n int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 1 || n > len(s.lines) {
		return ""
	}
	li := s.lines[n-1]
	return s.textRangeLocked(li.Start, li.Start+li.Length)
}

// LineSpan returns the byte span of the 1-indexed line without its
// terminator, clamping out-of-range lines to the nearest valid line.
func (s *Store) LineSpan(n int) Span {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n < 1 {
		n = 1
	}
	if n > len(s.lines) {
		n = len(s.lines)
	}
	li := s.lines[n-1]
	return Span{Start: li.Start, End: li.Start + li.Length}
}

// OffsetToPosition converts a byte offset to a 1-indexed line/column
// position. Out-of-range offsets clamp to the document start or end.
func (s *Store) OffsetToPosition(offset int) Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offsetToPositionLocked(offset)
}

func (s *Store) offsetToPositionLocked(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > s.length {
		offset = s.length
	}

	// Last line whose start is at or before the offset.
	n := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i].Start > offset
	})
	li := s.lines[n-1]

	col := offset - li.Start + 1
	if col > li.Length+1 {
		col = li.Length + 1
	}
	return Position{Line: n, Column: col}
}

// PositionToOffset converts a 1-indexed line/column position to a byte
// offset. Line and column are clamped: line 0 maps to line 1, a line past the
// end maps to the last line, and a column beyond the line maps to the caret
// position one past its last character.
func (s *Store) PositionToOffset(pos Position) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	line := pos.Line
	if line < 1 {
		line = 1
	}
	if line > len(s.lines) {
		line = len(s.lines)
	}
	li := s.lines[line-1]

	col := pos.Column
	if col < 1 {
		col = 1
	}
	if col > li.Length+1 {
		col = li.Length + 1
	}
	return li.Start + col - 1
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if the offset is out of range.
func (s *Store) RuneAt(offset int) (rune, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || offset >= s.length {
		return utf8.RuneError, 0
	}
	end := offset + utf8.UTFMax
	if end > s.length {
		end = s.length
	}
	return utf8.DecodeRuneInString(s.textRangeLocked(offset, end))
}

// PieceCount returns the number of pieces in the table.
func (s *Store) PieceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pieces)
}

func insertPiece(pieces []Piece, i int, p Piece) []Piece {
	pieces = append(pieces, Piece{})
	copy(pieces[i+1:], pieces[i:])
	pieces[i] = p
	return pieces
}
