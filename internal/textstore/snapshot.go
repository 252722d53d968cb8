package textstore

import "strings"

// Snapshot is an immutable deep copy of a store's state. Two snapshots are
// independent: mutating the live store after taking one never changes what it
// restores to. The original buffer is shared because it is never written
// after construction.
type Snapshot struct {
	original []byte
	added    []byte
	pieces   []Piece
	lines    []LineInfo
	length   int
	revision Revision
}

// TakeSnapshot captures the current state of the store.
func (s *Store) TakeSnapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		original: s.original,
		added:    make([]byte, len(s.added)),
		pieces:   make([]Piece, len(s.pieces)),
		lines:    make([]LineInfo, len(s.lines)),
		length:   s.length,
		revision: s.revision,
	}
	copy(snap.added, s.added)
	copy(snap.pieces, s.pieces)
	copy(snap.lines, s.lines)
	return snap
}

// Restore overwrites the store's state with the snapshot's, atomically from
// the caller's perspective. Restoring a nil snapshot is a no-op; Restore
// never fails. The snapshot remains valid and reusable afterwards.
func (s *Store) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.original = snap.original
	s.added = make([]byte, len(snap.added))
	copy(s.added, snap.added)
	s.pieces = make([]Piece, len(snap.pieces))
	copy(s.pieces, snap.pieces)
	s.lines = make([]LineInfo, len(snap.lines))
	copy(s.lines, snap.lines)
	s.length = snap.length
	s.revision = NextRevision()
}

// Text returns the full content the snapshot captured.
func (s *Snapshot) Text() string {
	var b strings.Builder
	b.Grow(s.length)
	for _, p := range s.pieces {
		buf := s.original
		if p.Source == Added {
			buf = s.added
		}
		b.Write(buf[p.Start:p.End()])
	}
	return b.String()
}

// Len returns the byte length of the captured content.
func (s *Snapshot) Len() int {
	return s.length
}

// LineCount returns the number of lines the snapshot captured.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Revision returns the revision the snapshot was taken at.
func (s *Snapshot) Revision() Revision {
	return s.revision
}
