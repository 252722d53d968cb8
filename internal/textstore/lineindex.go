package textstore

// LineInfo describes one line in the derived line index. A line is a maximal
// run of bytes not containing '\n'; the terminator is not part of the line.
type LineInfo struct {
	Start    int // Byte offset of the line start in the document
	Length   int // Byte length of the line, excluding the terminator
	Piece    int // Index of the piece containing the line start
	PieceOff int // Offset of the line start within that piece
}

// rebuildLines rebuilds the entire line index with one linear scan over the
// pieces. Correctness over incrementality: every mutation pays the full scan,
// and the index is trivially consistent afterwards. The final entry always
// exists; an empty document has exactly one zero-length line.
func (s *Store) rebuildLines() {
	lines := make([]LineInfo, 0, len(s.lines)+1)
	cur := LineInfo{}
	offset := 0

	for pi := range s.pieces {
		p := s.pieces[pi]
		buf := s.bufferFor(p.Source)[p.Start:p.End()]
		for bi := 0; bi < len(buf); bi++ {
			if buf[bi] == '\n' {
				cur.Length = offset - cur.Start
				lines = append(lines, cur)
				if bi+1 < len(buf) {
					cur = LineInfo{Start: offset + 1, Piece: pi, PieceOff: bi + 1}
				} else {
					cur = LineInfo{Start: offset + 1, Piece: pi + 1}
				}
			}
			offset++
		}
	}

	cur.Length = offset - cur.Start
	lines = append(lines, cur)
	s.lines = lines
}
