package textstore

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordBoundaries returns the span of the word at the given offset, for
// double-click style selection. The word character class is letters, digits
// and underscore. The scan walks grapheme clusters so combining marks stay
// attached to their base character. A position on a non-word character (or at
// end of line) yields a zero-width span at the clamped offset rather than
// snapping to a neighboring word.
func (s *Store) WordBoundaries(offset int) Span {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset > s.length {
		offset = s.length
	}

	pos := s.offsetToPositionLocked(offset)
	li := s.lines[pos.Line-1]
	line := s.textRangeLocked(li.Start, li.Start+li.Length)
	rel := offset - li.Start
	if rel > len(line) {
		rel = len(line)
	}

	type cluster struct {
		start, end int
		word       bool
	}
	clusters := make([]cluster, 0, len(line))
	state := -1
	i := 0
	for str := line; len(str) > 0; {
		c, rest, _, st := uniseg.FirstGraphemeClusterInString(str, state)
		r, _ := utf8.DecodeRuneInString(c)
		clusters = append(clusters, cluster{start: i, end: i + len(c), word: isWordRune(r)})
		i += len(c)
		str = rest
		state = st
	}

	at := -1
	for j, c := range clusters {
		if rel >= c.start && rel < c.end {
			at = j
			break
		}
	}
	if at < 0 || !clusters[at].word {
		return Span{Start: offset, End: offset}
	}

	lo, hi := at, at
	for lo > 0 && clusters[lo-1].word {
		lo--
	}
	for hi+1 < len(clusters) && clusters[hi+1].word {
		hi++
	}
	return Span{Start: li.Start + clusters[lo].start, End: li.Start + clusters[hi].end}
}

// LineBoundaries returns the span of the 1-indexed line without its
// terminator, for triple-click style selection. Out-of-range lines clamp to
// the nearest valid line.
func (s *Store) LineBoundaries(line int) Span {
	return s.LineSpan(line)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
