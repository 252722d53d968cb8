package textstore

import "testing"

func TestWordBoundaries(t *testing.T) {
	s := NewFromString("hello big_world 42x")

	tests := []struct {
		name   string
		offset int
		want   Span
	}{
		{"start of word", 0, Span{0, 5}},
		{"inside word", 2, Span{0, 5}},
		{"underscore joins", 8, Span{6, 15}},
		{"digits are word chars", 16, Span{16, 19}},
	}
	for _, tt := range tests {
		if got := s.WordBoundaries(tt.offset); got != tt.want {
			t.Errorf("%s: WordBoundaries(%d) = %v, want %v", tt.name, tt.offset, got, tt.want)
		}
	}
}

func TestWordBoundariesOnNonWord(t *testing.T) {
	s := NewFromString("a + b")

	// Sitting on the '+' yields a zero-width span there, not the neighbor.
	if got := s.WordBoundaries(2); got != (Span{2, 2}) {
		t.Errorf("expected zero-width span at 2, got %v", got)
	}
	// Same for the space.
	if got := s.WordBoundaries(1); got != (Span{1, 1}) {
		t.Errorf("expected zero-width span at 1, got %v", got)
	}
}

func TestWordBoundariesClamped(t *testing.T) {
	s := NewFromString("word")

	if got := s.WordBoundaries(-5); got != (Span{0, 4}) {
		t.Errorf("negative offset should clamp to start, got %v", got)
	}
	// Clamped to end of document: caret past the last character is not on a
	// word character.
	if got := s.WordBoundaries(100); got != (Span{4, 4}) {
		t.Errorf("expected zero-width span at end, got %v", got)
	}
}

func TestWordBoundariesStayOnLine(t *testing.T) {
	s := NewFromString("one\ntwo")

	if got := s.WordBoundaries(5); got != (Span{4, 7}) {
		t.Errorf("expected word on second line, got %v", got)
	}
	// Offset of the newline itself is the end-of-line caret position.
	if got := s.WordBoundaries(3); got != (Span{3, 3}) {
		t.Errorf("expected zero-width span at newline, got %v", got)
	}
}

func TestWordBoundariesUnicode(t *testing.T) {
	// "héllo" with a combining acute accent: the mark must stay attached.
	s := NewFromString("héllo there")

	got := s.WordBoundaries(0)
	if got.Start != 0 || s.TextRange(got.Start, got.End) != "héllo" {
		t.Errorf("expected accented word, got %q", s.TextRange(got.Start, got.End))
	}
}

func TestLineBoundaries(t *testing.T) {
	s := NewFromString("first\nsecond\nthird")

	if got := s.LineBoundaries(2); got != (Span{6, 12}) {
		t.Errorf("expected [6:12), got %v", got)
	}
	// Out-of-range lines clamp.
	if got := s.LineBoundaries(0); got != (Span{0, 5}) {
		t.Errorf("expected first line span, got %v", got)
	}
	if got := s.LineBoundaries(99); got != (Span{13, 18}) {
		t.Errorf("expected last line span, got %v", got)
	}
}
