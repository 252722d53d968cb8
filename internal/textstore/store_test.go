package textstore

import (
	"strings"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	s := New()

	if !s.IsEmpty() {
		t.Error("new store should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("expected length 0, got %d", s.Len())
	}
	if s.LineCount() != 1 {
		t.Errorf("empty document should have exactly one line, got %d", s.LineCount())
	}
	if s.Line(1) != "" {
		t.Errorf("expected empty line, got %q", s.Line(1))
	}
}

func TestNewFromString(t *testing.T) {
	s := NewFromString("Hello, World!")

	if s.Text() != "Hello, World!" {
		t.Errorf("expected 'Hello, World!', got %q", s.Text())
	}
	if s.Len() != 13 {
		t.Errorf("expected length 13, got %d", s.Len())
	}
}

func TestNewFromReader(t *testing.T) {
	s, err := NewFromReader(strings.NewReader("line1\nline2"))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}
	if s.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", s.LineCount())
	}
}

func TestNewFromStringNormalizesNewlines(t *testing.T) {
	s := NewFromString("a\r\nb\rc\nd")

	if s.Text() != "a\nb\nc\nd" {
		t.Errorf("expected normalized text, got %q", s.Text())
	}
	if s.LineCount() != 4 {
		t.Errorf("expected 4 lines, got %d", s.LineCount())
	}
}

func TestInsertAtStart(t *testing.T) {
	s := NewFromString("World")
	s.Insert(0, "Hello ")

	if s.Text() != "Hello World" {
		t.Errorf("expected 'Hello World', got %q", s.Text())
	}
	if s.Len() != 11 {
		t.Errorf("expected length 11, got %d", s.Len())
	}
}

func TestInsertAtEnd(t *testing.T) {
	s := NewFromString("Hello")
	s.Insert(5, " World")

	if s.Text() != "Hello World" {
		t.Errorf("expected 'Hello World', got %q", s.Text())
	}
}

func TestInsertSplitsPiece(t *testing.T) {
	s := NewFromString("HelloWorld")
	s.Insert(5, ", ")

	if s.Text() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", s.Text())
	}
	if s.PieceCount() != 3 {
		t.Errorf("expected 3 pieces after mid-piece insert, got %d", s.PieceCount())
	}
}

func TestInsertEmptyIsNoOp(t *testing.T) {
	s := NewFromString("abc")
	rev := s.Revision()
	s.Insert(1, "")

	if s.Text() != "abc" {
		t.Errorf("expected unchanged text, got %q", s.Text())
	}
	if s.Revision() != rev {
		t.Error("empty insert should not bump the revision")
	}
}

func TestInsertClampsOffset(t *testing.T) {
	s := NewFromString("abc")
	s.Insert(-5, "x")
	s.Insert(100, "y")

	if s.Text() != "xabcy" {
		t.Errorf("expected 'xabcy', got %q", s.Text())
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	s := NewFromString("HelloWorld")
	s.Insert(5, "\n")

	if s.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", s.LineCount())
	}
	if s.Line(1) != "Hello" {
		t.Errorf("expected 'Hello', got %q", s.Line(1))
	}
	if s.Line(2) != "World" {
		t.Errorf("expected 'World', got %q", s.Line(2))
	}
}

func TestDelete(t *testing.T) {
	s := NewFromString("Hello World")
	s.Delete(5, 6)

	if s.Text() != "Hello" {
		t.Errorf("expected 'Hello', got %q", s.Text())
	}
	if s.Len() != 5 {
		t.Errorf("expected length 5, got %d", s.Len())
	}
}

func TestDeleteMiddleSplitsPiece(t *testing.T) {
	s := NewFromString("Hello, World")
	s.Delete(5, 2)

	if s.Text() != "HelloWorld" {
		t.Errorf("expected 'HelloWorld', got %q", s.Text())
	}
}

func TestDeleteAcrossPieces(t *testing.T) {
	s := NewFromString("HelloWorld")
	s.Insert(5, ", big ")
	s.Delete(3, 9) // spans original head, the added piece, and original tail

	if s.Text() != "Helorld" {
		t.Errorf("expected 'Helorld', got %q", s.Text())
	}
}

func TestDeleteClampsRange(t *testing.T) {
	s := NewFromString("abcdef")

	s.Delete(4, 100) // past the end truncates
	if s.Text() != "abcd" {
		t.Errorf("expected 'abcd', got %q", s.Text())
	}

	s.Delete(-2, 3) // before the start truncates
	if s.Text() != "bcd" {
		t.Errorf("expected 'bcd', got %q", s.Text())
	}

	s.Delete(10, 5) // fully out of range is a no-op
	if s.Text() != "bcd" {
		t.Errorf("expected 'bcd', got %q", s.Text())
	}

	s.Delete(1, 0) // zero length is a no-op
	if s.Text() != "bcd" {
		t.Errorf("expected 'bcd', got %q", s.Text())
	}
}

func TestDeleteEverything(t *testing.T) {
	s := NewFromString("line1\nline2")
	s.Delete(0, s.Len())

	if !s.IsEmpty() {
		t.Error("store should be empty after deleting everything")
	}
	if s.LineCount() != 1 {
		t.Errorf("empty document should have one line, got %d", s.LineCount())
	}
}

func TestTextRange(t *testing.T) {
	s := NewFromString("Hello, World")

	if got := s.TextRange(7, 12); got != "World" {
		t.Errorf("expected 'World', got %q", got)
	}
	if got := s.TextRange(-3, 5); got != "Hello" {
		t.Errorf("expected 'Hello', got %q", got)
	}
	if got := s.TextRange(7, 100); got != "World" {
		t.Errorf("expected 'World', got %q", got)
	}
	if got := s.TextRange(8, 3); got != "" {
		t.Errorf("inverted range should be empty, got %q", got)
	}
	if got := s.TextRange(50, 60); got != "" {
		t.Errorf("out-of-range request should be empty, got %q", got)
	}
}

func TestLineQueries(t *testing.T) {
	s := NewFromString("one\ntwo\nthree")

	if s.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", s.LineCount())
	}
	if s.Line(2) != "two" {
		t.Errorf("expected 'two', got %q", s.Line(2))
	}
	if s.Line(0) != "" {
		t.Errorf("line 0 should be empty, got %q", s.Line(0))
	}
	if s.Line(4) != "" {
		t.Errorf("line past the end should be empty, got %q", s.Line(4))
	}
}

func TestTrailingNewline(t *testing.T) {
	s := NewFromString("one\n")

	if s.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", s.LineCount())
	}
	if s.Line(2) != "" {
		t.Errorf("final line should be empty, got %q", s.Line(2))
	}
}

func TestOffsetToPosition(t *testing.T) {
	s := NewFromString("Hello\nWorld")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 1, Column: 1}},
		{4, Position{Line: 1, Column: 5}},
		{5, Position{Line: 1, Column: 6}}, // caret at end of line 1
		{6, Position{Line: 2, Column: 1}},
		{11, Position{Line: 2, Column: 6}},
		{-1, Position{Line: 1, Column: 1}},
		{9999, Position{Line: 2, Column: 6}},
	}
	for _, tt := range tests {
		if got := s.OffsetToPosition(tt.offset); got != tt.want {
			t.Errorf("OffsetToPosition(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestPositionToOffsetClamps(t *testing.T) {
	s := NewFromString("Hello\nWorld")

	tests := []struct {
		pos  Position
		want int
	}{
		{Position{Line: 1, Column: 1}, 0},
		{Position{Line: 2, Column: 3}, 8},
		{Position{Line: 0, Column: 0}, 0},
		{Position{Line: 9, Column: 9}, 11},
		{Position{Line: 1, Column: 99}, 5},
	}
	for _, tt := range tests {
		if got := s.PositionToOffset(tt.pos); got != tt.want {
			t.Errorf("PositionToOffset(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"Hello\nWorld",
		"one\ntwo\nthree\n",
		"\n\n\n",
		"mixed\n\ncontent here\nx",
	}
	for _, text := range texts {
		s := NewFromString(text)
		for o := 0; o <= s.Len(); o++ {
			if got := s.PositionToOffset(s.OffsetToPosition(o)); got != o {
				t.Errorf("text %q: round trip of offset %d gave %d", text, o, got)
			}
		}
	}
}

func TestPositionRoundTripAfterEdits(t *testing.T) {
	s := NewFromString("alpha\nbeta\ngamma")
	s.Insert(5, "\ninserted")
	s.Delete(2, 4)
	s.Insert(0, "x\n")

	for o := 0; o <= s.Len(); o++ {
		if got := s.PositionToOffset(s.OffsetToPosition(o)); got != o {
			t.Errorf("round trip of offset %d gave %d", o, got)
		}
	}
}

func TestRuneAt(t *testing.T) {
	s := NewFromString("aä€")

	r, size := s.RuneAt(0)
	if r != 'a' || size != 1 {
		t.Errorf("expected ('a', 1), got (%q, %d)", r, size)
	}
	r, size = s.RuneAt(1)
	if r != 'ä' || size != 2 {
		t.Errorf("expected ('ä', 2), got (%q, %d)", r, size)
	}
	if _, size := s.RuneAt(100); size != 0 {
		t.Error("out-of-range RuneAt should return size 0")
	}
}

func TestManyEditsPreserveContent(t *testing.T) {
	s := NewFromString("The quick brown fox")
	want := "The quick brown fox"

	apply := func(insertAt int, text string, delAt, delLen int) {
		s.Insert(insertAt, text)
		want = want[:insertAt] + text + want[insertAt:]
		s.Delete(delAt, delLen)
		end := delAt + delLen
		if end > len(want) {
			end = len(want)
		}
		if delAt < len(want) {
			want = want[:delAt] + want[end:]
		}
	}

	apply(4, "very ", 0, 4)
	apply(0, "Look: ", 10, 3)
	apply(len(want), "!", 2, 2)

	if s.Text() != want {
		t.Errorf("expected %q, got %q", want, s.Text())
	}
	if s.Len() != len(want) {
		t.Errorf("expected length %d, got %d", len(want), s.Len())
	}
}
