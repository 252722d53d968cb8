package lang

import (
	"testing"

	"github.com/dshills/editcore/internal/syntax"
)

func TestJSONKeysAreProperties(t *testing.T) {
	tok := JSON()
	line := `{"name": "editcore", "tags": ["fast", "small"]}`
	tokens, _ := tokenizeOne(t, tok, line)

	if got := countType(tokens, syntax.TokenProperty); got != 2 {
		t.Errorf("expected 2 property tokens, got %d in %v", got, tokens)
	}
	if got := countType(tokens, syntax.TokenString); got != 3 {
		t.Errorf("expected 3 string tokens, got %d in %v", got, tokens)
	}
}

func TestJSONLiteralsAndNumbers(t *testing.T) {
	tok := JSON()
	line := `[true, false, null, -2.5, 1e9]`
	tokens, _ := tokenizeOne(t, tok, line)

	if got := countType(tokens, syntax.TokenConstant); got != 3 {
		t.Errorf("expected 3 constant tokens, got %d in %v", got, tokens)
	}
	if got := countType(tokens, syntax.TokenNumber); got != 2 {
		t.Errorf("expected 2 number tokens, got %d in %v", got, tokens)
	}
	for _, tk := range tokens {
		if tk.Type == syntax.TokenNumber && line[tk.Start] == '-' && tk.Length < 2 {
			t.Errorf("minus sign split from its number: %v", tk)
		}
	}
}

func TestJSONStateIsAlwaysNormal(t *testing.T) {
	tok := JSON()
	for _, line := range []string{`{"a": 1}`, `"unterminated`, ``, `]]]`} {
		_, state := tok.TokenizeLine(line, tok.InitialState())
		if !state.IsNormal() {
			t.Errorf("line %q: state %v, want the rest state", line, state)
		}
	}
}

func TestJSONUnterminatedString(t *testing.T) {
	tok := JSON()
	line := `{"key": "oops`
	tokens, _ := tokenizeOne(t, tok, line)

	last := tokens[len(tokens)-1]
	if last.Type != syntax.TokenString || last.End() != uint32(len(line)) {
		t.Errorf("unterminated string should run to end of line, got %v", last)
	}
}
