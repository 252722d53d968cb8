package lang

import (
	"reflect"
	"testing"

	"github.com/dshills/editcore/internal/syntax"
)

func TestCSSCommentCarriesAcrossLines(t *testing.T) {
	tok := CSS()

	tokens, state := tokenizeOne(t, tok, "/* comment")
	if state.Kind != syntax.StateBlockComment {
		t.Fatalf("open comment should carry, got state %v", state)
	}
	if len(tokens) != 1 || tokens[0].Type != syntax.TokenComment {
		t.Fatalf("expected one comment token, got %v", tokens)
	}

	tokens, state = tok.TokenizeLine(" end */", state)
	if !state.IsNormal() {
		t.Errorf("comment should close, got state %v", state)
	}
	if len(tokens) != 1 || tokens[0].Type != syntax.TokenComment || tokens[0].Length != 7 {
		t.Errorf("closing line should be one comment token, got %v", tokens)
	}
}

func TestCSSRuleTokens(t *testing.T) {
	tok := CSS()
	tokens, _ := tokenizeOne(t, tok, ".btn:hover { color: #fff; }")

	want := []syntax.TokenType{
		syntax.TokenClass,       // .btn
		syntax.TokenPunctuation, // :
		syntax.TokenKeyword,     // hover
		syntax.TokenWhitespace,
		syntax.TokenPunctuation, // {
		syntax.TokenWhitespace,
		syntax.TokenProperty, // color
		syntax.TokenOperator, // :
		syntax.TokenWhitespace,
		syntax.TokenConstant,    // #fff
		syntax.TokenPunctuation, // ;
		syntax.TokenWhitespace,
		syntax.TokenPunctuation, // }
	}
	if got := typesOf(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("token types = %v, want %v", got, want)
	}
}

func TestCSSNumbersKeepUnits(t *testing.T) {
	tok := CSS()
	tokens, _ := tokenizeOne(t, tok, "margin: 2.5rem 100% 0;")

	var numbers []string
	for _, tk := range tokens {
		if tk.Type == syntax.TokenNumber {
			numbers = append(numbers, "margin: 2.5rem 100% 0;"[tk.Start:tk.End()])
		}
	}
	want := []string{"2.5rem", "100%", "0"}
	if !reflect.DeepEqual(numbers, want) {
		t.Errorf("number lexemes = %v, want %v", numbers, want)
	}
}

func TestCSSAtRulesAndFunctions(t *testing.T) {
	tok := CSS()

	line := "@media screen { width: calc(100% - 2rem) !important; }"
	tokens, _ := tokenizeOne(t, tok, line)

	var keywords, functions int
	for _, tk := range tokens {
		switch tk.Type {
		case syntax.TokenKeyword:
			keywords++
		case syntax.TokenFunction:
			functions++
		}
	}
	// @media and !important classify as keywords, calc as a function.
	if keywords != 2 {
		t.Errorf("expected 2 keyword tokens, got %d in %v", keywords, tokens)
	}
	if functions != 1 {
		t.Errorf("expected 1 function token, got %d in %v", functions, tokens)
	}
}

func TestCSSHexColorVersusID(t *testing.T) {
	tok := CSS()

	tokens, _ := tokenizeOne(t, tok, "#1a2b3c")
	if len(tokens) != 1 || tokens[0].Type != syntax.TokenConstant {
		t.Errorf("six hex digits should be a color, got %v", tokens)
	}

	tokens, _ = tokenizeOne(t, tok, "#main")
	if len(tokens) != 1 || tokens[0].Type != syntax.TokenClass {
		t.Errorf("#main should be an id selector, got %v", tokens)
	}
}

func TestCSSUnknownPropertyIsIdentifier(t *testing.T) {
	tok := CSS()
	tokens, _ := tokenizeOne(t, tok, "frobnicate: 1;")

	if tokens[0].Type != syntax.TokenIdentifier {
		t.Errorf("unrecognized property should be an identifier, got %v", tokens[0])
	}
}
