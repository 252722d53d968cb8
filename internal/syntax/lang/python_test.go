package lang

import (
	"testing"

	"github.com/dshills/editcore/internal/syntax"
)

func TestPythonFStringIsOneToken(t *testing.T) {
	tok := Python()
	line := `msg = f"Hello {name}"`
	tokens, state := tokenizeOne(t, tok, line)

	if !state.IsNormal() {
		t.Fatalf("closed f-string should not carry state, got %v", state)
	}
	if got := countType(tokens, syntax.TokenString); got != 1 {
		t.Fatalf("f-string should be exactly one string token, got %d in %v", got, tokens)
	}
	for _, tk := range tokens {
		if tk.Type == syntax.TokenString {
			if lex := line[tk.Start:tk.End()]; lex != `f"Hello {name}"` {
				t.Errorf("string lexeme = %q, prefix and interpolation should be included", lex)
			}
		}
	}
}

func TestPythonDocstringCarriesAcrossLines(t *testing.T) {
	tok := Python()

	tokens, state := tokenizeOne(t, tok, `def parse(src):`)
	if !state.IsNormal() {
		t.Fatalf("plain code should not carry state, got %v", state)
	}
	if tokens[0].Type != syntax.TokenKeyword || tokens[2].Type != syntax.TokenFunction {
		t.Errorf("expected def keyword and function name, got %v", tokens)
	}

	_, state = tokenizeOne(t, tok, `    """Parse the source.`)
	if state.Kind != syntax.StateTripleString || state.Quote != '"' {
		t.Fatalf("open docstring should carry, got %v", state)
	}

	tokens, state = tok.TokenizeLine(`    Returns a tree.`, state)
	if state.Kind != syntax.StateTripleString {
		t.Fatalf("docstring body should keep the carry, got %v", state)
	}
	if len(tokens) != 1 || tokens[0].Type != syntax.TokenString {
		t.Errorf("docstring body should be one string token, got %v", tokens)
	}

	tokens, state = tok.TokenizeLine(`    """ + rest`, state)
	if !state.IsNormal() {
		t.Errorf("closing quotes should end the string, got %v", state)
	}
	if tokens[0].Type != syntax.TokenString {
		t.Errorf("closing line should start with the string tail, got %v", tokens)
	}
	last := tokens[len(tokens)-1]
	if last.Type != syntax.TokenIdentifier {
		t.Errorf("code after the closing quotes should resume scanning, got %v", tokens)
	}
}

func TestPythonFormattedTripleTracksBraceDepth(t *testing.T) {
	tok := Python()

	_, state := tokenizeOne(t, tok, `report = f"""total {compute(`)
	if state.Kind != syntax.StateTripleString || state.Depth != 1 {
		t.Fatalf("open interpolation should carry depth 1, got %v", state)
	}

	// The quotes inside the open interpolation must not close the string.
	_, state = tok.TokenizeLine(`rows["key"])} done`, state)
	if state.Kind != syntax.StateTripleString || state.Depth != 0 {
		t.Fatalf("interpolation should close but the string stay open, got %v", state)
	}

	_, state = tok.TokenizeLine(`"""`, state)
	if !state.IsNormal() {
		t.Errorf("string should close at depth zero, got %v", state)
	}
}

func TestPythonLiteralBracesStayLiteral(t *testing.T) {
	tok := Python()

	_, state := tokenizeOne(t, tok, `f"""a {{ b`)
	if state.Kind != syntax.StateTripleString || state.Depth != 0 {
		t.Errorf("doubled braces are literal, depth should stay 0, got %v", state)
	}
}

func TestPythonDeclarationsAndBuiltins(t *testing.T) {
	tok := Python()
	line := `class Parser:  pass`
	tokens, _ := tokenizeOne(t, tok, line)
	if tokens[0].Type != syntax.TokenKeyword || tokens[2].Type != syntax.TokenClass {
		t.Errorf("class name should classify as a class, got %v", tokens)
	}

	line = `print(len(items))`
	tokens, _ = tokenizeOne(t, tok, line)
	if got := countType(tokens, syntax.TokenFunction); got != 2 {
		t.Errorf("print and len should be functions, got %d in %v", got, tokens)
	}
}

func TestPythonCommentsAndNumbers(t *testing.T) {
	tok := Python()
	line := `x = 0b1010_1010 + 3.14e-2 - 7j  # total`
	tokens, _ := tokenizeOne(t, tok, line)

	var numbers []string
	for _, tk := range tokens {
		if tk.Type == syntax.TokenNumber {
			numbers = append(numbers, line[tk.Start:tk.End()])
		}
	}
	if len(numbers) != 3 || numbers[0] != "0b1010_1010" || numbers[1] != "3.14e-2" || numbers[2] != "7j" {
		t.Errorf("number lexemes = %v", numbers)
	}

	last := tokens[len(tokens)-1]
	if last.Type != syntax.TokenComment || last.End() != uint32(len(line)) {
		t.Errorf("comment should run to end of line, got %v", last)
	}
}

func TestPythonDecorator(t *testing.T) {
	tok := Python()
	tokens, _ := tokenizeOne(t, tok, `@functools.cache`)

	if len(tokens) != 1 || tokens[0].Type != syntax.TokenFunction {
		t.Errorf("decorator should be one function token, got %v", tokens)
	}
}

func TestPythonCaseSensitiveKeywords(t *testing.T) {
	tok := Python()
	tokens, _ := tokenizeOne(t, tok, `Return = 1`)

	if tokens[0].Type != syntax.TokenIdentifier {
		t.Errorf("capitalized Return is not a keyword, got %v", tokens[0])
	}
}
