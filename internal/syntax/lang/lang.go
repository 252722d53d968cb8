// Package lang provides the built-in line tokenizers. Each language is a
// constant descriptor value: closed membership sets for its vocabulary plus a
// flat scan function over one line. The tokenizers share the Token and State
// shapes from the syntax package but nothing else; scanning rules are fully
// per-language.
package lang

import "github.com/dshills/editcore/internal/syntax"

// Register adds every built-in tokenizer to the registry.
func Register(r *syntax.Registry) {
	r.Register(CSS())
	r.Register(JSON())
	r.Register(HTML())
	r.Register(Markdown())
	r.Register(Python())
	r.Register(PlainText())
}

// builder accumulates the token list for one line. Lexers emit in order for
// every byte, which is what keeps the coverage invariant: spans contiguous,
// non-overlapping, summing to the line length.
type builder struct {
	tokens []syntax.Token
}

func (b *builder) emit(t syntax.TokenType, start, end int) {
	if end <= start {
		return
	}
	b.tokens = append(b.tokens, syntax.Token{
		Type:   t,
		Start:  uint32(start),
		Length: uint32(end - start),
	})
}

// unknown emits a one-length unknown token for an unrecognized character.
func (b *builder) unknown(i int) {
	b.emit(syntax.TokenUnknown, i, i+1)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isWord(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// hasKey reports membership in a vocabulary set. Lookup is exact; callers
// with case-insensitive vocabularies fold the key first.
func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

// scanWhile advances from i while pred holds and returns the end offset.
func scanWhile(line string, i int, pred func(byte) bool) int {
	for i < len(line) && pred(line[i]) {
		i++
	}
	return i
}

// scanSpace emits a whitespace token for the run starting at i.
func scanSpace(b *builder, line string, i int) int {
	end := scanWhile(line, i, isSpace)
	b.emit(syntax.TokenWhitespace, i, end)
	return end
}

// scanQuoted scans a quoted run starting at the opening quote, honoring
// backslash escapes. Returns the offset just past the closing quote and
// whether the quote was terminated on this line; an unterminated quote
// consumes to end of line.
func scanQuoted(line string, i int, quote byte) (int, bool) {
	i++ // opening quote
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1, true
		default:
			i++
		}
	}
	return len(line), false
}

// scanNumber scans a numeric literal starting at a digit (or a dot followed
// by a digit): hex/octal/binary prefixes, decimal fractions, exponents, and
// digit-group underscores.
func scanNumber(line string, i int) int {
	if line[i] == '0' && i+1 < len(line) {
		switch line[i+1] {
		case 'x', 'X':
			return scanWhile(line, i+2, func(c byte) bool { return isHexDigit(c) || c == '_' })
		case 'o', 'O':
			return scanWhile(line, i+2, func(c byte) bool { return c >= '0' && c <= '7' || c == '_' })
		case 'b', 'B':
			return scanWhile(line, i+2, func(c byte) bool { return c == '0' || c == '1' || c == '_' })
		}
	}

	digits := func(c byte) bool { return isDigit(c) || c == '_' }
	i = scanWhile(line, i, digits)
	if i < len(line) && line[i] == '.' && i+1 < len(line) && isDigit(line[i+1]) {
		i = scanWhile(line, i+1, digits)
	}
	if i < len(line) && (line[i] == 'e' || line[i] == 'E') {
		j := i + 1
		if j < len(line) && (line[j] == '+' || line[j] == '-') {
			j++
		}
		if j < len(line) && isDigit(line[j]) {
			i = scanWhile(line, j, digits)
		}
	}
	return i
}

// plainText is the fallback tokenizer: whitespace runs and word-ish runs,
// nothing more.
type plainText struct{}

// PlainText returns the fallback tokenizer for unclassified documents.
func PlainText() syntax.LineTokenizer {
	return plainText{}
}

func (plainText) LanguageID() string         { return "text" }
func (plainText) Extensions() []string       { return []string{".txt"} }
func (plainText) InitialState() syntax.State { return syntax.Normal }

func (plainText) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder
	i := 0
	for i < len(line) {
		if isSpace(line[i]) {
			i = scanSpace(&b, line, i)
			continue
		}
		end := scanWhile(line, i, func(c byte) bool { return !isSpace(c) })
		b.emit(syntax.TokenIdentifier, i, end)
		i = end
	}
	return b.tokens, syntax.Normal
}
