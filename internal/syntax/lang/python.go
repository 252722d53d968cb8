package lang

import (
	"strings"

	"github.com/dshills/editcore/internal/syntax"
)

// pythonKeywords is the closed keyword vocabulary.
var pythonKeywords = map[string]struct{}{
	"and": {}, "as": {}, "assert": {}, "async": {}, "await": {},
	"break": {}, "case": {}, "class": {}, "continue": {}, "def": {},
	"del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {},
	"in": {}, "is": {}, "lambda": {}, "match": {}, "nonlocal": {},
	"not": {}, "or": {}, "pass": {}, "raise": {}, "return": {},
	"try": {}, "while": {}, "with": {}, "yield": {},
}

// pythonConstants is the closed literal vocabulary.
var pythonConstants = map[string]struct{}{
	"True": {}, "False": {}, "None": {}, "NotImplemented": {}, "Ellipsis": {},
}

// pythonBuiltins is the closed vocabulary of recognized builtin callables.
var pythonBuiltins = map[string]struct{}{
	"abs": {}, "all": {}, "any": {}, "bool": {}, "bytes": {},
	"callable": {}, "dict": {}, "enumerate": {}, "filter": {}, "float": {},
	"format": {}, "frozenset": {}, "getattr": {}, "hasattr": {}, "hash": {},
	"id": {}, "input": {}, "int": {}, "isinstance": {}, "issubclass": {},
	"iter": {}, "len": {}, "list": {}, "map": {}, "max": {}, "min": {},
	"next": {}, "object": {}, "open": {}, "print": {}, "property": {},
	"range": {}, "repr": {}, "reversed": {}, "round": {}, "set": {},
	"setattr": {}, "sorted": {}, "staticmethod": {}, "str": {}, "sum": {},
	"super": {}, "tuple": {}, "type": {}, "zip": {},
}

// pythonStringPrefixes is the set of recognized string literal prefixes.
var pythonStringPrefixes = map[string]struct{}{
	"b": {}, "br": {}, "f": {}, "fr": {}, "r": {}, "rb": {}, "rf": {}, "u": {},
}

type pythonLang struct{}

// Python returns the Python tokenizer. Triple-quoted strings carry across
// lines; formatted (f-prefixed) triple strings additionally track
// interpolation brace depth so a closing quote inside an open interpolation
// does not end the string.
func Python() syntax.LineTokenizer {
	return pythonLang{}
}

func (pythonLang) LanguageID() string         { return "python" }
func (pythonLang) Extensions() []string       { return []string{".py", ".pyi", ".pyw"} }
func (pythonLang) InitialState() syntax.State { return syntax.Normal }

func (l pythonLang) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder
	state := incoming
	i := 0

	if state.Kind == syntax.StateTripleString {
		i, state = scanTripleBody(&b, line, 0, state)
		if state.Kind == syntax.StateTripleString {
			return b.tokens, state
		}
	}

	// prevWord carries the last significant identifier so names after "def"
	// and "class" classify as declarations.
	var prevWord string

	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			// Whitespace does not reset the declaration context.
			i = scanSpace(&b, line, i)
			continue

		case c == '#':
			b.emit(syntax.TokenComment, i, len(line))
			i = len(line)

		case c == '"' || c == '\'':
			i, state = scanPyString(&b, line, i, i, false)
			if state.Kind == syntax.StateTripleString {
				return b.tokens, state
			}

		case isAlpha(c) || c == '_':
			end := scanWhile(line, i, isWord)
			word := line[i:end]
			if end < len(line) && (line[end] == '"' || line[end] == '\'') {
				if hasKey(pythonStringPrefixes, strings.ToLower(word)) {
					formatted := strings.ContainsAny(word, "fF")
					i, state = scanPyString(&b, line, i, end, formatted)
					if state.Kind == syntax.StateTripleString {
						return b.tokens, state
					}
					continue
				}
			}
			switch {
			case hasKey(pythonKeywords, word):
				b.emit(syntax.TokenKeyword, i, end)
			case hasKey(pythonConstants, word):
				b.emit(syntax.TokenConstant, i, end)
			case prevWord == "def":
				b.emit(syntax.TokenFunction, i, end)
			case prevWord == "class":
				b.emit(syntax.TokenClass, i, end)
			case hasKey(pythonBuiltins, word):
				b.emit(syntax.TokenFunction, i, end)
			default:
				b.emit(syntax.TokenIdentifier, i, end)
			}
			prevWord = word
			i = end
			continue

		case isDigit(c) || c == '.' && i+1 < len(line) && isDigit(line[i+1]):
			end := scanNumber(line, i)
			if end < len(line) && (line[end] == 'j' || line[end] == 'J') {
				end++
			}
			b.emit(syntax.TokenNumber, i, end)
			i = end

		case c == '@' && i+1 < len(line) && (isAlpha(line[i+1]) || line[i+1] == '_'):
			end := scanWhile(line, i+1, func(c byte) bool { return isWord(c) || c == '.' })
			b.emit(syntax.TokenFunction, i, end)
			i = end

		case strings.IndexByte("+-*/%=<>!&|^~", c) >= 0:
			end := scanWhile(line, i, func(c byte) bool {
				return strings.IndexByte("+-*/%=<>!&|^~", c) >= 0
			})
			b.emit(syntax.TokenOperator, i, end)
			i = end

		case strings.IndexByte("()[]{},.:;", c) >= 0:
			b.emit(syntax.TokenPunctuation, i, i+1)
			i++

		default:
			b.unknown(i)
			i++
		}
		prevWord = ""
	}

	return b.tokens, state
}

// scanPyString scans a string literal whose prefix (if any) starts at start
// and whose opening quote sits at quotePos. The whole literal, prefix and
// interpolations included, is one string token.
func scanPyString(b *builder, line string, start, quotePos int, formatted bool) (int, syntax.State) {
	q := line[quotePos]

	if strings.HasPrefix(line[quotePos:], strings.Repeat(string(q), 3)) {
		st := syntax.State{Kind: syntax.StateTripleString, Quote: q}
		if formatted {
			st.Fence = 1
		}
		end, out := scanTripleTail(line, quotePos+3, st)
		b.emit(syntax.TokenString, start, end)
		return end, out
	}

	end, _ := scanQuoted(line, quotePos, q)
	b.emit(syntax.TokenString, start, end)
	return end, syntax.Normal
}

// scanTripleBody continues a triple-quoted string from the start of a line.
func scanTripleBody(b *builder, line string, i int, st syntax.State) (int, syntax.State) {
	end, out := scanTripleTail(line, i, st)
	b.emit(syntax.TokenString, i, end)
	return end, out
}

// scanTripleTail scans the interior of a triple-quoted string until its
// closing quotes or end of line. For formatted strings the brace depth of
// open interpolations is tracked in the carry state; the closing quotes only
// count at depth zero.
func scanTripleTail(line string, i int, st syntax.State) (int, syntax.State) {
	q := st.Quote
	closing := strings.Repeat(string(q), 3)
	formatted := st.Fence == 1
	depth := st.Depth

	for i < len(line) {
		c := line[i]
		switch {
		case c == '\\':
			i += 2

		case formatted && (c == '{' || c == '}'):
			if i+1 < len(line) && line[i+1] == c {
				i += 2 // {{ and }} are literal braces
				continue
			}
			if c == '{' {
				depth++
			} else if depth > 0 {
				depth--
			}
			i++

		case c == q && depth == 0 && strings.HasPrefix(line[i:], closing):
			return i + 3, syntax.Normal

		default:
			i++
		}
	}

	st.Depth = depth
	return len(line), st
}

