package lang

import (
	"strings"

	"github.com/dshills/editcore/internal/syntax"
)

// jsonConstants is the complete literal vocabulary of JSON.
var jsonConstants = map[string]struct{}{
	"true": {}, "false": {}, "null": {},
}

type jsonLang struct{}

// JSON returns the JSON tokenizer. JSON has no multi-line constructs, so its
// carry state is always the rest state.
func JSON() syntax.LineTokenizer {
	return jsonLang{}
}

func (jsonLang) LanguageID() string         { return "json" }
func (jsonLang) Extensions() []string       { return []string{".json"} }
func (jsonLang) InitialState() syntax.State { return syntax.Normal }

func (jsonLang) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder
	i := 0

	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i = scanSpace(&b, line, i)

		case c == '"':
			end, _ := scanQuoted(line, i, '"')
			// A string followed by ':' is an object key.
			next := scanWhile(line, end, isSpace)
			if next < len(line) && line[next] == ':' {
				b.emit(syntax.TokenProperty, i, end)
			} else {
				b.emit(syntax.TokenString, i, end)
			}
			i = end

		case isDigit(c) || c == '-' && i+1 < len(line) && isDigit(line[i+1]):
			start := i
			if c == '-' {
				i++
			}
			i = scanNumber(line, i)
			b.emit(syntax.TokenNumber, start, i)

		case isAlpha(c):
			end := scanWhile(line, i, isWord)
			if _, ok := jsonConstants[line[i:end]]; ok {
				b.emit(syntax.TokenConstant, i, end)
			} else {
				b.emit(syntax.TokenIdentifier, i, end)
			}
			i = end

		case strings.IndexByte("{}[],:", c) >= 0:
			b.emit(syntax.TokenPunctuation, i, i+1)
			i++

		default:
			b.unknown(i)
			i++
		}
	}

	return b.tokens, syntax.Normal
}
