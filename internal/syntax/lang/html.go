package lang

import (
	"strings"

	"github.com/dshills/editcore/internal/syntax"
)

type htmlLang struct{}

// HTML returns the HTML tokenizer. Comments and unclosed tags carry across
// lines; everything between tags is scanned as text with entity decoding.
func HTML() syntax.LineTokenizer {
	return htmlLang{}
}

func (htmlLang) LanguageID() string         { return "html" }
func (htmlLang) Extensions() []string       { return []string{".html", ".htm"} }
func (htmlLang) InitialState() syntax.State { return syntax.Normal }

func isTagNameByte(c byte) bool {
	return isWord(c) || c == '-'
}

func isAttrNameByte(c byte) bool {
	return isWord(c) || c == '-' || c == ':'
}

func (l htmlLang) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder
	state := incoming
	i := 0

	switch state.Kind {
	case syntax.StateBlockComment:
		if idx := strings.Index(line, "-->"); idx >= 0 {
			b.emit(syntax.TokenComment, 0, idx+3)
			i = idx + 3
			state = syntax.Normal
		} else {
			b.emit(syntax.TokenComment, 0, len(line))
			return b.tokens, state
		}
	case syntax.StateTag:
		i, state = scanTagBody(&b, line, 0)
		if state.Kind == syntax.StateTag {
			return b.tokens, state
		}
	}

	for i < len(line) {
		c := line[i]
		switch {
		case c == '<' && strings.HasPrefix(line[i:], "<!--"):
			if idx := strings.Index(line[i+4:], "-->"); idx >= 0 {
				b.emit(syntax.TokenComment, i, i+4+idx+3)
				i += 4 + idx + 3
			} else {
				b.emit(syntax.TokenComment, i, len(line))
				i = len(line)
				state = syntax.State{Kind: syntax.StateBlockComment}
			}

		case c == '<' && i+1 < len(line) && line[i+1] == '!':
			// Doctype and other declarations run to '>' or end of line.
			if idx := strings.IndexByte(line[i:], '>'); idx >= 0 {
				b.emit(syntax.TokenKeyword, i, i+idx+1)
				i += idx + 1
			} else {
				b.emit(syntax.TokenKeyword, i, len(line))
				i = len(line)
			}

		case c == '<' && i+1 < len(line) && (isAlpha(line[i+1]) || line[i+1] == '/'):
			open := i + 1
			if line[open] == '/' {
				open++
			}
			if open >= len(line) || !isAlpha(line[open]) {
				b.unknown(i)
				i++
				continue
			}
			b.emit(syntax.TokenPunctuation, i, open)
			nameEnd := scanWhile(line, open, isTagNameByte)
			b.emit(syntax.TokenTag, open, nameEnd)
			i, state = scanTagBody(&b, line, nameEnd)
			if state.Kind == syntax.StateTag {
				return b.tokens, state
			}

		case c == '&':
			if end, ok := scanEntity(line, i); ok {
				b.emit(syntax.TokenConstant, i, end)
				i = end
			} else {
				b.unknown(i)
				i++
			}

		case isSpace(c):
			i = scanSpace(&b, line, i)

		default:
			end := scanWhile(line, i, func(c byte) bool {
				return c != '<' && c != '&' && !isSpace(c)
			})
			if end == i {
				// A '<' that opens nothing is plain punctuation.
				b.emit(syntax.TokenPunctuation, i, i+1)
				i++
				continue
			}
			b.emit(syntax.TokenIdentifier, i, end)
			i = end
		}
	}

	return b.tokens, state
}

// scanTagBody scans attributes from inside a tag until its closing '>'.
// Reaching end of line first carries the tag state into the next line.
func scanTagBody(b *builder, line string, i int) (int, syntax.State) {
	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i = scanSpace(b, line, i)

		case c == '>':
			b.emit(syntax.TokenPunctuation, i, i+1)
			return i + 1, syntax.Normal

		case c == '/' && i+1 < len(line) && line[i+1] == '>':
			b.emit(syntax.TokenPunctuation, i, i+2)
			return i + 2, syntax.Normal

		case c == '=':
			b.emit(syntax.TokenOperator, i, i+1)
			i++

		case c == '"' || c == '\'':
			end, _ := scanQuoted(line, i, c)
			b.emit(syntax.TokenString, i, end)
			i = end

		case isAlpha(c):
			end := scanWhile(line, i, isAttrNameByte)
			b.emit(syntax.TokenAttribute, i, end)
			i = end

		default:
			b.unknown(i)
			i++
		}
	}
	return i, syntax.State{Kind: syntax.StateTag}
}

// scanEntity scans a character reference like &amp; or &#x27;. Returns the
// end offset past the ';' and whether a well-formed entity was found.
func scanEntity(line string, i int) (int, bool) {
	j := i + 1
	if j < len(line) && line[j] == '#' {
		j++
		if j < len(line) && (line[j] == 'x' || line[j] == 'X') {
			j = scanWhile(line, j+1, isHexDigit)
		} else {
			j = scanWhile(line, j, isDigit)
		}
	} else {
		j = scanWhile(line, j, isWord)
	}
	if j > i+1 && j < len(line) && line[j] == ';' {
		return j + 1, true
	}
	return i, false
}
