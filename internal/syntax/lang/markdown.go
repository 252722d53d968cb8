package lang

import (
	"strings"

	"github.com/dshills/editcore/internal/syntax"
)

type markdownLang struct{}

// Markdown returns the Markdown tokenizer. Fenced code blocks carry across
// lines; the carry state records the fence character and run length so only
// a long-enough matching fence closes the block.
func Markdown() syntax.LineTokenizer {
	return markdownLang{}
}

func (markdownLang) LanguageID() string         { return "markdown" }
func (markdownLang) Extensions() []string       { return []string{".md", ".markdown"} }
func (markdownLang) InitialState() syntax.State { return syntax.Normal }

func (l markdownLang) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder

	if incoming.Kind == syntax.StateCodeFence {
		if isClosingFence(line, incoming.Quote, int(incoming.Fence)) {
			b.emit(syntax.TokenPunctuation, 0, len(line))
			return b.tokens, syntax.Normal
		}
		b.emit(syntax.TokenString, 0, len(line))
		return b.tokens, incoming
	}

	indent := scanWhile(line, 0, isSpace)
	rest := line[indent:]

	// Opening fence: three or more backticks or tildes.
	if ch, run := fenceRun(rest); run >= 3 {
		if indent > 0 {
			b.emit(syntax.TokenWhitespace, 0, indent)
		}
		b.emit(syntax.TokenPunctuation, indent, indent+run)
		// The info string names the embedded language.
		b.emit(syntax.TokenAttribute, indent+run, len(line))
		return b.tokens, syntax.State{Kind: syntax.StateCodeFence, Quote: ch, Fence: uint8(run)}
	}

	// Headings, quotes and the whole-line constructs.
	if strings.HasPrefix(rest, "#") {
		level := scanWhile(rest, 0, func(c byte) bool { return c == '#' })
		if level <= 6 && (level == len(rest) || rest[level] == ' ') {
			b.emit(syntax.TokenKeyword, 0, len(line))
			return b.tokens, syntax.Normal
		}
	}
	if strings.HasPrefix(rest, ">") {
		b.emit(syntax.TokenComment, 0, len(line))
		return b.tokens, syntax.Normal
	}

	if indent > 0 {
		b.emit(syntax.TokenWhitespace, 0, indent)
	}
	i := indent

	// List markers.
	if m := listMarkerLen(rest); m > 0 {
		b.emit(syntax.TokenPunctuation, i, i+m)
		i += m
	}

	scanInline(&b, line, i)
	return b.tokens, syntax.Normal
}

// scanInline scans emphasis, inline code and links within one line.
func scanInline(b *builder, line string, i int) {
	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i = scanSpace(b, line, i)

		case c == '`':
			if idx := strings.IndexByte(line[i+1:], '`'); idx >= 0 {
				b.emit(syntax.TokenString, i, i+1+idx+1)
				i += 1 + idx + 1
			} else {
				b.emit(syntax.TokenPunctuation, i, i+1)
				i++
			}

		case c == '*' || c == '~' || c == '_':
			delim := line[i : i+1]
			if i+1 < len(line) && line[i+1] == c {
				delim = line[i : i+2]
			}
			if idx := strings.Index(line[i+len(delim):], delim); idx >= 0 {
				end := i + len(delim) + idx + len(delim)
				b.emit(syntax.TokenConstant, i, end)
				i = end
			} else {
				b.emit(syntax.TokenPunctuation, i, i+1)
				i++
			}

		case c == '[':
			if label, url, end, ok := linkSpans(line, i); ok {
				b.emit(syntax.TokenPunctuation, i, i+1)
				b.emit(syntax.TokenIdentifier, i+1, label)
				b.emit(syntax.TokenPunctuation, label, label+2)
				b.emit(syntax.TokenAttribute, label+2, url)
				b.emit(syntax.TokenPunctuation, url, end)
				i = end
			} else {
				b.emit(syntax.TokenPunctuation, i, i+1)
				i++
			}

		case isAlpha(c) || isDigit(c):
			end := scanWhile(line, i, func(c byte) bool { return isAlpha(c) || isDigit(c) })
			b.emit(syntax.TokenIdentifier, i, end)
			i = end

		default:
			b.emit(syntax.TokenPunctuation, i, i+1)
			i++
		}
	}
}

// fenceRun returns the fence character and its run length at the start of
// the text, or a zero run if the text does not start with a fence character.
func fenceRun(s string) (byte, int) {
	if len(s) == 0 || s[0] != '`' && s[0] != '~' {
		return 0, 0
	}
	ch := s[0]
	return ch, scanWhile(s, 0, func(c byte) bool { return c == ch })
}

// isClosingFence reports whether the line closes an open fence: at most three
// leading spaces, a run of the fence character at least as long as the
// opening run, and nothing else but whitespace.
func isClosingFence(line string, ch byte, min int) bool {
	indent := scanWhile(line, 0, func(c byte) bool { return c == ' ' })
	if indent > 3 {
		return false
	}
	run := scanWhile(line, indent, func(c byte) bool { return c == ch })
	if run-indent < min {
		return false
	}
	return scanWhile(line, run, isSpace) == len(line)
}

// listMarkerLen returns the length of a bullet or ordered list marker at the
// start of the text, including its trailing space, or 0 if there is none.
func listMarkerLen(s string) int {
	if len(s) >= 2 && (s[0] == '-' || s[0] == '*' || s[0] == '+') && s[1] == ' ' {
		return 2
	}
	d := scanWhile(s, 0, isDigit)
	if d > 0 && d+1 < len(s) && s[d] == '.' && s[d+1] == ' ' {
		return d + 2
	}
	return 0
}

// linkSpans locates the parts of an inline link "[label](url)" starting at
// the '[' and returns the offsets of the label end, the url end, and the
// whole link end.
func linkSpans(line string, i int) (labelEnd, urlEnd, end int, ok bool) {
	close1 := strings.IndexByte(line[i:], ']')
	if close1 < 0 {
		return 0, 0, 0, false
	}
	labelEnd = i + close1
	if labelEnd+1 >= len(line) || line[labelEnd+1] != '(' {
		return 0, 0, 0, false
	}
	close2 := strings.IndexByte(line[labelEnd+2:], ')')
	if close2 < 0 {
		return 0, 0, 0, false
	}
	urlEnd = labelEnd + 2 + close2
	return labelEnd, urlEnd, urlEnd + 1, true
}
