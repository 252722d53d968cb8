package lang

import (
	"strings"

	"github.com/dshills/editcore/internal/syntax"
)

// cssAtRules is the closed vocabulary of recognized at-rules.
var cssAtRules = map[string]struct{}{
	"charset": {}, "container": {}, "font-face": {}, "import": {},
	"keyframes": {}, "layer": {}, "media": {}, "namespace": {},
	"page": {}, "property": {}, "supports": {},
}

// cssPseudo is the closed vocabulary of recognized pseudo-classes and
// pseudo-elements.
var cssPseudo = map[string]struct{}{
	"active": {}, "after": {}, "before": {}, "checked": {}, "disabled": {},
	"enabled": {}, "first-child": {}, "first-letter": {}, "first-line": {},
	"focus": {}, "focus-visible": {}, "focus-within": {}, "hover": {},
	"last-child": {}, "link": {}, "not": {}, "nth-child": {},
	"nth-of-type": {}, "placeholder": {}, "root": {}, "selection": {},
	"visited": {},
}

// cssFunctions is the closed vocabulary of recognized value functions.
var cssFunctions = map[string]struct{}{
	"attr": {}, "calc": {}, "clamp": {}, "counter": {}, "hsl": {},
	"hsla": {}, "linear-gradient": {}, "max": {}, "min": {},
	"radial-gradient": {}, "rgb": {}, "rgba": {}, "rotate": {},
	"scale": {}, "translate": {}, "url": {}, "var": {},
}

// cssProperties is the closed vocabulary of recognized property names.
var cssProperties = map[string]struct{}{
	"align-items": {}, "animation": {}, "background": {},
	"background-color": {}, "background-image": {}, "border": {},
	"border-color": {}, "border-radius": {}, "border-width": {},
	"bottom": {}, "box-shadow": {}, "box-sizing": {}, "clear": {},
	"color": {}, "content": {}, "cursor": {}, "display": {}, "flex": {},
	"flex-direction": {}, "flex-wrap": {}, "float": {}, "font-family": {},
	"font-size": {}, "font-style": {}, "font-weight": {}, "gap": {},
	"grid": {}, "grid-template-columns": {}, "height": {},
	"justify-content": {}, "left": {}, "letter-spacing": {},
	"line-height": {}, "margin": {}, "max-height": {}, "max-width": {},
	"min-height": {}, "min-width": {}, "opacity": {}, "outline": {},
	"overflow": {}, "padding": {}, "position": {}, "right": {},
	"text-align": {}, "text-decoration": {}, "top": {}, "transform": {},
	"transition": {}, "vertical-align": {}, "visibility": {},
	"white-space": {}, "width": {}, "z-index": {},
}

type cssLang struct{}

// CSS returns the CSS tokenizer.
func CSS() syntax.LineTokenizer {
	return cssLang{}
}

func (cssLang) LanguageID() string         { return "css" }
func (cssLang) Extensions() []string       { return []string{".css"} }
func (cssLang) InitialState() syntax.State { return syntax.Normal }

func isCSSIdent(c byte) bool {
	return isWord(c) || c == '-'
}

func (l cssLang) TokenizeLine(line string, incoming syntax.State) ([]syntax.Token, syntax.State) {
	var b builder
	state := incoming
	i := 0

	if state.Kind == syntax.StateBlockComment {
		if idx := strings.Index(line, "*/"); idx >= 0 {
			b.emit(syntax.TokenComment, 0, idx+2)
			i = idx + 2
			state = syntax.Normal
		} else {
			b.emit(syntax.TokenComment, 0, len(line))
			return b.tokens, state
		}
	}

	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i = scanSpace(&b, line, i)

		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			if idx := strings.Index(line[i+2:], "*/"); idx >= 0 {
				b.emit(syntax.TokenComment, i, i+2+idx+2)
				i += 2 + idx + 2
			} else {
				// Unterminated comment: consume to end of line and carry.
				b.emit(syntax.TokenComment, i, len(line))
				i = len(line)
				state = syntax.State{Kind: syntax.StateBlockComment}
			}

		case c == '"' || c == '\'':
			end, _ := scanQuoted(line, i, c)
			b.emit(syntax.TokenString, i, end)
			i = end

		case c == '#':
			end := scanWhile(line, i+1, isCSSIdent)
			if isHexColor(line[i+1 : end]) {
				b.emit(syntax.TokenConstant, i, end)
			} else if end > i+1 {
				b.emit(syntax.TokenClass, i, end)
			} else {
				b.unknown(i)
				end = i + 1
			}
			i = end

		case c == '.' && i+1 < len(line) && (isAlpha(line[i+1]) || line[i+1] == '-'):
			end := scanWhile(line, i+1, isCSSIdent)
			b.emit(syntax.TokenClass, i, end)
			i = end

		case c == '@':
			end := scanWhile(line, i+1, isCSSIdent)
			name := line[i+1 : end]
			if hasKey(cssAtRules, name) {
				b.emit(syntax.TokenKeyword, i, end)
			} else if end > i+1 {
				b.emit(syntax.TokenIdentifier, i, end)
			} else {
				b.unknown(i)
				end = i + 1
			}
			i = end

		case c == ':' && i+1 < len(line) && isAlpha(line[i+1]):
			end := scanWhile(line, i+1, isCSSIdent)
			if hasKey(cssPseudo, line[i+1:end]) {
				b.emit(syntax.TokenPunctuation, i, i+1)
				b.emit(syntax.TokenKeyword, i+1, end)
				i = end
			} else {
				b.emit(syntax.TokenPunctuation, i, i+1)
				i++
			}

		case c == '!' && strings.HasPrefix(line[i+1:], "important"):
			b.emit(syntax.TokenKeyword, i, i+1+len("important"))
			i += 1 + len("important")

		case isDigit(c) || c == '.' && i+1 < len(line) && isDigit(line[i+1]):
			end := scanNumber(line, i)
			// Units and the percent sign are part of the number.
			end = scanWhile(line, end, func(c byte) bool { return isAlpha(c) || c == '%' })
			b.emit(syntax.TokenNumber, i, end)
			i = end

		case isAlpha(c) || c == '-' && i+1 < len(line) && isAlpha(line[i+1]):
			end := scanWhile(line, i, isCSSIdent)
			name := line[i:end]
			next := scanWhile(line, end, isSpace)
			switch {
			case next < len(line) && line[next] == '(' && hasKey(cssFunctions, strings.ToLower(name)):
				b.emit(syntax.TokenFunction, i, end)
			case next < len(line) && line[next] == ':' && hasKey(cssProperties, strings.ToLower(name)):
				b.emit(syntax.TokenProperty, i, end)
			default:
				b.emit(syntax.TokenIdentifier, i, end)
			}
			i = end

		case strings.IndexByte("{}();,", c) >= 0:
			b.emit(syntax.TokenPunctuation, i, i+1)
			i++

		case strings.IndexByte("><+-~*=^$|/:", c) >= 0:
			b.emit(syntax.TokenOperator, i, i+1)
			i++

		default:
			b.unknown(i)
			i++
		}
	}

	return b.tokens, state
}


// isHexColor reports whether the text after '#' is a 3, 4, 6 or 8 digit hex
// color.
func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}
