package syntax

// TokenType is the semantic class of a token. The enumeration is closed and
// shared by every language tokenizer so color mapping stays
// language-agnostic.
type TokenType uint8

const (
	TokenUnknown TokenType = iota
	TokenKeyword
	TokenString
	TokenComment
	TokenNumber
	TokenIdentifier
	TokenOperator
	TokenPunctuation
	TokenWhitespace
	TokenProperty
	TokenTag
	TokenAttribute
	TokenClass
	TokenFunction
	TokenConstant

	tokenTypeCount
)

// tokenTypeNames maps token types to their string names.
var tokenTypeNames = [tokenTypeCount]string{
	TokenUnknown:     "unknown",
	TokenKeyword:     "keyword",
	TokenString:      "string",
	TokenComment:     "comment",
	TokenNumber:      "number",
	TokenIdentifier:  "identifier",
	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",
	TokenWhitespace:  "whitespace",
	TokenProperty:    "property",
	TokenTag:         "tag",
	TokenAttribute:   "attribute",
	TokenClass:       "class",
	TokenFunction:    "function",
	TokenConstant:    "constant",
}

// String returns the string representation of the token type.
func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// TokenTypes returns every token type in the closed enumeration.
func TokenTypes() []TokenType {
	types := make([]TokenType, 0, tokenTypeCount)
	for t := TokenType(0); t < tokenTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Token is a classified byte range within a single line. Tokens never span
// lines; the token spans on one line are contiguous, non-overlapping, and
// together cover the whole line.
type Token struct {
	Type   TokenType
	Start  uint32 // Byte offset within the line
	Length uint32 // Byte length
}

// End returns the exclusive end offset of the token within its line.
func (t Token) End() uint32 {
	return t.Start + t.Length
}

// Contains returns true if the column offset is within the token.
func (t Token) Contains(col uint32) bool {
	return col >= t.Start && col < t.End()
}

// LineTokens is the tokenization result for one 1-indexed line.
type LineTokens struct {
	Line   int
	Tokens []Token
}

// TokensEqual reports whether two token lists are identical.
func TokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
