package syntax

import "fmt"

// StateKind is the variant tag of a carry state.
type StateKind uint8

const (
	// StateNormal is the universal initial and rest state.
	StateNormal StateKind = iota
	// StateBlockComment carries an unterminated block comment
	// (CSS "/* ...", HTML "<!-- ...").
	StateBlockComment
	// StateTripleString carries an unterminated triple-quoted string.
	StateTripleString
	// StateCodeFence carries an open fenced code block.
	StateCodeFence
	// StateTag carries a tag whose closing '>' has not been seen yet.
	StateTag
)

// String returns the string representation of the state kind.
func (k StateKind) String() string {
	switch k {
	case StateNormal:
		return "normal"
	case StateBlockComment:
		return "block-comment"
	case StateTripleString:
		return "triple-string"
	case StateCodeFence:
		return "code-fence"
	case StateTag:
		return "tag"
	default:
		return "invalid"
	}
}

// State is the lexer context carried from the end of one line into the start
// of the next. Tokenizing a line is a pure function of (lineText, incoming
// State); no tokenizer may consult any other line.
//
// State is a plain comparable value: incremental re-tokenization stops
// exactly when a recomputed end-of-line state compares equal (==) to the
// previously cached one.
type State struct {
	Kind StateKind
	// Quote is the delimiter detail of the open construct: the quote
	// character of a triple-quoted string, or the fence character of an open
	// code fence.
	Quote byte
	// Depth is the interpolation nesting depth inside an open formatted
	// string, so a closing delimiter inside an interpolation expression is
	// not mistaken for the end of the string.
	Depth uint8
	// Fence is the delimiter run length of an open code fence; a closing
	// fence must be at least this long. An open triple-quoted string reuses
	// the field as a flag: 1 marks the string as formatted, so Depth tracks
	// its interpolation braces.
	Fence uint8
}

// Normal is the universal rest state.
var Normal = State{}

// IsNormal returns true if the state is the rest state.
func (s State) IsNormal() bool {
	return s == Normal
}

// String returns a human-readable representation of the state.
func (s State) String() string {
	if s.IsNormal() {
		return "normal"
	}
	return fmt.Sprintf("%s(quote=%q depth=%d fence=%d)", s.Kind, s.Quote, s.Depth, s.Fence)
}
