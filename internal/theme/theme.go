// Package theme maps token types to terminal styles for the CLI renderer.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/editcore/internal/syntax"
)

// Theme defines the styles for syntax highlighting.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Default is the style for text without a more specific token style.
	Default lipgloss.Style

	// TokenStyles maps token types to their styles.
	TokenStyles map[syntax.TokenType]lipgloss.Style
}

// StyleFor returns the style for a token type, falling back to the default.
func (t *Theme) StyleFor(tt syntax.TokenType) lipgloss.Style {
	if style, ok := t.TokenStyles[tt]; ok {
		return style
	}
	return t.Default
}

// RenderLine styles one line of text using its token spans. Spans are
// rendered in order; any text a span does not cover keeps the default style.
func (t *Theme) RenderLine(line string, tokens []syntax.Token) string {
	if len(tokens) == 0 {
		return t.Default.Render(line)
	}

	var sb strings.Builder
	var pos uint32
	for _, tok := range tokens {
		if tok.Start > pos && int(tok.Start) <= len(line) {
			sb.WriteString(t.Default.Render(line[pos:tok.Start]))
		}
		end := tok.End()
		if int(end) > len(line) {
			end = uint32(len(line))
		}
		if tok.Start < end {
			sb.WriteString(t.StyleFor(tok.Type).Render(line[tok.Start:end]))
		}
		pos = end
	}
	if int(pos) < len(line) {
		sb.WriteString(t.Default.Render(line[pos:]))
	}
	return sb.String()
}

// Default returns the built-in dark theme.
func Default() *Theme {
	return &Theme{
		Name:    "default",
		Default: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TokenStyles: map[syntax.TokenType]lipgloss.Style{
			syntax.TokenKeyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
			syntax.TokenString:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			syntax.TokenComment:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
			syntax.TokenNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			syntax.TokenOperator:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
			syntax.TokenPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
			syntax.TokenProperty:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			syntax.TokenTag:         lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			syntax.TokenAttribute:   lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
			syntax.TokenClass:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			syntax.TokenFunction:    lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
			syntax.TokenConstant:    lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
			syntax.TokenUnknown:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		},
	}
}

// Mono returns a colorless theme that only varies emphasis.
func Mono() *Theme {
	return &Theme{
		Name:    "mono",
		Default: lipgloss.NewStyle(),
		TokenStyles: map[syntax.TokenType]lipgloss.Style{
			syntax.TokenKeyword: lipgloss.NewStyle().Bold(true),
			syntax.TokenComment: lipgloss.NewStyle().Faint(true),
			syntax.TokenString:  lipgloss.NewStyle().Italic(true),
		},
	}
}

// ByName looks up a built-in theme. Reports false for unknown names.
func ByName(name string) (*Theme, bool) {
	switch name {
	case "default", "":
		return Default(), true
	case "mono":
		return Mono(), true
	default:
		return nil, false
	}
}

// Names lists the built-in theme names.
func Names() []string {
	return []string{"default", "mono"}
}
