package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by all commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Path    lipgloss.Style
}

// newStyles builds the style set. With color disabled every style renders
// as plain text, so callers never need to branch on TTY state.
func newStyles(out io.Writer, color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header1: plain,
			Header2: plain,
			Bold:    plain,
			Muted:   plain,
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Hint:    plain,
			Success: plain,
			Path:    plain,
		}
	}

	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(termenv.ANSI256)

	return &Styles{
		Header1: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header2: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		Bold:    renderer.NewStyle().Bold(true),
		Muted:   renderer.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Warning: renderer.NewStyle().Foreground(lipgloss.Color("214")),
		Info:    renderer.NewStyle().Foreground(lipgloss.Color("39")),
		Hint:    renderer.NewStyle().Foreground(lipgloss.Color("245")),
		Success: renderer.NewStyle().Foreground(lipgloss.Color("42")),
		Path:    renderer.NewStyle().Underline(true),
	}
}
