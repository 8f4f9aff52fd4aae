package ui

import "github.com/charmbracelet/lipgloss"

// Color palette, kept small and readable on dark and light terminals.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)

// styles are bound to a lipgloss renderer so the color profile follows the
// writer the shell prints to rather than the process's stdout.
type styles struct {
	prompt  lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
	output  lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt:  r.NewStyle().Bold(true).Foreground(ColorPrimary),
		success: r.NewStyle().Foreground(ColorSuccess),
		err:     r.NewStyle().Foreground(ColorError),
		output:  r.NewStyle(),
		title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}
