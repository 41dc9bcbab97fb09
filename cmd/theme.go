package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	teal  = lipgloss.Color("#00D4AA")
	coral = lipgloss.Color("#FF5F87")
	gray  = lipgloss.Color("#AAAAAA")
)

// theme holds the styles of the interactive assistant.
type theme struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	failure lipgloss.Style
	hint    lipgloss.Style
	command lipgloss.Style
}

// newTheme returns styles for w. Colors are dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		title:   r.NewStyle().Foreground(teal).Bold(true),
		prompt:  r.NewStyle().Foreground(teal),
		failure: r.NewStyle().Foreground(coral),
		hint:    r.NewStyle().Foreground(gray).Italic(true),
		command: r.NewStyle().Bold(true),
	}
}
