package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders md for the terminal with the configured style. It
// returns md unchanged when it cannot be rendered.
func renderMarkdown(md string) string {
	style := "auto"
	if cfg, err := Settings(); err == nil {
		style = cfg.Style
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown prints md rendered for the terminal.
func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}
