package tui

import (
	"github.com/charmbracelet/glamour"
)

// Render turns markdown into terminal output.
type Render func(markdown string) (string, error)

// NewRenderer returns a function that renders markdown using glamour.
// It picks a light or dark theme from the terminal background.
func NewRenderer() Render {
	return newRenderer(glamour.WithAutoStyle())
}

// NewPlainRenderer renders without colors or escape codes, for pipes and
// tests.
func NewPlainRenderer() Render {
	return newRenderer(glamour.WithStandardStyle("notty"))
}

func newRenderer(style glamour.TermRendererOption) Render {
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return r.Render
}
