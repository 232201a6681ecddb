package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/riveting/internal/search"
)

// Markdown lays out a search view state as a markdown document.
func Markdown(vs search.ViewState) string {
	var b strings.Builder
	b.WriteString("# Superheroes\n\n")

	switch vs.Kind {
	case search.ViewError:
		fmt.Fprintf(&b, "**%s**\n", vs.Message)
		return b.String()
	case search.ViewLoading:
		b.WriteString("_Loading..._\n")
		return b.String()
	}

	d := vs.Display
	if d == nil {
		return b.String()
	}
	if d.SearchText != "" {
		fmt.Fprintf(&b, "Search: `%s`\n\n", d.SearchText)
	}

	switch {
	case d.Results.IsError():
		fmt.Fprintf(&b, "**%s**\n", d.Results.Message)
	case d.Results.IsLoaded():
		if len(d.Results.Value) == 0 {
			b.WriteString("_No results._\n")
		}
		for i, name := range d.Results.Value {
			fmt.Fprintf(&b, "%d. %s\n", i+1, name)
		}
	default:
		b.WriteString("_Searching..._\n")
	}

	if d.PresentedAlert != "" {
		a := d.SearchAlert
		fmt.Fprintf(&b, "\n> **%s**\n>\n> %s\n>\n> [y] %s  [n] %s\n", a.Title, a.Subtitle, a.PrimaryButton, a.SecondaryButton)
	}
	return b.String()
}
