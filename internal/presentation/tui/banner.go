package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []struct{ text, color string }{
		{"  ___  _             _   _ ", "#818cf8"},
		{" | _ \\(_)_ _____ ___| |_(_)_ _  __ _ ", "#a78bfa"},
		{" |   /| \\ V / -_)___|  _| | ' \\/ _` |", "#c084fc"},
		{" |_|_\\|_|\\_/\\___|    \\__|_|_||_\\__, |", "#e879f9"},
		{"                               |___/ ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
