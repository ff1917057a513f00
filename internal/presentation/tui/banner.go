package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"       _   _ _ _    _ _   ",
	" _   _| |_(_) | | _(_) |_ ",
	"| | | | __| | | |/ / | __|",
	"| |_| | |_| | |   <| | |_ ",
	" \\__,_|\\__|_|_|_|\\_\\_|\\__|",
}

// Using a subtle gradient-like color scheme (Teal/Cyan)
var bannerColors = []string{"#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

// PrintBanner writes the utilkit ASCII art banner followed by the version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
