package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler colors command output when the destination is a color terminal.
// Pipes, files and buffers get plain text.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the color profile of w.
func NewStyler(w io.Writer) Styler {
	return Styler{out: termenv.NewOutput(w)}
}

// Verdict renders a boolean result as "true" in green or "false" in red.
func (s Styler) Verdict(ok bool) string {
	if ok {
		return s.out.String("true").Foreground(s.out.Color("#22c55e")).Bold().String()
	}
	return s.out.String("false").Foreground(s.out.Color("#ef4444")).Bold().String()
}

// Faint renders secondary information such as the algorithm next to a digest.
func (s Styler) Faint(text string) string {
	return s.out.String(text).Faint().String()
}
