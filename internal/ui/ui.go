package ui

import (
	"fmt"
	"io"
	"strings"
)

// Banner writes a run title framed by rules, sized to the title.
func Banner(w io.Writer, title string) {
	bar := strings.Repeat("─", len([]rune(title)))
	fmt.Fprintf(w, "%s\n%s\n%s\n", bar, styles.title.Render(title), bar)
}

// KV writes one "label: value" status line.
func KV(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", styles.label.Render(label+":"), value)
}

// OK writes a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s\n", styles.ok.Render(msg))
}

// Warn writes a warning line.
func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s\n", styles.warn.Render(msg))
}
