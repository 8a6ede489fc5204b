// Package ui renders the console status output for a pipeline run: a
// framed banner followed by "label: value" lines, styled with lipgloss.
//
// The helpers write to any io.Writer so command tests can capture output in
// a buffer. Styling degrades gracefully on non-TTY writers via lipgloss's
// color profile detection.
package ui
