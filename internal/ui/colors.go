package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	label lipgloss.Style
}

func NewPalette(t, s, w, l string) *Palette {
	return &Palette{
		title: NewBold(t),
		ok:    NewBold(s),
		warn:  NewStyle(w),
		label: NewBold(l),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}
