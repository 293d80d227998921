package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#1DB954", "#FAFAFA", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title   lipgloss.Style
	desc    lipgloss.Style
	loading lipgloss.Style
	help    lipgloss.Style
}

func NewPalette(t, d, l, h string) *Palette {
	return &Palette{
		title:   NewBold(t),
		desc:    NewStyle(d).MarginBottom(1),
		loading: NewStyle(l),
		help:    NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
