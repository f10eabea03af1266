package viz

import "github.com/charmbracelet/lipgloss"

const statsWidth = 36

type styles struct {
	canvas    lipgloss.Style
	stats     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	active    lipgloss.Style
	suspended lipgloss.Style
	chart     lipgloss.Style
	help      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas:    lipgloss.NewStyle().Padding(0, 1),
		stats:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(0, 2).Width(statsWidth),
		header:    lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:     lipgloss.NewStyle().Foreground(t.Label).Width(10),
		value:     lipgloss.NewStyle().Foreground(t.Value),
		active:    lipgloss.NewStyle().Foreground(t.Active).Bold(true),
		suspended: lipgloss.NewStyle().Foreground(t.Suspended).Bold(true),
		chart:     lipgloss.NewStyle().Foreground(t.Chart),
		help:      lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}
