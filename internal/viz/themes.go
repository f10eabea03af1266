package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the stats panel. The ribbon keeps its stroke color.
type Theme struct {
	Name      string
	Header    lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
	Muted     lipgloss.Color
	Active    lipgloss.Color
	Suspended lipgloss.Color
	Chart     lipgloss.Color
}

var (
	ThemeCork = Theme{
		Name:      "cork",
		Header:    lipgloss.Color("#e0b070"),
		Label:     lipgloss.Color("#a08060"),
		Value:     lipgloss.Color("#f5e6d0"),
		Muted:     lipgloss.Color("#6b5540"),
		Active:    lipgloss.Color("#5fd068"),
		Suspended: lipgloss.Color("#ffc048"),
		Chart:     lipgloss.Color("#c0392b"),
	}

	ThemeNight = Theme{
		Name:      "night",
		Header:    lipgloss.Color("86"),
		Label:     lipgloss.Color("245"),
		Value:     lipgloss.Color("252"),
		Muted:     lipgloss.Color("240"),
		Active:    lipgloss.Color("#00ff88"),
		Suspended: lipgloss.Color("#ffaa00"),
		Chart:     lipgloss.Color("49"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Header:    lipgloss.Color("#ffffff"),
		Label:     lipgloss.Color("#888888"),
		Value:     lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#555555"),
		Active:    lipgloss.Color("#ffffff"),
		Suspended: lipgloss.Color("#888888"),
		Chart:     lipgloss.Color("#cccccc"),
	}

	Themes = []Theme{ThemeCork, ThemeNight, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to the first one for
// unknown or empty names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// nextTheme returns the theme after the named one, wrapping around.
func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
