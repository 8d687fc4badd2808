package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the stats panel. The mosaic itself is always drawn in
// the shapes' own stroke colours.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Graph  lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
	Live   lipgloss.Color
	Paused lipgloss.Color
	Record lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:   "neon",
		Title:  lipgloss.Color("#ff00ff"),
		Label:  lipgloss.Color("#888899"),
		Value:  lipgloss.Color("#00ffff"),
		Graph:  lipgloss.Color("#00ff88"),
		Border: lipgloss.Color("#444466"),
		Muted:  lipgloss.Color("#666688"),
		Live:   lipgloss.Color("#00ff88"),
		Paused: lipgloss.Color("#ffaa00"),
		Record: lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Title:  lipgloss.Color("#00ff00"),
		Label:  lipgloss.Color("#00aa00"),
		Value:  lipgloss.Color("#88ff88"),
		Graph:  lipgloss.Color("#00cc00"),
		Border: lipgloss.Color("#005500"),
		Muted:  lipgloss.Color("#005500"),
		Live:   lipgloss.Color("#88ff88"),
		Paused: lipgloss.Color("#ffff00"),
		Record: lipgloss.Color("#ff0000"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Title:  lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#888888"),
		Value:  lipgloss.Color("#cccccc"),
		Graph:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#444444"),
		Muted:  lipgloss.Color("#666666"),
		Live:   lipgloss.Color("#ffffff"),
		Paused: lipgloss.Color("#888888"),
		Record: lipgloss.Color("#ff0000"),
	}

	ThemeDusk = Theme{
		Name:   "dusk",
		Title:  lipgloss.Color("#ff6b6b"),
		Label:  lipgloss.Color("#8b6b8c"),
		Value:  lipgloss.Color("#feca57"),
		Graph:  lipgloss.Color("#ff9ff3"),
		Border: lipgloss.Color("#4d3b4e"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Live:   lipgloss.Color("#5fd068"),
		Paused: lipgloss.Color("#ffc048"),
		Record: lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemeMono, ThemeDusk}
)

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
