package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the HUD and the walls. Particle colors come from the
// world.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Pull   lipgloss.Color
	Push   lipgloss.Color
	Border lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:   "neon",
		Title:  lipgloss.Color("#00ffff"),
		Label:  lipgloss.Color("#888899"),
		Value:  lipgloss.Color("#ffffff"),
		Pull:   lipgloss.Color("#00ff88"),
		Push:   lipgloss.Color("#ff4444"),
		Border: lipgloss.Color("#444466"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"),
		Label:  lipgloss.Color("#00aa00"),
		Value:  lipgloss.Color("#88ff88"),
		Pull:   lipgloss.Color("#88ff88"),
		Push:   lipgloss.Color("#ffff00"),
		Border: lipgloss.Color("#005500"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Label:  lipgloss.Color("#888888"),
		Value:  lipgloss.Color("#cccccc"),
		Pull:   lipgloss.Color("#0088ff"),
		Push:   lipgloss.Color("#ffaa00"),
		Border: lipgloss.Color("#444444"),
		Muted:  lipgloss.Color("#666666"),
	}

	Themes = []Theme{
		ThemeNeon,
		ThemeRetroGreen,
		ThemeMinimal,
	}
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

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
