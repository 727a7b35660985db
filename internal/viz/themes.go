package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeNebula = Theme{
		Name:       "nebula",
		Primary:    lipgloss.Color("#c792ea"), // Orchid
		Secondary:  lipgloss.Color("#64d8cb"),
		Accent:     lipgloss.Color("#ffcb6b"),
		Background: lipgloss.Color("#0f0a1e"),
		Text:       lipgloss.Color("#e6e1ff"),
		Muted:      lipgloss.Color("#5a5478"),
		Success:    lipgloss.Color("#69f0ae"),
		Warning:    lipgloss.Color("#ffb74d"),
		Error:      lipgloss.Color("#ff5370"),
	}

	ThemeEclipse = Theme{
		Name:       "eclipse",
		Primary:    lipgloss.Color("#ff9e00"), // Corona amber
		Secondary:  lipgloss.Color("#cc7000"),
		Accent:     lipgloss.Color("#fff3b0"),
		Background: lipgloss.Color("#0a0805"),
		Text:       lipgloss.Color("#ffe8c2"),
		Muted:      lipgloss.Color("#6b5840"),
		Success:    lipgloss.Color("#9ccc65"),
		Warning:    lipgloss.Color("#ffd54f"),
		Error:      lipgloss.Color("#ef5350"),
	}

	ThemeAurora = Theme{
		Name:       "aurora",
		Primary:    lipgloss.Color("#4dd0a6"),
		Secondary:  lipgloss.Color("#26c6da"),
		Accent:     lipgloss.Color("#b2ff59"),
		Background: lipgloss.Color("#03130d"),
		Text:       lipgloss.Color("#dcfff2"),
		Muted:      lipgloss.Color("#3e6b5c"),
		Success:    lipgloss.Color("#69f0ae"),
		Warning:    lipgloss.Color("#ffee58"),
		Error:      lipgloss.Color("#ff7043"),
	}

	ThemePulsar = Theme{
		Name:       "pulsar",
		Primary:    lipgloss.Color("#82b1ff"),
		Secondary:  lipgloss.Color("#448aff"),
		Accent:     lipgloss.Color("#eeff41"),
		Background: lipgloss.Color("#050a14"),
		Text:       lipgloss.Color("#e3f2fd"),
		Muted:      lipgloss.Color("#46557a"),
		Success:    lipgloss.Color("#00e676"),
		Warning:    lipgloss.Color("#ffc400"),
		Error:      lipgloss.Color("#ff5252"),
	}

	ThemeVoid = Theme{
		Name:       "void",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#aaaaaa"),
		Accent:     lipgloss.Color("#ff4081"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#f5f5f5"),
		Muted:      lipgloss.Color("#555555"),
		Success:    lipgloss.Color("#76ff03"),
		Warning:    lipgloss.Color("#ffab00"),
		Error:      lipgloss.Color("#ff1744"),
	}

	// Default theme
	CurrentTheme = ThemeNebula

	// All available themes
	Themes = []Theme{
		ThemeNebula,
		ThemeEclipse,
		ThemeAurora,
		ThemePulsar,
		ThemeVoid,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNebula
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
