package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a palette keyed by what each colour is used for on screen.
type Theme struct {
	Name string

	Primary    lipgloss.Color // prompt signatures, headers, caret
	Secondary  lipgloss.Color // list items, card titles
	Accent     lipgloss.Color // links, graph nodes
	Background lipgloss.Color // exported images only
	Text       lipgloss.Color
	Muted      lipgloss.Color // hints, borders, footer
	Success    lipgloss.Color // status line, video progress
}

var (
	ThemeTerminal = Theme{
		Name:       "terminal",
		Primary:    "#39ff14",
		Secondary:  "#7ee787",
		Accent:     "#58a6ff",
		Background: "#0d1117",
		Text:       "#c9d1d9",
		Muted:      "#6e7681",
		Success:    "#3fb950",
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    "#ff00ff",
		Secondary:  "#00ffff",
		Accent:     "#fcee0a",
		Background: "#0b0014",
		Text:       "#f5f5f5",
		Muted:      "#6b5b7b",
		Success:    "#00ff9f",
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    "#33ff33",
		Secondary:  "#22bb22",
		Accent:     "#99ff99",
		Background: "#001a00",
		Text:       "#33ff33",
		Muted:      "#1a661a",
		Success:    "#99ff99",
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    "#ffffff",
		Secondary:  "#d0d0d0",
		Accent:     "#5fafff",
		Background: "#000000",
		Text:       "#e4e4e4",
		Muted:      "#808080",
		Success:    "#afffaf",
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    "#4fc3f7",
		Secondary:  "#80deea",
		Accent:     "#ffd54f",
		Background: "#01203a",
		Text:       "#e1f5fe",
		Muted:      "#4a7a96",
		Success:    "#69f0ae",
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    "#ff7a59",
		Secondary:  "#ffc15e",
		Accent:     "#f78fb3",
		Background: "#2b1a2f",
		Text:       "#fff1e6",
		Muted:      "#8c6d8f",
		Success:    "#7bd389",
	}

	CurrentTheme = ThemeTerminal

	// Themes is the order `t` cycles through.
	Themes = []Theme{
		ThemeTerminal,
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the terminal theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeTerminal
}

func SetTheme(name string) { CurrentTheme = GetTheme(name) }

// NextTheme switches to the theme after the current one and returns it.
func NextTheme() Theme {
	i := 0
	for j, t := range Themes {
		if t.Name == CurrentTheme.Name {
			i = j + 1
			break
		}
	}
	CurrentTheme = Themes[i%len(Themes)]
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
