package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the log view.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Header and footer bars

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Entry: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Entry  lipgloss.Style

	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	FaintText  lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns a theme by name, falling back to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func draculaTheme() Theme {
	// https://draculatheme.com/spec
	return Theme{
		Name:       "Dracula",
		Background: "#191A21",
		Surface:    "#282A36",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Faint:      "#44475A",
		Accent:     "#BD93F9",
		Warning:    "#F1FA8C",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette
	return Theme{
		Name:       "Slate",
		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Text:       "#f1f5f9", // slate-100
		Muted:      "#94a3b8", // slate-400
		Faint:      "#64748b", // slate-500
		Accent:     "#38bdf8", // sky-400
		Warning:    "#f59e0b", // amber-500
	}
}
