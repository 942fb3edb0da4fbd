package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewStyles
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
	ThemeLight   = "light"
)

// Styles contains all styling shared by the console and the TUI
type Styles struct {
	// Pane styles
	LogPane    lipgloss.Style
	ActionPane lipgloss.Style
	Sidebar    lipgloss.Style

	// Content styles
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	HandInfo  lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Hidden    lipgloss.Style
	Balance   lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

type palette struct {
	text, muted, accent, header, red, black, green, gold, yellow string
}

var palettes = map[string]palette{
	ThemeDefault: {
		text: "#FAFAFA", muted: "#626262", accent: "#04B575", header: "#7D56F4",
		red: "#FF6B6B", black: "#FAFAFA", green: "#96CEB4", gold: "#FFD700", yellow: "#FFEAA7",
	},
	ThemeDark: {
		text: "#E0E0E0", muted: "#4E4E4E", accent: "#00AF87", header: "#5F5FAF",
		red: "#FF5F5F", black: "#BCBCBC", green: "#87D7AF", gold: "#D7AF00", yellow: "#D7D787",
	},
	ThemeLight: {
		text: "#1C1C1C", muted: "#8A8A8A", accent: "#008700", header: "#5F00AF",
		red: "#D70000", black: "#000000", green: "#005F00", gold: "#AF8700", yellow: "#AF5F00",
	},
}

// NewStyles builds the styles for a theme. Unknown themes use the default.
func NewStyles(theme string) *Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeDefault]
	}

	color := func(c string) lipgloss.Color { return lipgloss.Color(c) }
	bold := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(color(c)).Bold(true)
	}

	return &Styles{
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.muted)),
		ActionPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.accent)),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.muted)),

		Header: lipgloss.NewStyle().
			Foreground(color("#FAFAFA")).
			Background(color(p.header)).
			Bold(true),
		Prompt:    bold(p.accent),
		HandInfo:  bold(p.green),
		Actions:   bold(p.gold),
		RedCard:   bold(p.red),
		BlackCard: bold(p.black),
		Hidden:    lipgloss.NewStyle().Foreground(color(p.muted)).Italic(true),
		Balance:   bold(p.gold),

		Success: bold(p.green),
		Error:   bold(p.red),
		Warning: bold(p.yellow),
		Info:    lipgloss.NewStyle().Foreground(color(p.muted)),
	}
}

// ConfigureColor forces plain output when noColor is set. Otherwise lipgloss
// detects the terminal's color profile.
func ConfigureColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
