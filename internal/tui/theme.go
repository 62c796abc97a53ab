package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a semantic palette. Dark is Catppuccin Mocha, light is Latte.
// https://catppuccin.com/palette
type Theme struct {
	Name    string
	Dark    bool
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Faint   lipgloss.Color
	Accent  lipgloss.Color
	Brand   lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Money   lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
	Mantle  lipgloss.Color
}

var mochaTheme = Theme{
	Name:    "dark",
	Dark:    true,
	Text:    "#cdd6f4",
	Subtext: "#a6adc8",
	Faint:   "#7f849c",
	Accent:  "#f5c2e7",
	Brand:   "#cba6f7",
	Focus:   "#b4befe",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
	Warning: "#f9e2af",
	Info:    "#94e2d5",
	Money:   "#fab387",
	Border:  "#45475a",
	Surface: "#313244",
	Mantle:  "#181825",
}

var latteTheme = Theme{
	Name:    "light",
	Dark:    false,
	Text:    "#4c4f69",
	Subtext: "#6c6f85",
	Faint:   "#8c8fa1",
	Accent:  "#ea76cb",
	Brand:   "#8839ef",
	Focus:   "#7287fd",
	Success: "#40a02b",
	Error:   "#d20f39",
	Warning: "#df8e1d",
	Info:    "#179299",
	Money:   "#fe640b",
	Border:  "#bcc0cc",
	Surface: "#ccd0da",
	Mantle:  "#e6e9ef",
}

// ThemeFor picks the palette for dark or light terminals.
func ThemeFor(dark bool) Theme {
	if dark {
		return mochaTheme
	}
	return latteTheme
}

func (t Theme) toggled() Theme {
	return ThemeFor(!t.Dark)
}

// styles are rebuilt whenever the theme changes.
type styles struct {
	theme Theme

	title      lipgloss.Style
	brand      lipgloss.Style
	text       lipgloss.Style
	subtle     lipgloss.Style
	faint      lipgloss.Style
	accent     lipgloss.Style
	success    lipgloss.Style
	errorText  lipgloss.Style
	warning    lipgloss.Style
	money      lipgloss.Style
	code       lipgloss.Style
	cursor     lipgloss.Style
	label      lipgloss.Style
	header     lipgloss.Style
	activeTab  lipgloss.Style
	tab        lipgloss.Style
	tabSep     lipgloss.Style
	footer     lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
	statusBar  lipgloss.Style
	noticeWarn lipgloss.Style
	noticeErr  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		theme:     t,
		title:     lipgloss.NewStyle().Foreground(t.Brand).Bold(true),
		brand:     lipgloss.NewStyle().Foreground(t.Brand).Bold(true),
		text:      lipgloss.NewStyle().Foreground(t.Text),
		subtle:    lipgloss.NewStyle().Foreground(t.Subtext),
		faint:     lipgloss.NewStyle().Foreground(t.Faint),
		accent:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		success:   lipgloss.NewStyle().Foreground(t.Success),
		errorText: lipgloss.NewStyle().Foreground(t.Error),
		warning:   lipgloss.NewStyle().Foreground(t.Warning),
		money:     lipgloss.NewStyle().Foreground(t.Money).Bold(true),
		code:      lipgloss.NewStyle().Foreground(t.Info),
		cursor:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		label:     lipgloss.NewStyle().Foreground(t.Subtext),
		header: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Mantle).
			Padding(0, 1),
		activeTab: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(t.Faint).
			Background(t.Mantle).
			Padding(0, 1),
		tabSep: lipgloss.NewStyle().
			Foreground(t.Border).
			Background(t.Mantle),
		footer: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Padding(0, 1),
		helpKey:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(t.Subtext),
		statusBar: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		noticeWarn: lipgloss.NewStyle().
			Foreground(t.Mantle).
			Background(t.Warning).
			Padding(0, 1),
		noticeErr: lipgloss.NewStyle().
			Foreground(t.Mantle).
			Background(t.Error).
			Padding(0, 1),
	}
}
