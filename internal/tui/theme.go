package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Header       lipgloss.Style
	Countdown    lipgloss.Style
	TimesUp      lipgloss.Style
	Error        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Badge        lipgloss.Style
	Info         lipgloss.Style
	Warn         lipgloss.Style
	Dim          lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Countdown:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		TimesUp:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Warn:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Countdown:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		TimesUp:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		FocusedInput: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Badge:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
		Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Warn:         lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
