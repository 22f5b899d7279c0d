package printers

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the terminal chart.
type Theme struct {
	Title lipgloss.Style
	Tick  lipgloss.Style
	Axis  lipgloss.Style
	Label lipgloss.Style
	Line  lipgloss.Style
	Point lipgloss.Style
}

// DefaultTheme returns the built-in chart theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Underline(true),
		Tick:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Axis:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Line:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5a5c69")),
		Point: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}
}

// pointStyle colors a point with its own color when it has one.
func (t Theme) pointStyle(hex string) lipgloss.Style {
	if hex == "" {
		return t.Point
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}
