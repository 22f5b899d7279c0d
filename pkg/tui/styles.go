package tui

import "github.com/charmbracelet/lipgloss/v2"

type styles struct {
	Title   lipgloss.Style
	Date    lipgloss.Style
	Header  lipgloss.Style
	Mood    lipgloss.Style
	Active  lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Prompt  lipgloss.Style
	Banner  lipgloss.Style
	Help    lipgloss.Style
	Focused lipgloss.Style
	Blurred lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1cc88a")),
		Date:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Mood:    lipgloss.NewStyle().Padding(0, 1),
		Active:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		Cursor:  lipgloss.NewStyle().Padding(0, 1).Underline(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#1cc88a")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f6c23e")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#36b9cc")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1cc88a")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")),
		Blurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}
