package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eb4d4b"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	alertBaseStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff"))
	alertSuccessStyle = alertBaseStyle.Background(lipgloss.Color("#20bf6b"))
	alertErrorStyle   = alertBaseStyle.Background(lipgloss.Color("#eb4d4b"))
)
