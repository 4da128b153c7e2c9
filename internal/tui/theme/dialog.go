package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreateHelpDialogStyle creates the floating help dialog style
func CreateHelpDialogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrightYellow)).
		Padding(1, 2).
		Foreground(lipgloss.Color(ColorWhite))
}

// CreatePromptStyle creates a style for dialog titles
func CreatePromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightYellow)).
		Bold(true).
		MarginBottom(1)
}
