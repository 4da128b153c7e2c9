package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// DividerState selects how a divider is drawn
type DividerState int

const (
	DividerIdle DividerState = iota
	DividerFocused
	DividerDragging
	DividerAtLimit
)

// CreatePanelStyle creates the style of one panel occupying width x height cells
func CreatePanelStyle(width, height, index int, collapsed bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Background(lipgloss.Color(GetPanelBackground(index, collapsed))).
		Foreground(lipgloss.Color(ColorWhite))
}

// CreatePanelTitleStyle creates the style of a panel title
func CreatePanelTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightCyan))
}

// CreateDividerStyle creates the style of a divider in the given state
func CreateDividerStyle(state DividerState) lipgloss.Style {
	color := ColorDivider
	switch state {
	case DividerFocused:
		color = ColorDividerFocused
	case DividerDragging:
		color = ColorDividerDragging
	case DividerAtLimit:
		color = ColorDividerLimit
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(state != DividerIdle)
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true)
}

// CreateHeaderStyle creates a consistent header style
func CreateHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightGreen))
}

// CreateFooterStyle creates a consistent footer style
func CreateFooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack))
}

// CreateErrorStyle creates a consistent error style
func CreateErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightRed))
}
