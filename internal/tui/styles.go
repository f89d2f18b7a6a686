package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for console output
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// Header renders a section heading.
func Header(s string) string {
	return headerStyle.Render(s)
}

// Warning renders a line that must not be missed.
func Warning(s string) string {
	return warningStyle.Render(s)
}

// Dim renders secondary information.
func Dim(s string) string {
	return dimStyle.Render(s)
}

// Box renders s inside a rounded border.
func Box(s string) string {
	return boxStyle.Render(s)
}

// PadRight pads s with spaces to width terminal cells. Wide characters
// count by display width, not bytes. Longer strings are returned as is.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
