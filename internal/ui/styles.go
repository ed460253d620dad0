package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorTitle    = lipgloss.Color("33")
	colorSubtle   = lipgloss.Color("242")
	colorFaint    = lipgloss.Color("240")
	colorError    = lipgloss.Color("196")
	colorResult   = lipgloss.Color("70")
	colorSelected = lipgloss.Color("75")
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
