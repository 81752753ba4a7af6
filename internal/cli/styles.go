package cli

import "github.com/charmbracelet/lipgloss"

// Console styles for summary output. Colors degrade to plain text
// when the output is not a terminal.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031"))
)
