package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss Styles - shared across solo and online modes
var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	higherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	lowerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)
