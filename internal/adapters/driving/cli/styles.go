package cli

import "github.com/charmbracelet/lipgloss"

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)
