package session

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
)
