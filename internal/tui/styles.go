package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	userStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	assistantStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	apologyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("9"))

	riskLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	riskMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	riskHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
