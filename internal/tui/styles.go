package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorSuccess = lipgloss.Color("42")
	colorDanger  = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("241")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(18)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			MarginTop(1)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	deltaPositiveStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	deltaNegativeStyle = lipgloss.NewStyle().Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	errStyle = lipgloss.NewStyle().Foreground(colorDanger)
)
