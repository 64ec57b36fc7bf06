package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	markerDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Faint(true)
	rowStyle      = lipgloss.NewStyle().MarginBottom(1)
	containerPad  = lipgloss.NewStyle().Padding(1, 2)
	quittingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
