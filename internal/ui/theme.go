package ui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm feed aesthetics, readable on dark terminals
var (
	colorPrimary = lipgloss.Color("#6366F1") // Indigo
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Dark Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	incorrectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	xpStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	remediationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)
)
