package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#FF3B30")
	colorAccent  = lipgloss.Color("#FFD700")
	colorSuccess = lipgloss.Color("#00E676")
	colorMuted   = lipgloss.Color("#636363")
	colorWhite   = lipgloss.Color("#EEEEEE")
	colorSurface = lipgloss.Color("#1E1E2E")
)

const selectionIndicator = "▎"

var (
	styleHeader = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleTab = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	styleSection = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleValue = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleAbsent = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleFooterKey  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleFooterDesc = lipgloss.NewStyle().Foreground(colorMuted)
)
