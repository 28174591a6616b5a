package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary   = lipgloss.Color("#7f57b4") // purple
	ColorSecondary = lipgloss.Color("#436b77") // teal
	ColorText      = lipgloss.Color("#d7d9da") // main text
	ColorMuted     = lipgloss.Color("#9ba0bf") // muted text
	ColorBorder    = lipgloss.Color("#273540") // border
)

// --- Reusable Styles ---

var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)
