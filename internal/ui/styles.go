package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorDanger  = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Text styles
var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Danger  = lipgloss.NewStyle().Foreground(ColorDanger)
)

// ID style - distinctive for company ids
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style for company names
var Title = lipgloss.NewStyle().Bold(true)

// Label style for field names in show output
var Label = lipgloss.NewStyle().Foreground(ColorMuted).Width(16)
