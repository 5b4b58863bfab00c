package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for console output.
var (
	// PhaseStyle labels the progress bar
	PhaseStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Tag listing styles
	TagPathStyle = lipgloss.NewStyle()

	TagIDStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HiddenStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
