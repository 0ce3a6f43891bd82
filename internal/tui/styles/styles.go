// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// HeaderStyle for single-line headers drawn inside flowing layouts
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// ObjectStyle for draggable object sprites on the playfield
	ObjectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D7AF87"))

	// Playfield zone backgrounds, one per zone kind.
	StagingZoneStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#262626")).Foreground(lipgloss.Color("#444444"))
	WallZoneStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#3A3A3A")).Foreground(lipgloss.Color("#585858"))
	TableZoneStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#5F5F00")).Foreground(lipgloss.Color("#87875F"))
	GapZoneStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#1C1C1C")).Foreground(lipgloss.Color("#303030"))
	PlatformZoneStyle = lipgloss.NewStyle().Background(lipgloss.Color("#4E4E4E")).Foreground(lipgloss.Color("#6C6C6C"))
)
