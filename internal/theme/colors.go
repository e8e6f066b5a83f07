package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - section headers
)

// Session state colors
const (
	ColorActive      Color = "2"   // Green - enforcement running
	ColorInactive    Color = "8"   // Gray - nothing enforced
	ColorPaused      Color = "3"   // Yellow - paused
	ColorTransitions Color = "141" // Purple - starting/ending
)

// Severity colors
const (
	ColorSeverityCritical Color = "196" // Bright red
	ColorSeverityHigh     Color = "208" // Orange
	ColorSeverityLow      Color = "245" // Light gray
	ColorSeverityMedium   Color = "226" // Yellow
)

// Compliance colors
const (
	ColorCompliant    Color = "2" // Green
	ColorNonCompliant Color = "1" // Red
	ColorUnknown      Color = "3" // Yellow
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)
