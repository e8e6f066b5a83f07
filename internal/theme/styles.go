package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mapplock/mapplock/internal/domain"
)

// Text styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(18)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

var stateColors = map[string]Color{
	"active":   ColorActive,
	"ending":   ColorTransitions,
	"inactive": ColorInactive,
	"paused":   ColorPaused,
	"starting": ColorTransitions,
}

var severityColors = map[domain.Severity]Color{
	domain.SeverityCritical: ColorSeverityCritical,
	domain.SeverityHigh:     ColorSeverityHigh,
	domain.SeverityLow:      ColorSeverityLow,
	domain.SeverityMedium:   ColorSeverityMedium,
}

var complianceColors = map[domain.ComplianceStatus]Color{
	domain.ComplianceCompliant:    ColorCompliant,
	domain.ComplianceNonCompliant: ColorNonCompliant,
	domain.ComplianceUnknown:      ColorUnknown,
}

// StateStyle returns the style for a session or kiosk state name
func StateStyle(state string) lipgloss.Style {
	color, ok := stateColors[state]
	if !ok {
		color = ColorNormal
	}
	return lipgloss.NewStyle().Foreground(color).Bold(state == "active")
}

// SeverityStyle returns the style for a violation severity
func SeverityStyle(severity domain.Severity) lipgloss.Style {
	color, ok := severityColors[severity]
	if !ok {
		color = ColorNormal
	}
	return lipgloss.NewStyle().Foreground(color).Bold(severity == domain.SeverityCritical)
}

// ComplianceStyle returns the style for a compliance verdict
func ComplianceStyle(status domain.ComplianceStatus) lipgloss.Style {
	color, ok := complianceColors[status]
	if !ok {
		color = ColorNormal
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Field renders an aligned "label value" line
func Field(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
