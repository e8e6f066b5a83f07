package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/theme"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// formatDuration renders d rounded to seconds, e.g. "1h2m3s"
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Round(time.Second).String()
}

func printStatus(w io.Writer, status domain.SessionStatus) {
	fmt.Fprintln(w, theme.Field("Session", theme.StateStyle(string(status.State)).Render(string(status.State))))
	fmt.Fprintln(w, theme.Field("Kiosk", theme.StateStyle(string(status.KioskState)).Render(string(status.KioskState))))
	if status.SessionID == "" {
		return
	}

	fmt.Fprintln(w, theme.Field("ID", status.SessionID))
	fmt.Fprintln(w, theme.Field("Name", status.Name))
	fmt.Fprintln(w, theme.Field("Mode", fmt.Sprintf("%s / %s / %s", status.Mode, status.KioskMode, status.RestrictionLevel)))
	if status.StartTime != nil {
		fmt.Fprintln(w, theme.Field("Started", status.StartTime.Local().Format(time.DateTime)))
	}
	fmt.Fprintln(w, theme.Field("Elapsed", formatDuration(status.Elapsed)))
	fmt.Fprintln(w, theme.Field("Remaining", formatDuration(status.Remaining)))
	if status.NextBreak != nil {
		fmt.Fprintln(w, theme.Field("Next break", formatDuration(*status.NextBreak)))
	}

	violations := fmt.Sprintf("%d", status.ViolationCount)
	if status.ViolationCount > 0 {
		violations += " (highest " + theme.SeverityStyle(status.HighestSeverity).Render(string(status.HighestSeverity)) + ")"
	}
	fmt.Fprintln(w, theme.Field("Violations", violations))
}

func printViolations(w io.Writer, violations []domain.Violation) {
	if len(violations) == 0 {
		fmt.Fprintln(w, theme.MutedStyle.Render("no violations"))
		return
	}
	p := newConsolePresenter(w, nil)
	for _, v := range violations {
		p.ShowViolation(v)
	}
}

func printCompliance(w io.Writer, result domain.ComplianceResult) {
	fmt.Fprintln(w, theme.Field("Compliance", theme.ComplianceStyle(result.Status).Render(string(result.Status))))
	for _, reason := range result.Reasons {
		fmt.Fprintf(w, "  %s %s\n", theme.MutedStyle.Render(string(reason.Check)), reason.Message)
	}
}

// parseParams turns key=value pairs into action parameters
func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[strings.TrimSpace(key)] = value
	}
	return params, nil
}
