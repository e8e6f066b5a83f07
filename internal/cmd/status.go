package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mapplock/mapplock/internal/domain"
)

// StatusCmd shows session and kiosk state
type StatusCmd struct {
	JSON  bool `help:"Output as JSON"`
	Short bool `help:"One-line summary for status bars" short:"s"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	status, err := cli.Container.CurrentStatus(context.Background())
	if err != nil {
		return err
	}
	if s.JSON {
		return printJSON(os.Stdout, status)
	}
	if s.Short {
		fmt.Println(statusLine(status))
		return nil
	}
	printStatus(os.Stdout, status)
	return nil
}

// statusLine renders the session as a compact widget, e.g.
// "● Focus 12m0s left · 2 violations (high)"
func statusLine(status domain.SessionStatus) string {
	if status.SessionID == "" {
		return "○ inactive"
	}

	icon := "●"
	if status.State == domain.StatePaused {
		icon = "◐"
	}
	line := fmt.Sprintf("%s %s %s left", icon, status.Name, formatDuration(status.Remaining))
	if status.State == domain.StatePaused {
		line += " (paused)"
	}
	if status.KioskState == domain.KioskInactive {
		line += " · not enforced"
	}
	if status.ViolationCount > 0 {
		line += fmt.Sprintf(" · %d violations (%s)", status.ViolationCount, status.HighestSeverity)
	}
	return line
}
