package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
	"github.com/mapplock/mapplock/internal/theme"
)

// consolePresenter prints state changes and violations as they happen
type consolePresenter struct {
	mu    sync.Mutex
	out   io.Writer
	sound ports.SoundPlayer
}

// newConsolePresenter creates a presenter writing to out. sound may be nil.
func newConsolePresenter(out io.Writer, sound ports.SoundPlayer) *consolePresenter {
	return &consolePresenter{out: out, sound: sound}
}

// ShowViolation prints one violation line
func (p *consolePresenter) ShowViolation(v domain.Violation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("%s %s %s",
		theme.MutedStyle.Render(v.Timestamp.Local().Format(time.TimeOnly)),
		theme.SeverityStyle(v.Severity).Render(fmt.Sprintf("%-8s", v.Severity)),
		v.Type)
	if v.AppBundleID != "" {
		line += " " + theme.MutedStyle.Render(v.AppBundleID)
	}
	if v.Details != "" {
		line += " " + v.Details
	}
	fmt.Fprintln(p.out, line)

	if p.sound != nil {
		if err := p.sound.PlayForSeverity(v.Severity); err != nil {
			logging.Logger.Debug("Failed to play alert", "error", err)
		}
	}
}

// StateChanged prints the new session and kiosk state
func (p *consolePresenter) StateChanged(status domain.SessionStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("session %s kiosk %s",
		theme.StateStyle(string(status.State)).Render(string(status.State)),
		theme.StateStyle(string(status.KioskState)).Render(string(status.KioskState)))
	if status.Name != "" {
		line += " " + theme.MutedStyle.Render(status.Name)
	}
	fmt.Fprintln(p.out, line)
}
