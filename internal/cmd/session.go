package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/theme"
)

// SessionCmd manages the focus session
type SessionCmd struct {
	End       SessionEndCmd       `cmd:"end" help:"End the current session"`
	Extend    SessionExtendCmd    `cmd:"extend" help:"Extend the current session"`
	List      SessionListCmd      `cmd:"list" help:"List recorded sessions"`
	Pause     SessionPauseCmd     `cmd:"pause" help:"Pause the current session"`
	Resume    SessionResumeCmd    `cmd:"resume" help:"Resume a paused session"`
	Show      SessionShowCmd      `cmd:"show" help:"Show a session and its violations" default:"1"`
	Start     SessionStartCmd     `cmd:"start" help:"Start a focus session"`
	Violation SessionViolationCmd `cmd:"violation" help:"Record a violation against the current session"`
}

// SessionStartCmd starts a focus session
type SessionStartCmd struct {
	AllowedApps      []string      `help:"Allowed app bundle ids" name:"allowed-app"`
	BlockedApps      []string      `help:"Blocked app bundle ids" name:"blocked-app"`
	BlockedWebsites  []string      `help:"Blocked website patterns (example.com, *.example.com, contains:word)" name:"blocked-website"`
	BreakDuration    time.Duration `help:"Length of each break"`
	BreakInterval    time.Duration `help:"Time between breaks"`
	BreakRequired    bool          `help:"Breaks are mandatory"`
	Duration         time.Duration `help:"Session length" default:"25m"`
	EmergencyContact string        `help:"Emergency contact shown on the lock screen"`
	File             string        `help:"Read the configuration from a TOML file" type:"existingfile" short:"f"`
	KioskMode        string        `help:"Kiosk mode (guided_access, screen_time, autonomous, single_app, custom)"`
	Mode             string        `help:"Session mode (focus, study, work, exam, kiosk, presentation, retail, healthcare, custom)"`
	Name             string        `arg:"" optional:"" help:"Session name"`
	RestrictionLevel string        `help:"Restriction level (minimal, basic, standard, strict, maximum)"`
}

// Request builds the configuration request from the file and flags. Flags
// override values read from the file.
func (s *SessionStartCmd) Request() (domain.ConfigurationRequest, error) {
	var req domain.ConfigurationRequest
	if s.File != "" {
		data, err := os.ReadFile(s.File)
		if err != nil {
			return req, fmt.Errorf("failed to read configuration: %w", err)
		}
		if err := toml.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("invalid configuration file: %w", err)
		}
	}

	if s.Name != "" {
		req.Name = s.Name
	}
	if s.File == "" || s.Duration != 25*time.Minute {
		req.DurationSeconds = int64(s.Duration / time.Second)
	}
	if s.Mode != "" {
		req.Mode = s.Mode
	}
	if s.KioskMode != "" {
		req.KioskMode = s.KioskMode
	}
	if s.RestrictionLevel != "" {
		req.RestrictionLevel = s.RestrictionLevel
	}
	if len(s.AllowedApps) > 0 {
		req.AllowedApps = s.AllowedApps
	}
	if len(s.BlockedApps) > 0 {
		req.BlockedApps = s.BlockedApps
	}
	if len(s.BlockedWebsites) > 0 {
		req.BlockedWebsites = s.BlockedWebsites
	}
	if s.EmergencyContact != "" {
		req.EmergencyContact = s.EmergencyContact
	}
	if s.BreakInterval > 0 {
		req.Breaks = &domain.BreakConfigurationInput{
			IntervalSeconds: int64(s.BreakInterval / time.Second),
			DurationSeconds: int64(s.BreakDuration / time.Second),
			IsRequired:      s.BreakRequired,
		}
	}
	return req, nil
}

// Run executes the start command
func (s *SessionStartCmd) Run(cli *CLI) error {
	req, err := s.Request()
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing session start command", "name", req.Name, "kiosk_mode", req.KioskMode)

	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		session, err := c.Lockdown.Start(ctx, req)
		if session.ID == "" {
			return err
		}
		fmt.Printf("Session '%s' started (%s)\n", session.Configuration.Name, session.ID)
		if err != nil {
			fmt.Println(theme.ErrorStyle.Render("Kiosk mode not engaged: " + err.Error()))
			fmt.Println("Run 'mapplock kiosk retry' once the device allows it.")
		}
		return nil
	})
}

// SessionPauseCmd pauses the current session
type SessionPauseCmd struct{}

// Run executes the pause command
func (s *SessionPauseCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		if err := c.Lockdown.Pause(ctx); err != nil {
			return err
		}
		fmt.Println("Session paused")
		return nil
	})
}

// SessionResumeCmd resumes a paused session
type SessionResumeCmd struct{}

// Run executes the resume command
func (s *SessionResumeCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		if err := c.Lockdown.Resume(ctx); err != nil {
			return err
		}
		fmt.Println("Session resumed")
		return nil
	})
}

// SessionExtendCmd extends the current session
type SessionExtendCmd struct {
	By time.Duration `arg:"" help:"Additional time (e.g. 10m)"`
}

// Run executes the extend command
func (s *SessionExtendCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		if err := c.Lockdown.Extend(ctx, s.By); err != nil {
			return err
		}
		status := c.Lockdown.Status()
		fmt.Printf("Session extended by %s, %s remaining\n", formatDuration(s.By), formatDuration(status.Remaining))
		return nil
	})
}

// SessionEndCmd ends the current session
type SessionEndCmd struct{}

// Run executes the end command
func (s *SessionEndCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		ended, err := c.Lockdown.End(ctx)
		if ended.ID == "" {
			return err
		}
		if err != nil {
			fmt.Println(theme.ErrorStyle.Render("Enforcement teardown incomplete: " + err.Error()))
		}

		end := nowUTC()
		if ended.EndTime != nil {
			end = *ended.EndTime
		}
		fmt.Printf("Session '%s' ended after %s with %d violation(s)\n",
			ended.Configuration.Name, formatDuration(ended.Elapsed(end)), len(ended.Violations))
		return nil
	})
}

// SessionViolationCmd records a violation reported by an external observer
type SessionViolationCmd struct {
	App      string `help:"App bundle id involved"`
	Details  string `help:"Free-form details"`
	Severity string `help:"Severity (low, medium, high, critical)" default:"medium"`
	Type     string `arg:"" help:"Violation type (e.g. unauthorized_app_launch)"`
}

// Run executes the violation command
func (s *SessionViolationCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		v, err := c.Lockdown.Sessions().ReportViolation(ctx, domain.ViolationInput{
			Type:        domain.ViolationType(s.Type),
			Severity:    domain.Severity(s.Severity),
			Details:     s.Details,
			AppBundleID: s.App,
		})
		if err != nil {
			return err
		}
		printViolations(os.Stdout, []domain.Violation{v})
		return nil
	})
}

// SessionShowCmd shows a session and its violations
type SessionShowCmd struct {
	ID   string `arg:"" optional:"" help:"Session id (defaults to the current or last session)"`
	JSON bool   `help:"Output as JSON"`
}

// Run executes the show command
func (s *SessionShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container
	if err := c.RestoreSessions(ctx); err != nil {
		return err
	}

	report, err := c.Reports.SessionViolations(ctx, s.ID)
	if err != nil {
		return err
	}
	if s.JSON {
		return printJSON(os.Stdout, report)
	}

	fmt.Println(theme.TitleStyle.Render(report.SessionName) + " " + theme.MutedStyle.Render(report.SessionID))
	if report.SessionID == c.Lockdown.Status().SessionID {
		status, err := c.CurrentStatus(ctx)
		if err != nil {
			return err
		}
		printStatus(os.Stdout, status)
	}
	fmt.Println()
	printViolations(os.Stdout, report.Violations)
	return nil
}

// SessionListCmd lists recorded sessions
type SessionListCmd struct {
	JSON  bool          `help:"Output as JSON"`
	Since time.Duration `help:"Only sessions started within this window" default:"168h"`
}

// Run executes the list command
func (s *SessionListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	sessions, err := cli.Container.Store.List(ctx, nowUTC().Add(-s.Since))
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if s.JSON {
		return printJSON(os.Stdout, sessions)
	}
	if len(sessions) == 0 {
		fmt.Println(theme.MutedStyle.Render("no sessions"))
		return nil
	}

	now := nowUTC()
	for _, session := range sessions {
		state := "ended"
		if session.EndTime == nil {
			state = "current"
		}
		fmt.Printf("%s  %-20s %-8s %-14s %s  %d violation(s)\n",
			theme.MutedStyle.Render(session.ID),
			session.Configuration.Name,
			state,
			session.Configuration.KioskMode,
			formatDuration(session.Elapsed(now)),
			len(session.Violations))
	}
	return nil
}
