package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mapplock/mapplock/internal/config"
	"github.com/mapplock/mapplock/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Action     ActionCmd     `cmd:"action" help:"Run an enterprise action locally"`
	Compliance ComplianceCmd `cmd:"compliance" help:"Evaluate device compliance"`
	Kiosk      KioskCmd      `cmd:"kiosk" help:"Inspect and adjust kiosk enforcement"`
	Reports    ReportsCmd    `cmd:"reports" help:"Generate usage and violation reports"`
	Serve      ServeCmd      `cmd:"serve" help:"Run the enforcement daemon and management command channel"`
	Session    SessionCmd    `cmd:"session" help:"Manage the focus session (start, pause, resume, extend, end)"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta, hash-token, totp-enroll)"`
	Status     StatusCmd     `cmd:"status" help:"Show session and kiosk state" default:"1"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	version   string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersion sets the version reported in heartbeats
func (c *CLI) SetVersion(version string) {
	c.version = version
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply if the flag is at its default value and the env var is not set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("MAPPLOCK_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("MAPPLOCK_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("MAPPLOCK_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("MAPPLOCK_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("MAPPLOCK_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Settings commands only touch settings.json
	if kctx != nil && isSettingsCommand(kctx.Command()) {
		return nil
	}

	// Create container AFTER logging is initialized so GORM logs through it
	container, err := NewContainer(ContainerOptions{
		Home:     config.GetHome(),
		Serve:    kctx != nil && kctx.Command() == "serve",
		Settings: c.settings,
		Version:  c.version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func isSettingsCommand(command string) bool {
	return strings.HasPrefix(command, "settings")
}
