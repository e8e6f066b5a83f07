package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterenforcement "github.com/mapplock/mapplock/internal/adapters/enforcement"
	adapterlock "github.com/mapplock/mapplock/internal/adapters/lock"
	"github.com/mapplock/mapplock/internal/config"
	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/fileutil"
)

func newTestContainer(t *testing.T, settings *config.Settings) *Container {
	t.Helper()

	c, err := NewContainer(ContainerOptions{
		Home:     t.TempDir(),
		Out:      &bytes.Buffer{},
		Settings: settings,
		Version:  "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"duration=1800", "reason=fire drill", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"duration": "1800", "reason": "fire drill", "empty": ""}, params)

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}

func TestSessionStartCmd_Request(t *testing.T) {
	t.Run("flags only", func(t *testing.T) {
		cmd := SessionStartCmd{
			Name:          "Deep work",
			Duration:      45 * time.Minute,
			KioskMode:     "screen_time",
			BlockedApps:   []string{"com.social.app"},
			BreakInterval: 20 * time.Minute,
			BreakDuration: 5 * time.Minute,
		}
		req, err := cmd.Request()
		require.NoError(t, err)
		assert.Equal(t, "Deep work", req.Name)
		assert.Equal(t, int64(2700), req.DurationSeconds)
		assert.Equal(t, "screen_time", req.KioskMode)
		assert.Equal(t, []string{"com.social.app"}, req.BlockedApps)
		require.NotNil(t, req.Breaks)
		assert.Equal(t, int64(1200), req.Breaks.IntervalSeconds)
		assert.Equal(t, int64(300), req.Breaks.DurationSeconds)
	})

	t.Run("file with overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "exam.toml")
		content := `
name = "Exam"
duration = 3600
kiosk_mode = "custom"
restriction_level = "strict"
blocked_websites = ["*.chat.example"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		// Duration at its default keeps the file value
		cmd := SessionStartCmd{File: path, Duration: 25 * time.Minute, RestrictionLevel: "maximum"}
		req, err := cmd.Request()
		require.NoError(t, err)
		assert.Equal(t, "Exam", req.Name)
		assert.Equal(t, int64(3600), req.DurationSeconds)
		assert.Equal(t, "custom", req.KioskMode)
		assert.Equal(t, "maximum", req.RestrictionLevel)
		assert.Equal(t, []string{"*.chat.example"}, req.BlockedWebsites)

		_, err = domain.ValidateConfiguration(req)
		assert.NoError(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = "), 0644))

		cmd := SessionStartCmd{File: path, Duration: 25 * time.Minute}
		_, err := cmd.Request()
		assert.Error(t, err)
	})
}

func TestConsolePresenter(t *testing.T) {
	var buf bytes.Buffer
	p := newConsolePresenter(&buf, nil)

	p.StateChanged(domain.SessionStatus{State: domain.StateActive, KioskState: domain.KioskActive, Name: "Focus"})
	p.ShowViolation(domain.Violation{
		Type:        domain.ViolationUnauthorizedAppLaunch,
		Severity:    domain.SeverityHigh,
		AppBundleID: "com.games.app",
		Timestamp:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	assert.Contains(t, out, "session active kiosk active Focus")
	assert.Contains(t, out, "unauthorized_app_launch")
	assert.Contains(t, out, "com.games.app")
}

func TestNewContainer_AssignsDeviceID(t *testing.T) {
	settings := &config.Settings{}
	c := newTestContainer(t, settings)

	require.NotEmpty(t, c.DeviceID)
	assert.Equal(t, c.DeviceID, settings.DeviceID)
	assert.Nil(t, c.MDMClient)

	saved, err := config.LoadSettingsFrom(filepath.Join(c.Home, config.SettingsFile))
	require.NoError(t, err)
	assert.Equal(t, c.DeviceID, saved.DeviceID)
}

func TestNewContainer_WithManagementServer(t *testing.T) {
	c := newTestContainer(t, &config.Settings{
		DeviceID:     "dev-1",
		MDMServerURL: "https://mdm.example.com",
		SharedSecret: "s",
	})

	require.NotNil(t, c.MDMClient)
	assert.Equal(t, "https://mdm.example.com/v1/devices/dev-1/policy", c.MDMClient.PolicyURL())
}

func TestContainer_SessionAcrossProcesses(t *testing.T) {
	ctx := context.Background()
	settings := &config.Settings{DeviceID: "dev-1"}
	c := newTestContainer(t, settings)

	err := c.WithLock(ctx, func(ctx context.Context) error {
		_, err := c.Lockdown.Start(ctx, domain.ConfigurationRequest{
			Name:            "Focus",
			DurationSeconds: 1800,
			KioskMode:       string(domain.KioskAutonomous),
			BlockedApps:     []string{"com.social.app"},
		})
		return err
	})
	require.NoError(t, err)
	assert.FileExists(t, adapterenforcement.ManifestPath(c.Home))

	status, err := c.CurrentStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateActive, status.State)
	assert.Equal(t, domain.KioskActive, status.KioskState)
	assert.Equal(t, "Focus", status.Name)

	// A second process sees the same session and can end it
	c.Close()
	next, err := NewContainer(ContainerOptions{Home: c.Home, Out: &bytes.Buffer{}, Settings: settings})
	require.NoError(t, err)
	defer next.Close()

	err = next.WithLock(ctx, func(ctx context.Context) error {
		assert.Equal(t, domain.StateActive, next.Lockdown.Status().State)
		_, err := next.Lockdown.End(ctx)
		return err
	})
	require.NoError(t, err)
	assert.NoFileExists(t, adapterenforcement.ManifestPath(next.Home))

	status, err = next.CurrentStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInactive, status.State)
}

func TestContainer_BlockedAppsSurviveRestore(t *testing.T) {
	ctx := context.Background()
	settings := &config.Settings{DeviceID: "dev-1"}
	home := t.TempDir()

	run := func(fn func(ctx context.Context, c *Container) error) {
		t.Helper()
		c, err := NewContainer(ContainerOptions{Home: home, Out: &bytes.Buffer{}, Settings: settings})
		require.NoError(t, err)
		defer c.Close()
		require.NoError(t, c.WithLock(ctx, func(ctx context.Context) error { return fn(ctx, c) }))
	}
	blocked := func() []string {
		t.Helper()
		var m adapterenforcement.Manifest
		require.NoError(t, fileutil.ReadJSON(adapterenforcement.ManifestPath(home), &m))
		return m.BlockedApps
	}

	run(func(ctx context.Context, c *Container) error {
		_, err := c.Lockdown.Start(ctx, domain.ConfigurationRequest{
			Name:            "Focus",
			DurationSeconds: 1800,
			KioskMode:       string(domain.KioskScreenTime),
		})
		return err
	})
	run(func(ctx context.Context, c *Container) error {
		return c.Lockdown.Kiosk().BlockApp(ctx, "com.games.x")
	})
	assert.Equal(t, []string{"com.games.x"}, blocked())

	run(func(ctx context.Context, c *Container) error {
		return c.Lockdown.Extend(ctx, 10*time.Minute)
	})
	assert.Equal(t, []string{"com.games.x"}, blocked())

	run(func(ctx context.Context, c *Container) error {
		if err := c.Lockdown.Pause(ctx); err != nil {
			return err
		}
		return c.Lockdown.Resume(ctx)
	})
	assert.Equal(t, []string{"com.games.x"}, blocked())
}

func TestContainer_WithLockFailsWhileHeld(t *testing.T) {
	c := newTestContainer(t, &config.Settings{DeviceID: "dev-1"})

	held, err := adapterlock.Acquire(c.Home)
	require.NoError(t, err)
	defer held.Release()

	called := false
	err = c.WithLock(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrProcessLock)
	assert.False(t, called)
}

func TestIsSettingsCommand(t *testing.T) {
	assert.True(t, isSettingsCommand("settings meta"))
	assert.True(t, isSettingsCommand("settings hash-token <token>"))
	assert.False(t, isSettingsCommand("session start"))
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		status domain.SessionStatus
		want   string
	}{
		{
			name:   "inactive",
			status: domain.SessionStatus{State: domain.StateInactive},
			want:   "○ inactive",
		},
		{
			name: "active with violations",
			status: domain.SessionStatus{
				State:           domain.StateActive,
				KioskState:      domain.KioskActive,
				SessionID:       "s-1",
				Name:            "Focus",
				Remaining:       12 * time.Minute,
				ViolationCount:  2,
				HighestSeverity: domain.SeverityHigh,
			},
			want: "● Focus 12m0s left · 2 violations (high)",
		},
		{
			name: "paused without enforcement",
			status: domain.SessionStatus{
				State:      domain.StatePaused,
				KioskState: domain.KioskInactive,
				SessionID:  "s-1",
				Name:       "Exam",
				Remaining:  90 * time.Second,
			},
			want: "◐ Exam 1m30s left (paused) · not enforced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusLine(tt.status))
		})
	}
}
