package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	adapterdevice "github.com/mapplock/mapplock/internal/adapters/device"
	adapterenforcement "github.com/mapplock/mapplock/internal/adapters/enforcement"
	adapterlock "github.com/mapplock/mapplock/internal/adapters/lock"
	adaptermdm "github.com/mapplock/mapplock/internal/adapters/mdm"
	adapterpolicy "github.com/mapplock/mapplock/internal/adapters/policy"
	adaptersound "github.com/mapplock/mapplock/internal/adapters/sound"
	adapterstorage "github.com/mapplock/mapplock/internal/adapters/storage"
	"github.com/mapplock/mapplock/internal/config"
	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
	"github.com/mapplock/mapplock/internal/services"
)

// ContainerOptions configures NewContainer
type ContainerOptions struct {
	Home     string
	Out      io.Writer
	Serve    bool
	Settings *config.Settings
	Version  string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	Compliance *services.ComplianceService
	Dispatcher *services.Dispatcher
	Lockdown   *services.LockdownService
	Reports    *services.ReportService

	// Adapters
	Activity  *adapterdevice.ActivityFeed
	Certs     *adapterdevice.CertificateStore
	MDMClient *adaptermdm.Client
	Policies  *adapterpolicy.TOMLStore
	Store     ports.SessionRepository

	DeviceID string
	Home     string
	Settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	deviceID, err := ensureDeviceID(opts.Home, settings)
	if err != nil {
		return nil, err
	}

	repo, err := adapterstorage.NewSQLiteRepositoryForPath(opts.Home)
	if err != nil {
		return nil, err
	}

	auth := services.NewAuthenticator(settings.SharedSecret, settings.AdminTokenHash, settings.AdminTOTPSecret)
	snapshots := adapterdevice.NewFileSnapshotProvider(opts.Home)
	certs := adapterdevice.NewCertificateStore(opts.Home)
	policies := adapterpolicy.NewTOMLStore(opts.Home)
	activity := adapterdevice.NewActivityFeed(opts.Home)

	// Typed nils must not leak into interface fields
	var (
		sink    ports.ReportSink
		fetcher ports.PolicyFetcher
		client  *adaptermdm.Client
	)
	policyURL := settings.PolicyURL
	if settings.MDMServerURL != "" {
		client, err = adaptermdm.NewClient(settings.MDMServerURL, deviceID, auth.Sign)
		if err != nil {
			repo.Close()
			return nil, err
		}
		sink, fetcher = client, client
		if policyURL == "" {
			policyURL = client.PolicyURL()
		}
	}

	var (
		presenter ports.Presenter
		source    ports.ActivitySource
	)
	if opts.Serve {
		var player ports.SoundPlayer
		if settings.AlertSoundEnabled() {
			player = adaptersound.NewPlayer(opts.Out)
		}
		presenter = newConsolePresenter(opts.Out, player)
		source = activity
	}

	sessions := services.NewSessionService(repo, services.NewViolationLedger(), presenter)
	kiosk := services.NewKioskService(
		adapterenforcement.NewProvider(opts.Home),
		snapshots,
		source,
		sessions,
		repo,
		settings.MonitorInterval(),
	)
	lockdown := services.NewLockdownService(sessions, kiosk)
	compliance := services.NewComplianceService(deviceID, snapshots, policies, sessions, sink, 0)
	reports := services.NewReportService(deviceID, repo, sessions, sink, opts.Version)

	dispatcher := services.NewDispatcher(services.DispatcherDeps{
		Auth:         auth,
		Certificates: certs,
		Compliance:   compliance,
		Fetcher:      fetcher,
		Lockdown:     lockdown,
		Policies:     policies,
		PolicyURL:    policyURL,
		Reports:      reports,
		Wiper:        adapterdevice.NewWiper(repo, adapterenforcement.ManifestPath(opts.Home), certs),
	})

	return &Container{
		Compliance: compliance,
		Dispatcher: dispatcher,
		Lockdown:   lockdown,
		Reports:    reports,
		Activity:   activity,
		Certs:      certs,
		MDMClient:  client,
		Policies:   policies,
		Store:      repo,
		DeviceID:   deviceID,
		Home:       opts.Home,
		Settings:   settings,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// WithLock runs fn holding the process lock, after the persisted session has
// been restored into memory. Enforcement that cannot be re-engaged is logged
// and does not block fn.
func (c *Container) WithLock(ctx context.Context, fn func(ctx context.Context) error) error {
	lk, err := adapterlock.Acquire(c.Home)
	if err != nil {
		return err
	}
	defer lk.Release()

	if err := c.Restore(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

// Restore loads the persisted session into the services
func (c *Container) Restore(ctx context.Context) error {
	if err := c.Lockdown.Restore(ctx); err != nil {
		if domain.IsEnforcementError(err) || domain.IsStateError(err) {
			logging.Logger.Warn("Restored session without enforcement", "error", err)
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}

// CurrentStatus reads the persisted session without taking the process lock
func (c *Container) CurrentStatus(ctx context.Context) (domain.SessionStatus, error) {
	cur, err := c.Store.LoadCurrent(ctx)
	if err != nil {
		return domain.SessionStatus{}, fmt.Errorf("failed to load current session: %w", err)
	}
	if cur == nil {
		return domain.SessionStatus{State: domain.StateInactive, KioskState: domain.KioskInactive}, nil
	}
	status := domain.NewSessionStatus(cur.State, &cur.Session, nowUTC())
	status.KioskState = cur.KioskState
	return status, nil
}

// ensureDeviceID assigns and persists a device id on first use
func ensureDeviceID(home string, settings *config.Settings) (string, error) {
	if settings.DeviceID != "" {
		return settings.DeviceID, nil
	}

	settings.DeviceID = uuid.NewString()
	path := filepath.Join(home, config.SettingsFile)
	if err := config.SaveSettingsTo(path, settings); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	logging.Logger.Info("Assigned device id", "device_id", settings.DeviceID)
	return settings.DeviceID, nil
}

// RestoreSessions loads the persisted session for reading only. Enforcement
// is left untouched and no lock is taken.
func (c *Container) RestoreSessions(ctx context.Context) error {
	if _, err := c.Lockdown.Sessions().Restore(ctx); err != nil && !domain.IsStateError(err) {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	return nil
}
