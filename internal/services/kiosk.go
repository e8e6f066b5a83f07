package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// KioskService drives the enforcement layer for the current session.
// It never outlives the session it was started for.
type KioskService struct {
	monitorInterval time.Duration
	provider        ports.StrategyProvider
	sink            ViolationSink
	source          ports.ActivitySource
	store           ports.KioskStateUpdater
	supervision     ports.SupervisionChecker

	mu        sync.Mutex
	state     domain.KioskState
	sessionID string
	strategy  ports.EnforcementStrategy
	monitor   *ViolationMonitor
}

// NewKioskService creates a new KioskService. source may be nil, in which
// case no violation monitor runs.
func NewKioskService(
	provider ports.StrategyProvider,
	supervision ports.SupervisionChecker,
	source ports.ActivitySource,
	sink ViolationSink,
	store ports.KioskStateUpdater,
	monitorInterval time.Duration,
) *KioskService {
	return &KioskService{
		monitorInterval: monitorInterval,
		provider:        provider,
		sink:            sink,
		source:          source,
		store:           store,
		supervision:     supervision,
		state:           domain.KioskInactive,
	}
}

// StartKioskMode engages the strategy for cfg.KioskMode.
// Failures leave the kiosk inactive.
func (k *KioskService) StartKioskMode(ctx context.Context, sessionID string, cfg domain.SessionConfiguration) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != domain.KioskInactive {
		return domain.ErrAlreadyActive
	}

	if cfg.KioskMode.RequiresSupervision() {
		supervised, err := k.supervision.IsSupervised(ctx)
		if err != nil {
			return fmt.Errorf("%w: failed to check supervision: %v", domain.ErrEnforcement, err)
		}
		if !supervised {
			logging.Logger.Warn("Kiosk mode requires a supervised device", "kiosk_mode", cfg.KioskMode)
			return fmt.Errorf("%w: %s", domain.ErrDeviceNotSupervised, cfg.KioskMode)
		}
	}

	strategy, err := k.provider.Strategy(cfg.KioskMode)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEnforcement, err)
	}

	k.state = domain.KioskStarting
	if err := strategy.Start(ctx, sessionID, cfg); err != nil {
		k.state = domain.KioskInactive
		logging.Logger.Error("Failed to start enforcement", "error", err, "kiosk_mode", cfg.KioskMode)
		return fmt.Errorf("%w: failed to start %s: %v", domain.ErrEnforcement, cfg.KioskMode, err)
	}

	k.strategy = strategy
	k.sessionID = sessionID
	if k.source != nil && k.sink != nil {
		k.monitor = NewViolationMonitor(k.source, k.sink, cfg, k.monitorInterval)
		// The monitor is bound to the kiosk lifetime, not to the caller's request
		k.monitor.Start(context.WithoutCancel(ctx))
	}
	k.state = domain.KioskActive
	k.persistLocked(ctx)

	logging.Logger.Info("Kiosk mode started",
		"session_id", sessionID,
		"kiosk_mode", cfg.KioskMode,
		"restriction_level", cfg.RestrictionLevel)
	return nil
}

// Pause relaxes enforcement while the session is paused
func (k *KioskService) Pause(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != domain.KioskActive {
		return domain.ErrNotActive
	}
	if err := k.strategy.Pause(ctx); err != nil {
		return fmt.Errorf("%w: failed to pause: %v", domain.ErrEnforcement, err)
	}
	if k.monitor != nil {
		k.monitor.Pause()
	}
	k.state = domain.KioskPaused
	k.persistLocked(ctx)

	logging.Logger.Info("Kiosk mode paused", "session_id", k.sessionID)
	return nil
}

// Resume re-engages enforcement
func (k *KioskService) Resume(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != domain.KioskPaused {
		return domain.ErrNotPaused
	}
	if err := k.strategy.Resume(ctx); err != nil {
		return fmt.Errorf("%w: failed to resume: %v", domain.ErrEnforcement, err)
	}
	if k.monitor != nil {
		k.monitor.Resume()
	}
	k.state = domain.KioskActive
	k.persistLocked(ctx)

	logging.Logger.Info("Kiosk mode resumed", "session_id", k.sessionID)
	return nil
}

// End tears enforcement down from active or paused. The kiosk always
// reaches inactive; teardown failures are returned as ErrEnforcement.
func (k *KioskService) End(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != domain.KioskActive && k.state != domain.KioskPaused {
		return domain.ErrNotActive
	}

	k.state = domain.KioskEnding
	if k.monitor != nil {
		k.monitor.Stop()
	}

	var errs []error
	if err := k.strategy.End(ctx); err != nil {
		errs = append(errs, err)
	}

	sessionID := k.sessionID
	k.state = domain.KioskInactive
	k.persistLocked(ctx)
	k.strategy = nil
	k.monitor = nil
	k.sessionID = ""

	if err := errors.Join(errs...); err != nil {
		logging.Logger.Error("Enforcement teardown failed", "error", err, "session_id", sessionID)
		return fmt.Errorf("%w: teardown failed: %v", domain.ErrEnforcement, err)
	}

	logging.Logger.Info("Kiosk mode ended", "session_id", sessionID)
	return nil
}

// BlockApp blocks one app, when the active strategy supports it
func (k *KioskService) BlockApp(ctx context.Context, bundleID string) error {
	blocker, err := k.blocker()
	if err != nil {
		return err
	}
	if err := blocker.BlockApp(ctx, bundleID); err != nil {
		return fmt.Errorf("%w: failed to block %s: %v", domain.ErrEnforcement, bundleID, err)
	}
	logging.Logger.Info("App blocked", "bundle_id", bundleID)
	return nil
}

// UnblockApp lifts a block placed by BlockApp
func (k *KioskService) UnblockApp(ctx context.Context, bundleID string) error {
	blocker, err := k.blocker()
	if err != nil {
		return err
	}
	if err := blocker.UnblockApp(ctx, bundleID); err != nil {
		return fmt.Errorf("%w: failed to unblock %s: %v", domain.ErrEnforcement, bundleID, err)
	}
	logging.Logger.Info("App unblocked", "bundle_id", bundleID)
	return nil
}

// State returns the current kiosk state
func (k *KioskService) State() domain.KioskState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// CheckNow runs one monitor poll immediately. It returns 0 when no monitor runs.
func (k *KioskService) CheckNow(ctx context.Context) int {
	k.mu.Lock()
	monitor := k.monitor
	active := k.state == domain.KioskActive
	k.mu.Unlock()

	if monitor == nil || !active {
		return 0
	}
	return monitor.CheckOnce(ctx)
}

func (k *KioskService) blocker() (ports.AppBlocker, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != domain.KioskActive {
		return nil, domain.ErrNotActive
	}
	blocker, ok := k.strategy.(ports.AppBlocker)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot block individual apps", domain.ErrOperationNotSupported, k.strategy.Mode())
	}
	return blocker, nil
}

func (k *KioskService) persistLocked(ctx context.Context) {
	if k.store == nil || k.sessionID == "" {
		return
	}
	if err := k.store.UpdateKioskState(ctx, k.sessionID, k.state); err != nil {
		logging.Logger.Warn("Failed to persist kiosk state", "error", err, "state", k.state)
	}
}
