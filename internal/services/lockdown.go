package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
)

// LockdownService drives the session and kiosk state machines together.
// The kiosk is only ever active while the session is running.
type LockdownService struct {
	kiosk    *KioskService
	sessions *SessionService
}

// NewLockdownService creates a new LockdownService
func NewLockdownService(sessions *SessionService, kiosk *KioskService) *LockdownService {
	return &LockdownService{
		kiosk:    kiosk,
		sessions: sessions,
	}
}

// Sessions returns the session state machine
func (l *LockdownService) Sessions() *SessionService {
	return l.sessions
}

// Kiosk returns the kiosk state machine
func (l *LockdownService) Kiosk() *KioskService {
	return l.kiosk
}

// Start begins a session and then engages enforcement for it.
// When enforcement fails the session stays active and the enforcement error
// is returned alongside it.
func (l *LockdownService) Start(ctx context.Context, req domain.ConfigurationRequest) (domain.Session, error) {
	session, err := l.sessions.Start(ctx, req)
	if err != nil {
		return domain.Session{}, err
	}

	if err := l.kiosk.StartKioskMode(ctx, session.ID, session.Configuration); err != nil {
		logging.Logger.Warn("Session running without enforcement", "session_id", session.ID, "error", err)
		return session, fmt.Errorf("session %s started without enforcement: %w", session.ID, err)
	}
	return session, nil
}

// RetryKiosk re-attempts enforcement for the running session
func (l *LockdownService) RetryKiosk(ctx context.Context) error {
	session, ok := l.sessions.Current()
	if !ok {
		return domain.ErrNoActiveSession
	}
	if l.kiosk.State() != domain.KioskInactive {
		return domain.ErrAlreadyActive
	}
	if err := l.kiosk.StartKioskMode(ctx, session.ID, session.Configuration); err != nil {
		return err
	}
	if l.sessions.State() == domain.StatePaused {
		return l.kiosk.Pause(ctx)
	}
	return nil
}

// Pause pauses the session and relaxes enforcement
func (l *LockdownService) Pause(ctx context.Context) error {
	if err := l.sessions.Pause(ctx); err != nil {
		return err
	}
	if l.kiosk.State() != domain.KioskActive {
		return nil
	}
	if err := l.kiosk.Pause(ctx); err != nil {
		logging.Logger.Warn("Failed to pause enforcement", "error", err)
		return err
	}
	return nil
}

// Resume resumes the session and re-engages enforcement
func (l *LockdownService) Resume(ctx context.Context) error {
	if err := l.sessions.Resume(ctx); err != nil {
		return err
	}
	if l.kiosk.State() != domain.KioskPaused {
		return nil
	}
	if err := l.kiosk.Resume(ctx); err != nil {
		logging.Logger.Warn("Failed to resume enforcement", "error", err)
		return err
	}
	return nil
}

// Extend lengthens the running session
func (l *LockdownService) Extend(ctx context.Context, by time.Duration) error {
	return l.sessions.Extend(ctx, by)
}

// End tears enforcement down and then ends the session. The session always
// ends; an enforcement teardown failure is returned alongside the ended session.
func (l *LockdownService) End(ctx context.Context) (domain.Session, error) {
	if !l.sessions.State().IsRunning() {
		return domain.Session{}, domain.ErrNoActiveSession
	}

	var teardownErr error
	if state := l.kiosk.State(); state == domain.KioskActive || state == domain.KioskPaused {
		teardownErr = l.kiosk.End(ctx)
	}

	ended, err := l.sessions.End(ctx)
	if err != nil {
		return domain.Session{}, errors.Join(err, teardownErr)
	}
	return ended, teardownErr
}

// EmergencyOverride lifts every active restriction immediately
func (l *LockdownService) EmergencyOverride(ctx context.Context, reason string) (domain.Session, error) {
	session, _ := l.sessions.Current()
	logging.Critical(ctx, "Emergency override requested",
		"session_id", session.ID,
		"reason", reason,
		"session_state", l.sessions.State(),
		"kiosk_state", l.kiosk.State())

	if !l.sessions.State().IsRunning() {
		if l.kiosk.State() != domain.KioskInactive {
			return domain.Session{}, l.kiosk.End(ctx)
		}
		return domain.Session{}, nil
	}
	return l.End(ctx)
}

// Status returns the combined session and kiosk snapshot
func (l *LockdownService) Status() domain.SessionStatus {
	status := l.sessions.Status()
	status.KioskState = l.kiosk.State()
	return status
}

// Restore reloads a persisted session and re-engages enforcement if it was
// active when the previous process stopped
func (l *LockdownService) Restore(ctx context.Context) error {
	restored, err := l.sessions.Restore(ctx)
	if err != nil || restored == nil {
		return err
	}

	switch restored.KioskState {
	case domain.KioskActive, domain.KioskPaused, domain.KioskStarting:
		if err := l.RetryKiosk(ctx); err != nil {
			logging.Logger.Warn("Failed to re-engage enforcement after restore", "error", err)
			return err
		}
	}
	return nil
}
