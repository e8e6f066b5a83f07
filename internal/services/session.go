package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// SessionService owns the lifecycle of the single current focus session.
// Every mutation, including timer ticks, is serialized on one mutex.
type SessionService struct {
	ledger    *ViolationLedger
	presenter ports.Presenter
	store     ports.SessionStore
	now       func() time.Time

	mu            sync.Mutex
	state         domain.SessionState
	current       *domain.Session
	lastEnded     *domain.Session
	lastTimestamp time.Time
}

// NewSessionService creates a new SessionService. presenter may be nil.
func NewSessionService(
	store ports.SessionStore,
	ledger *ViolationLedger,
	presenter ports.Presenter,
) *SessionService {
	return &SessionService{
		ledger:    ledger,
		presenter: presenter,
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		state:     domain.StateInactive,
	}
}

// Start validates the request and begins a new session.
// On any failure the state remains inactive.
func (s *SessionService) Start(ctx context.Context, req domain.ConfigurationRequest) (domain.Session, error) {
	s.mu.Lock()

	if s.state != domain.StateInactive {
		s.mu.Unlock()
		logging.Logger.Warn("Rejected start, session already running", "state", s.state)
		return domain.Session{}, domain.ErrAlreadyActive
	}

	cfg, err := domain.ValidateConfiguration(req)
	if err != nil {
		s.mu.Unlock()
		logging.Logger.Info("Rejected invalid session configuration", "error", err)
		return domain.Session{}, err
	}

	s.state = domain.StateStarting
	session := &domain.Session{
		ID:            uuid.New().String(),
		Configuration: cfg,
		StartTime:     s.now(),
		Violations:    []domain.Violation{},
	}

	if err := s.store.SaveCurrent(ctx, domain.CurrentSession{
		Session:    *session,
		State:      domain.StateActive,
		KioskState: domain.KioskInactive,
	}); err != nil {
		s.state = domain.StateInactive
		s.mu.Unlock()
		return domain.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.ledger.Open(session.ID)
	s.current = session
	s.lastTimestamp = session.StartTime
	s.state = domain.StateActive
	snapshot := cloneSession(session)
	status := s.statusLocked()
	s.mu.Unlock()

	logging.Logger.Info("Session started",
		"session_id", session.ID,
		"name", cfg.Name,
		"mode", cfg.Mode,
		"kiosk_mode", cfg.KioskMode,
		"duration", cfg.Duration)
	s.notify(status)
	return snapshot, nil
}

// Pause freezes elapsed-time accrual
func (s *SessionService) Pause(ctx context.Context) error {
	s.mu.Lock()

	if s.state != domain.StateActive {
		s.mu.Unlock()
		return domain.ErrNoActiveSession
	}

	now := s.now()
	s.current.PausedAt = &now
	if err := s.persistLocked(ctx, domain.StatePaused); err != nil {
		s.current.PausedAt = nil
		s.mu.Unlock()
		return err
	}
	s.state = domain.StatePaused
	status := s.statusLocked()
	s.mu.Unlock()

	logging.Logger.Info("Session paused", "session_id", status.SessionID)
	s.notify(status)
	return nil
}

// Resume continues elapsed-time accrual from where it was frozen
func (s *SessionService) Resume(ctx context.Context) error {
	s.mu.Lock()

	if s.state != domain.StatePaused {
		s.mu.Unlock()
		return domain.ErrSessionNotPaused
	}

	pausedAt := s.current.PausedAt
	prevPaused := s.current.PausedDuration
	s.foldPauseLocked()
	if err := s.persistLocked(ctx, domain.StateActive); err != nil {
		s.current.PausedAt = pausedAt
		s.current.PausedDuration = prevPaused
		s.mu.Unlock()
		return err
	}
	s.state = domain.StateActive
	status := s.statusLocked()
	s.mu.Unlock()

	logging.Logger.Info("Session resumed", "session_id", status.SessionID, "paused_total", s.pausedTotal())
	s.notify(status)
	return nil
}

// Extend increases the effective duration without touching elapsed time
func (s *SessionService) Extend(ctx context.Context, by time.Duration) error {
	if by <= 0 {
		return fmt.Errorf("%w: got %s", domain.ErrInvalidExtension, by)
	}

	s.mu.Lock()

	if !s.state.IsRunning() {
		s.mu.Unlock()
		return domain.ErrNoActiveSession
	}

	prevExtension := s.current.Extension
	prevReported := s.current.TimeLimitReported
	s.current.Extension += by
	if s.current.Remaining(s.now()) > 0 {
		s.current.TimeLimitReported = false
	}
	if err := s.persistLocked(ctx, s.state); err != nil {
		s.current.Extension = prevExtension
		s.current.TimeLimitReported = prevReported
		s.mu.Unlock()
		return err
	}
	status := s.statusLocked()
	s.mu.Unlock()

	logging.Logger.Info("Session extended", "session_id", status.SessionID, "by", by, "remaining", status.Remaining)
	s.notify(status)
	return nil
}

// End finishes the current session from active or paused. The ended session,
// with its frozen violations, is retained and returned. Persistence failures
// are logged and never keep the session running.
func (s *SessionService) End(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()

	if !s.state.IsRunning() {
		s.mu.Unlock()
		return domain.Session{}, domain.ErrNoActiveSession
	}

	s.state = domain.StateEnding
	s.foldPauseLocked()
	end := s.now()
	s.current.EndTime = &end
	s.ledger.Freeze(s.current.ID)
	s.current.Violations = s.ledger.Query(s.current.ID)

	ended := s.current
	// The ending marker lets the next Restore finish an interrupted archive
	// instead of bringing the session back.
	if err := s.store.SaveCurrent(ctx, domain.CurrentSession{Session: *ended, State: domain.StateEnding}); err != nil {
		logging.Logger.Error("Failed to mark session as ending", "error", err, "session_id", ended.ID)
	}
	if err := s.store.ArchiveSession(ctx, *ended); err != nil {
		logging.Logger.Error("Failed to archive ended session", "error", err, "session_id", ended.ID)
	}

	s.lastEnded = ended
	s.current = nil
	s.state = domain.StateInactive
	snapshot := cloneSession(ended)
	status := s.statusLocked()
	s.mu.Unlock()

	logging.Logger.Info("Session ended",
		"session_id", ended.ID,
		"elapsed", ended.Elapsed(end),
		"violations", len(snapshot.Violations))
	s.notify(status)
	return snapshot, nil
}

// ReportViolation records a violation against the current session with a
// monotonic timestamp. It is rejected when no session is running.
func (s *SessionService) ReportViolation(ctx context.Context, in domain.ViolationInput) (domain.Violation, error) {
	if err := in.Validate(); err != nil {
		return domain.Violation{}, err
	}

	s.mu.Lock()
	if !s.state.IsRunning() {
		s.mu.Unlock()
		logging.Logger.Warn("Rejected violation without active session", "type", in.Type)
		return domain.Violation{}, domain.ErrNoActiveSession
	}

	v, err := s.recordLocked(ctx, in)
	s.mu.Unlock()
	if err != nil {
		return domain.Violation{}, err
	}

	s.showViolation(v)
	return v, nil
}

// Tick raises a single time_limit violation once remaining time reaches zero
// while active. The session keeps running until End is called.
func (s *SessionService) Tick(ctx context.Context) (*domain.Violation, error) {
	s.mu.Lock()

	if s.state != domain.StateActive || s.current.TimeLimitReported || s.current.Remaining(s.now()) > 0 {
		s.mu.Unlock()
		return nil, nil
	}

	v, err := s.recordLocked(ctx, domain.ViolationInput{
		Type:     domain.ViolationTimeLimit,
		Severity: domain.SeverityHigh,
		Details:  "session time limit reached",
	})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.current.TimeLimitReported = true
	if err := s.persistLocked(ctx, s.state); err != nil {
		logging.Logger.Warn("Failed to persist time limit flag", "error", err)
	}
	s.mu.Unlock()

	logging.Logger.Info("Session time limit reached", "session_id", v.SessionID)
	s.showViolation(v)
	return &v, nil
}

// RunTicker calls Tick on every interval until ctx is cancelled
func (s *SessionService) RunTicker(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil {
				logging.Logger.Error("Session tick failed", "error", err)
			}
		}
	}
}

// Status returns a read-only snapshot of the current session
func (s *SessionService) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// State returns the current lifecycle state
func (s *SessionService) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the running session
func (s *SessionService) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.Session{}, false
	}
	return cloneSession(s.current), true
}

// LastEnded returns the most recently ended session, if any
func (s *SessionService) LastEnded() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastEnded == nil {
		return domain.Session{}, false
	}
	return cloneSession(s.lastEnded), true
}

// Restore reloads a running session persisted by a previous process
func (s *SessionService) Restore(ctx context.Context) (*domain.CurrentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateInactive {
		return nil, domain.ErrAlreadyActive
	}

	cur, err := s.store.LoadCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current session: %w", err)
	}
	if cur == nil {
		logging.Logger.Debug("No session to restore")
		return nil, nil
	}

	session := cur.Session
	if cur.State == domain.StateEnding || session.EndTime != nil {
		s.finishEndingLocked(ctx, session)
		return nil, nil
	}

	state := cur.State
	if !state.IsRunning() {
		state = domain.StateActive
	}
	if state == domain.StatePaused && session.PausedAt == nil {
		now := s.now()
		session.PausedAt = &now
	}
	if state == domain.StateActive && session.PausedAt != nil {
		state = domain.StatePaused
	}

	s.ledger.Load(session.ID, session.Violations, false)
	s.current = &session
	s.state = state
	s.lastTimestamp = session.StartTime
	if n := len(session.Violations); n > 0 {
		s.lastTimestamp = session.Violations[n-1].Timestamp
	}

	logging.Logger.Info("Session restored",
		"session_id", session.ID,
		"state", state,
		"violations", len(session.Violations))

	restored := *cur
	restored.Session = cloneSession(&session)
	restored.State = state
	return &restored, nil
}

// finishEndingLocked completes the archive of a session a previous process
// ended. The session is never resurrected; a failed archive is retried on the
// next Restore.
func (s *SessionService) finishEndingLocked(ctx context.Context, session domain.Session) {
	if session.EndTime == nil {
		end := s.now()
		session.EndTime = &end
	}
	s.ledger.Load(session.ID, session.Violations, true)
	s.lastEnded = &session

	if err := s.store.ArchiveSession(ctx, session); err != nil {
		logging.Logger.Error("Failed to archive interrupted session", "error", err, "session_id", session.ID)
		return
	}
	logging.Logger.Info("Archived session ended by a previous process", "session_id", session.ID)
}

func (s *SessionService) recordLocked(ctx context.Context, in domain.ViolationInput) (domain.Violation, error) {
	ts := s.now()
	if ts.Before(s.lastTimestamp) {
		ts = s.lastTimestamp
	}

	v := domain.Violation{
		ID:          uuid.New().String(),
		SessionID:   s.current.ID,
		Type:        in.Type,
		Severity:    in.Severity,
		Timestamp:   ts,
		Details:     in.Details,
		AppBundleID: in.AppBundleID,
	}
	if err := v.Validate(); err != nil {
		return domain.Violation{}, err
	}

	if err := s.store.AppendViolation(ctx, v); err != nil {
		return domain.Violation{}, fmt.Errorf("failed to persist violation: %w", err)
	}
	if err := s.ledger.Record(v); err != nil {
		return domain.Violation{}, fmt.Errorf("failed to record violation: %w", err)
	}

	s.current.Violations = append(s.current.Violations, v)
	s.lastTimestamp = ts

	logging.Logger.Info("Violation recorded",
		"session_id", v.SessionID,
		"type", v.Type,
		"severity", v.Severity,
		"app", v.AppBundleID)
	return v, nil
}

func (s *SessionService) persistLocked(ctx context.Context, state domain.SessionState) error {
	if err := s.store.SaveCurrent(ctx, domain.CurrentSession{
		Session: *s.current,
		State:   state,
	}); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *SessionService) foldPauseLocked() {
	if s.current.PausedAt == nil {
		return
	}
	s.current.PausedDuration += s.now().Sub(*s.current.PausedAt)
	s.current.PausedAt = nil
}

func (s *SessionService) pausedTotal() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return s.current.PausedDuration
}

func (s *SessionService) statusLocked() domain.SessionStatus {
	return domain.NewSessionStatus(s.state, s.current, s.now())
}

func (s *SessionService) notify(status domain.SessionStatus) {
	if s.presenter != nil {
		s.presenter.StateChanged(status)
	}
}

func (s *SessionService) showViolation(v domain.Violation) {
	if s.presenter != nil {
		s.presenter.ShowViolation(v)
	}
}

func cloneSession(src *domain.Session) domain.Session {
	dst := *src
	dst.Violations = make([]domain.Violation, len(src.Violations))
	copy(dst.Violations, src.Violations)
	return dst
}
