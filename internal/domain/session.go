package domain

import (
	"fmt"
	"time"
)

// SessionState represents the lifecycle state of a focus session
type SessionState string

const (
	StateInactive SessionState = "inactive"
	StateStarting SessionState = "starting"
	StateActive   SessionState = "active"
	StatePaused   SessionState = "paused"
	StateEnding   SessionState = "ending"
)

// IsRunning reports whether a session is current (active or paused)
func (s SessionState) IsRunning() bool {
	return s == StateActive || s == StatePaused
}

// SessionMode describes what the session is being used for
type SessionMode string

const (
	ModeFocus        SessionMode = "focus"
	ModeStudy        SessionMode = "study"
	ModeWork         SessionMode = "work"
	ModeExam         SessionMode = "exam"
	ModeKiosk        SessionMode = "kiosk"
	ModePresentation SessionMode = "presentation"
	ModeRetail       SessionMode = "retail"
	ModeHealthcare   SessionMode = "healthcare"
	ModeCustom       SessionMode = "custom"
)

var sessionModes = []SessionMode{
	ModeFocus, ModeStudy, ModeWork, ModeExam, ModeKiosk,
	ModePresentation, ModeRetail, ModeHealthcare, ModeCustom,
}

// ParseSessionMode converts a wire value into a SessionMode
func ParseSessionMode(s string) (SessionMode, error) {
	for _, m := range sessionModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// RestrictionLevel is an ordered strictness tier
type RestrictionLevel string

const (
	RestrictionNone     RestrictionLevel = "none"
	RestrictionMinimal  RestrictionLevel = "minimal"
	RestrictionBasic    RestrictionLevel = "basic"
	RestrictionStandard RestrictionLevel = "standard"
	RestrictionStrict   RestrictionLevel = "strict"
	RestrictionMaximum  RestrictionLevel = "maximum"
)

var restrictionLevels = []RestrictionLevel{
	RestrictionNone, RestrictionMinimal, RestrictionBasic,
	RestrictionStandard, RestrictionStrict, RestrictionMaximum,
}

// Rank returns the position of the level in the strictness order, or -1 if unknown
func (r RestrictionLevel) Rank() int {
	for i, l := range restrictionLevels {
		if l == r {
			return i
		}
	}
	return -1
}

// AtLeast reports whether r is as strict as other
func (r RestrictionLevel) AtLeast(other RestrictionLevel) bool {
	return r.Rank() >= other.Rank()
}

// ParseRestrictionLevel converts a wire value into a RestrictionLevel
func ParseRestrictionLevel(s string) (RestrictionLevel, error) {
	if l := RestrictionLevel(s); l.Rank() >= 0 {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRestrictionLevel, s)
}

// Session is a bounded period during which a restriction policy is enforced.
// It is mutated only by the session state machine.
type Session struct {
	ID                string               `json:"id"`
	Configuration     SessionConfiguration `json:"configuration"`
	StartTime         time.Time            `json:"start_time"`
	EndTime           *time.Time           `json:"end_time,omitempty"`
	PausedAt          *time.Time           `json:"paused_at,omitempty"`
	PausedDuration    time.Duration        `json:"paused_duration"`
	Extension         time.Duration        `json:"extension"`
	TimeLimitReported bool                 `json:"time_limit_reported"`
	Violations        []Violation          `json:"violations"`
}

// EffectiveDuration is the configured duration plus any extensions
func (s *Session) EffectiveDuration() time.Duration {
	return s.Configuration.Duration + s.Extension
}

// Elapsed returns the time the session has been running, excluding paused intervals.
// Time stops at the pause instant while paused and at the end instant once ended.
func (s *Session) Elapsed(now time.Time) time.Duration {
	ref := now
	if s.EndTime != nil && s.EndTime.Before(ref) {
		ref = *s.EndTime
	}
	if s.PausedAt != nil && s.PausedAt.Before(ref) {
		ref = *s.PausedAt
	}

	elapsed := ref.Sub(s.StartTime) - s.PausedDuration
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns the effective duration minus elapsed time, floored at zero
func (s *Session) Remaining(now time.Time) time.Duration {
	remaining := s.EffectiveDuration() - s.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NextBreak returns the time until the next scheduled break, if breaks are configured
func (s *Session) NextBreak(now time.Time) (time.Duration, bool) {
	b := s.Configuration.Breaks
	if b == nil || b.Interval <= 0 {
		return 0, false
	}
	elapsed := s.Elapsed(now)
	next := b.Interval - elapsed%b.Interval
	if elapsed+next >= s.EffectiveDuration() {
		return 0, false
	}
	return next, true
}

// SessionStatus is a read-only snapshot for presentation consumers
type SessionStatus struct {
	State            SessionState          `json:"state"`
	KioskState       KioskState            `json:"kiosk_state"`
	SessionID        string                `json:"session_id,omitempty"`
	Name             string                `json:"name,omitempty"`
	Mode             SessionMode           `json:"mode,omitempty"`
	KioskMode        KioskMode             `json:"kiosk_mode,omitempty"`
	RestrictionLevel RestrictionLevel      `json:"restriction_level,omitempty"`
	StartTime        *time.Time            `json:"start_time,omitempty"`
	Elapsed          time.Duration         `json:"elapsed"`
	Remaining        time.Duration         `json:"remaining"`
	NextBreak        *time.Duration        `json:"next_break,omitempty"`
	ViolationCount   int                   `json:"violation_count"`
	HighestSeverity  Severity              `json:"highest_severity,omitempty"`
	Violations       []Violation           `json:"violations,omitempty"`
	Configuration    *SessionConfiguration `json:"configuration,omitempty"`
}

// NewSessionStatus builds a status snapshot from a session at the given instant
func NewSessionStatus(state SessionState, session *Session, now time.Time) SessionStatus {
	status := SessionStatus{State: state}
	if session == nil {
		return status
	}

	start := session.StartTime
	cfg := session.Configuration
	violations := make([]Violation, len(session.Violations))
	copy(violations, session.Violations)

	status.SessionID = session.ID
	status.Name = cfg.Name
	status.Mode = cfg.Mode
	status.KioskMode = cfg.KioskMode
	status.RestrictionLevel = cfg.RestrictionLevel
	status.StartTime = &start
	status.Elapsed = session.Elapsed(now)
	status.Remaining = session.Remaining(now)
	status.ViolationCount = len(violations)
	status.HighestSeverity = HighestSeverity(violations)
	status.Violations = violations
	status.Configuration = &cfg
	if next, ok := session.NextBreak(now); ok {
		status.NextBreak = &next
	}
	return status
}

// CurrentSession is the persisted form of the running session, sufficient to
// rebuild elapsed time and violation history after a restart
type CurrentSession struct {
	Session    Session
	State      SessionState
	KioskState KioskState
}
