package ports

import (
	"context"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
)

// SessionReader reads persisted sessions
type SessionReader interface {
	// LoadCurrent returns the running session, or nil when none is persisted
	LoadCurrent(ctx context.Context) (*domain.CurrentSession, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	// List returns sessions started at or after since, oldest first
	List(ctx context.Context, since time.Time) ([]domain.Session, error)
}

// SessionWriter persists session lifecycle changes
type SessionWriter interface {
	// SaveCurrent upserts the running session. An empty KioskState keeps the stored one.
	SaveCurrent(ctx context.Context, current domain.CurrentSession) error
	ArchiveSession(ctx context.Context, session domain.Session) error
	Purge(ctx context.Context) error
}

// ViolationWriter appends violations to a persisted session
type ViolationWriter interface {
	AppendViolation(ctx context.Context, violation domain.Violation) error
}

// KioskStateUpdater records the enforcement state of a session
type KioskStateUpdater interface {
	UpdateKioskState(ctx context.Context, sessionID string, state domain.KioskState) error
}

// SessionStore is what the session state machine needs from storage
type SessionStore interface {
	SessionReader
	SessionWriter
	ViolationWriter
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionStore
	KioskStateUpdater
	Close() error
}
