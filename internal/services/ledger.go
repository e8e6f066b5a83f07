package services

import (
	"fmt"
	"sync"

	"github.com/mapplock/mapplock/internal/domain"
)

// ViolationLedger is the append-only record of violations per session.
// Entries are ordered by timestamp, ties by insertion, and never change once recorded.
type ViolationLedger struct {
	mu      sync.RWMutex
	entries map[string]*ledgerEntry
}

type ledgerEntry struct {
	violations []domain.Violation
	ids        map[string]struct{}
	frozen     bool
}

// NewViolationLedger creates an empty ledger
func NewViolationLedger() *ViolationLedger {
	return &ViolationLedger{entries: make(map[string]*ledgerEntry)}
}

// Open starts accepting violations for a session
func (l *ViolationLedger) Open(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[sessionID]; !ok {
		l.entries[sessionID] = &ledgerEntry{ids: make(map[string]struct{})}
	}
}

// Load replaces a session's history with persisted violations
func (l *ViolationLedger) Load(sessionID string, violations []domain.Violation, frozen bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := &ledgerEntry{
		violations: make([]domain.Violation, len(violations)),
		ids:        make(map[string]struct{}, len(violations)),
		frozen:     frozen,
	}
	copy(entry.violations, violations)
	for _, v := range violations {
		entry.ids[v.ID] = struct{}{}
	}
	l.entries[sessionID] = entry
}

// Record appends a violation to its session
func (l *ViolationLedger) Record(v domain.Violation) error {
	if err := v.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[v.SessionID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSession, v.SessionID)
	}
	if entry.frozen {
		return fmt.Errorf("%w: %s", domain.ErrSessionFrozen, v.SessionID)
	}
	if _, dup := entry.ids[v.ID]; dup {
		return fmt.Errorf("%w: duplicate id %s", domain.ErrInvalidViolation, v.ID)
	}
	if n := len(entry.violations); n > 0 && v.Timestamp.Before(entry.violations[n-1].Timestamp) {
		return fmt.Errorf("%w: timestamp %s precedes last recorded violation",
			domain.ErrInvalidViolation, v.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"))
	}

	entry.violations = append(entry.violations, v)
	entry.ids[v.ID] = struct{}{}
	return nil
}

// Query returns a copy of a session's violations in order
func (l *ViolationLedger) Query(sessionID string) []domain.Violation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.entries[sessionID]
	if !ok {
		return nil
	}
	out := make([]domain.Violation, len(entry.violations))
	copy(out, entry.violations)
	return out
}

// HighestSeverity returns the most severe violation of a session, or ""
func (l *ViolationLedger) HighestSeverity(sessionID string) domain.Severity {
	return domain.HighestSeverity(l.Query(sessionID))
}

// CountBySeverity counts a session's violations per severity
func (l *ViolationLedger) CountBySeverity(sessionID string) map[domain.Severity]int {
	counts := make(map[domain.Severity]int, len(domain.Severities))
	for _, s := range domain.Severities {
		counts[s] = 0
	}
	for _, v := range l.Query(sessionID) {
		counts[v.Severity]++
	}
	return counts
}

// CountByType counts a session's violations per type
func (l *ViolationLedger) CountByType(sessionID string) map[domain.ViolationType]int {
	counts := make(map[domain.ViolationType]int)
	for _, v := range l.Query(sessionID) {
		counts[v.Type]++
	}
	return counts
}

// Freeze stops a session from accepting further violations
func (l *ViolationLedger) Freeze(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.entries[sessionID]; ok {
		entry.frozen = true
	}
}

// IsFrozen reports whether the session no longer accepts violations
func (l *ViolationLedger) IsFrozen(sessionID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.entries[sessionID]
	return ok && entry.frozen
}
