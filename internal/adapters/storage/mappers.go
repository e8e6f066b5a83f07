package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel, violations []ViolationModel) (domain.Session, error) {
	var cfg domain.SessionConfiguration
	if err := json.Unmarshal([]byte(m.Configuration), &cfg); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode configuration of session %s: %w", m.ID, err)
	}

	session := domain.Session{
		Configuration:     cfg,
		EndTime:           utcPtr(m.EndTime),
		Extension:         time.Duration(m.ExtensionNanos),
		ID:                m.ID,
		PausedAt:          utcPtr(m.PausedAt),
		PausedDuration:    time.Duration(m.PausedNanos),
		StartTime:         m.StartTime.UTC(),
		TimeLimitReported: m.TimeLimitReported,
		Violations:        make([]domain.Violation, 0, len(violations)),
	}
	for _, v := range violations {
		session.Violations = append(session.Violations, violationModelToDomain(v))
	}
	return session, nil
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session, state domain.SessionState, kiosk domain.KioskState, current bool) (SessionModel, error) {
	cfg, err := json.Marshal(s.Configuration)
	if err != nil {
		return SessionModel{}, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return SessionModel{
		Configuration:     string(cfg),
		EndTime:           s.EndTime,
		ExtensionNanos:    int64(s.Extension),
		ID:                s.ID,
		IsCurrent:         current,
		KioskMode:         string(s.Configuration.KioskMode),
		KioskState:        string(kiosk),
		Mode:              string(s.Configuration.Mode),
		Name:              s.Configuration.Name,
		PausedAt:          s.PausedAt,
		PausedNanos:       int64(s.PausedDuration),
		StartTime:         s.StartTime,
		State:             string(state),
		TimeLimitReported: s.TimeLimitReported,
	}, nil
}

// violationModelToDomain converts a ViolationModel (GORM) to domain.Violation
func violationModelToDomain(m ViolationModel) domain.Violation {
	return domain.Violation{
		AppBundleID: m.AppBundleID,
		Details:     m.Details,
		ID:          m.ID,
		SessionID:   m.SessionID,
		Severity:    domain.Severity(m.Severity),
		Timestamp:   m.Timestamp.UTC(),
		Type:        domain.ViolationType(m.Type),
	}
}

// domainToViolationModel converts a domain.Violation to ViolationModel (GORM)
func domainToViolationModel(v domain.Violation) ViolationModel {
	return ViolationModel{
		AppBundleID: v.AppBundleID,
		Details:     v.Details,
		ID:          v.ID,
		SessionID:   v.SessionID,
		Severity:    string(v.Severity),
		Timestamp:   v.Timestamp,
		Type:        string(v.Type),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
