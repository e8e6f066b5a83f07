package ports

import "github.com/mapplock/mapplock/internal/domain"

// SoundPlayer plays alert sounds
type SoundPlayer interface {
	// PlayForSeverity alerts for a violation of the given severity
	PlayForSeverity(severity domain.Severity) error
}
