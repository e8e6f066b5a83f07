package ports

import (
	"context"

	"github.com/mapplock/mapplock/internal/domain"
)

// SnapshotProvider reports the observed device state
type SnapshotProvider interface {
	CurrentSnapshot(ctx context.Context) (domain.DeviceSnapshot, error)
}

// SupervisionChecker reports whether the device is under supervision
type SupervisionChecker interface {
	IsSupervised(ctx context.Context) (bool, error)
}

// ActivitySource yields device activity observed since the previous poll
type ActivitySource interface {
	Poll(ctx context.Context) ([]domain.ActivityEvent, error)
}

// CertificateInstaller installs trust artifacts
type CertificateInstaller interface {
	InstallCertificate(ctx context.Context, name string, pemData []byte) error
}

// DeviceWiper erases local device data
type DeviceWiper interface {
	Wipe(ctx context.Context) error
}

// Presenter receives state changes for display
type Presenter interface {
	// ShowViolation is called for every recorded violation
	ShowViolation(violation domain.Violation)

	// StateChanged is called after every session or kiosk transition
	StateChanged(status domain.SessionStatus)
}
