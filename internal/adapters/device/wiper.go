package device

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// Wiper erases persisted sessions, the enforcement manifest and installed certificates
type Wiper struct {
	certs        *CertificateStore
	manifestPath string
	store        ports.SessionWriter
}

var _ ports.DeviceWiper = (*Wiper)(nil)

// NewWiper creates a new Wiper
func NewWiper(store ports.SessionWriter, manifestPath string, certs *CertificateStore) *Wiper {
	return &Wiper{
		certs:        certs,
		manifestPath: manifestPath,
		store:        store,
	}
}

// Wipe implements ports.DeviceWiper. Every step runs even when an earlier one fails.
func (w *Wiper) Wipe(ctx context.Context) error {
	var errs []error

	if err := w.store.Purge(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to purge sessions: %w", err))
	}
	if err := os.Remove(w.manifestPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, fmt.Errorf("failed to remove enforcement manifest: %w", err))
	}
	if w.certs != nil {
		if err := w.certs.removeAll(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logging.Logger.Warn("Device data wiped")
	return nil
}
