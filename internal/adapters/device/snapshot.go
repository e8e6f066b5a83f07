package device

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/fileutil"
	"github.com/mapplock/mapplock/internal/ports"
)

// SnapshotFile is the device state file the on-device agent keeps current
const SnapshotFile = "device.json"

// FileSnapshotProvider reads the device state the agent writes to disk
type FileSnapshotProvider struct {
	path string
}

var (
	_ ports.SnapshotProvider   = (*FileSnapshotProvider)(nil)
	_ ports.SupervisionChecker = (*FileSnapshotProvider)(nil)
)

// NewFileSnapshotProvider creates a provider reading device.json under homeDir
func NewFileSnapshotProvider(homeDir string) *FileSnapshotProvider {
	return &FileSnapshotProvider{path: filepath.Join(homeDir, SnapshotFile)}
}

// NewFileSnapshotProviderWithPath creates a provider for a specific file (for testing)
func NewFileSnapshotProviderWithPath(path string) *FileSnapshotProvider {
	return &FileSnapshotProvider{path: path}
}

// CurrentSnapshot implements ports.SnapshotProvider
func (p *FileSnapshotProvider) CurrentSnapshot(ctx context.Context) (domain.DeviceSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeviceSnapshot{}, err
	}

	var snapshot domain.DeviceSnapshot
	if err := fileutil.ReadJSON(p.path, &snapshot); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DeviceSnapshot{}, fmt.Errorf("no device snapshot at %s: %w", p.path, err)
		}
		return domain.DeviceSnapshot{}, fmt.Errorf("failed to read device snapshot: %w", err)
	}
	return snapshot, nil
}

// IsSupervised implements ports.SupervisionChecker. A missing snapshot means unsupervised.
func (p *FileSnapshotProvider) IsSupervised(ctx context.Context) (bool, error) {
	snapshot, err := p.CurrentSnapshot(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return snapshot.Supervised, nil
}
