package enforcement

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/fileutil"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

var errNotStarted = errors.New("enforcement not started")

// buildFunc derives the manifest a strategy writes for a session
type buildFunc func(cfg domain.SessionConfiguration) (Manifest, error)

// ManifestStrategy enforces a kiosk mode by maintaining the manifest file
type ManifestStrategy struct {
	build     buildFunc
	holdPause bool
	manifest  *Manifest
	mode      domain.KioskMode
	mu        sync.Mutex
	now       func() time.Time
	path      string
}

// BlockingManifestStrategy additionally blocks individual apps
type BlockingManifestStrategy struct {
	*ManifestStrategy
}

var (
	_ ports.EnforcementStrategy = (*ManifestStrategy)(nil)
	_ ports.BlockingStrategy    = (*BlockingManifestStrategy)(nil)
)

func newManifestStrategy(mode domain.KioskMode, path string, build buildFunc) *ManifestStrategy {
	return &ManifestStrategy{
		build: build,
		mode:  mode,
		now:   func() time.Time { return time.Now().UTC() },
		path:  path,
	}
}

// Mode implements ports.EnforcementStrategy
func (s *ManifestStrategy) Mode() domain.KioskMode {
	return s.mode
}

// Start writes the manifest for cfg. When the manifest on disk already
// belongs to sessionID, its blocked apps are kept.
func (s *ManifestStrategy) Start(ctx context.Context, sessionID string, cfg domain.SessionConfiguration) error {
	m, err := s.build(cfg)
	if err != nil {
		return err
	}
	m.SessionID = sessionID

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.readLocked(); ok && sessionID != "" && prev.SessionID == sessionID && prev.Mode == s.mode {
		m.BlockedApps = prev.BlockedApps
		logging.Logger.Debug("Kept blocked apps from previous manifest",
			"session_id", sessionID, "blocked_apps", len(m.BlockedApps))
	}

	if err := s.writeLocked(&m); err != nil {
		return err
	}
	s.manifest = &m
	logging.Logger.Info("Enforcement manifest written", "mode", s.mode, "path", s.path,
		"disabled_features", len(m.DisabledFeatures))
	return nil
}

// Pause relaxes restrictions. Modes that hold the device through a pause keep
// the manifest unchanged.
func (s *ManifestStrategy) Pause(ctx context.Context) error {
	return s.setPaused(true)
}

// Resume reapplies restrictions
func (s *ManifestStrategy) Resume(ctx context.Context) error {
	return s.setPaused(false)
}

// End removes the manifest
func (s *ManifestStrategy) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manifest = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove enforcement manifest: %w", err)
	}
	logging.Logger.Info("Enforcement manifest removed", "mode", s.mode)
	return nil
}

// Manifest returns a copy of the manifest in force
func (s *ManifestStrategy) Manifest() (Manifest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest == nil {
		return Manifest{}, false
	}
	return *s.manifest, true
}

func (s *ManifestStrategy) setPaused(paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest == nil {
		return errNotStarted
	}
	if s.holdPause {
		logging.Logger.Debug("Mode holds restrictions while paused", "mode", s.mode)
		return nil
	}

	m := *s.manifest
	m.Paused = paused
	if err := s.writeLocked(&m); err != nil {
		return err
	}
	s.manifest = &m
	return nil
}

func (s *ManifestStrategy) readLocked() (Manifest, bool) {
	var m Manifest
	if err := fileutil.ReadJSON(s.path, &m); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Logger.Warn("Ignoring unreadable enforcement manifest", "path", s.path, "error", err)
		}
		return Manifest{}, false
	}
	return m, true
}

func (s *ManifestStrategy) writeLocked(m *Manifest) error {
	m.UpdatedAt = s.now()
	if err := fileutil.WriteJSONAtomic(s.path, m, 0600); err != nil {
		return fmt.Errorf("failed to write enforcement manifest: %w", err)
	}
	return nil
}

// BlockApp adds bundleID to the blocked list
func (s *BlockingManifestStrategy) BlockApp(ctx context.Context, bundleID string) error {
	return s.updateBlocked(func(blocked []string) []string {
		if slices.Contains(blocked, bundleID) {
			return blocked
		}
		blocked = append(blocked, bundleID)
		slices.Sort(blocked)
		return blocked
	})
}

// UnblockApp removes bundleID from the blocked list
func (s *BlockingManifestStrategy) UnblockApp(ctx context.Context, bundleID string) error {
	return s.updateBlocked(func(blocked []string) []string {
		return slices.DeleteFunc(blocked, func(id string) bool { return id == bundleID })
	})
}

func (s *BlockingManifestStrategy) updateBlocked(update func([]string) []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest == nil {
		return errNotStarted
	}

	m := *s.manifest
	m.BlockedApps = update(slices.Clone(m.BlockedApps))
	if err := s.writeLocked(&m); err != nil {
		return err
	}
	s.manifest = &m
	return nil
}
