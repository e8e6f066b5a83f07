package enforcement

import (
	"fmt"
	"path/filepath"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/ports"
)

// NewGuidedAccess confines the device to the allowed apps with hardware keys
// and the app switcher disabled
func NewGuidedAccess(path string) *ManifestStrategy {
	return newManifestStrategy(domain.KioskGuidedAccess, path, func(cfg domain.SessionConfiguration) (Manifest, error) {
		m := baseManifest(domain.KioskGuidedAccess, cfg)
		m.DisabledFeatures = []domain.DeviceFeature{
			domain.FeatureAppSwitcher, domain.FeatureControlCenter, domain.FeatureHardwareKeys,
		}
		return m, nil
	})
}

// NewScreenTime shields blocked apps and websites through screen time
func NewScreenTime(path string) *BlockingManifestStrategy {
	return &BlockingManifestStrategy{newManifestStrategy(domain.KioskScreenTime, path, func(cfg domain.SessionConfiguration) (Manifest, error) {
		return baseManifest(domain.KioskScreenTime, cfg), nil
	})}
}

// NewAutonomous covers the screen with a capture overlay and blocks apps
func NewAutonomous(path string) *BlockingManifestStrategy {
	return &BlockingManifestStrategy{newManifestStrategy(domain.KioskAutonomous, path, func(cfg domain.SessionConfiguration) (Manifest, error) {
		m := baseManifest(domain.KioskAutonomous, cfg)
		m.Overlay = true
		return m, nil
	})}
}

// NewSingleApp locks the device to exactly one allowed app. Restrictions hold
// while the session is paused.
func NewSingleApp(path string) *ManifestStrategy {
	s := newManifestStrategy(domain.KioskSingleApp, path, func(cfg domain.SessionConfiguration) (Manifest, error) {
		if len(cfg.AllowedApps) != 1 {
			return Manifest{}, fmt.Errorf("single app mode needs exactly one allowed app, got %d", len(cfg.AllowedApps))
		}
		m := baseManifest(domain.KioskSingleApp, cfg)
		m.LockedApp = cfg.AllowedApps[0]
		m.DisabledFeatures = domain.DisabledFeatures(domain.RestrictionMaximum)
		return m, nil
	})
	s.holdPause = true
	return s
}

// NewCustom disables device features by restriction level behind an overlay.
// Restrictions hold while the session is paused.
func NewCustom(path string) *ManifestStrategy {
	s := newManifestStrategy(domain.KioskCustom, path, func(cfg domain.SessionConfiguration) (Manifest, error) {
		m := baseManifest(domain.KioskCustom, cfg)
		m.DisabledFeatures = domain.DisabledFeatures(cfg.RestrictionLevel)
		m.Overlay = true
		return m, nil
	})
	s.holdPause = true
	return s
}

// Provider hands out one strategy per kiosk mode, all sharing one manifest path
type Provider struct {
	strategies map[domain.KioskMode]ports.EnforcementStrategy
}

var _ ports.StrategyProvider = (*Provider)(nil)

// NewProvider creates a Provider writing the manifest under homeDir
func NewProvider(homeDir string) *Provider {
	path := ManifestPath(homeDir)
	return &Provider{
		strategies: map[domain.KioskMode]ports.EnforcementStrategy{
			domain.KioskGuidedAccess: NewGuidedAccess(path),
			domain.KioskScreenTime:   NewScreenTime(path),
			domain.KioskAutonomous:   NewAutonomous(path),
			domain.KioskSingleApp:    NewSingleApp(path),
			domain.KioskCustom:       NewCustom(path),
		},
	}
}

// Strategy implements ports.StrategyProvider
func (p *Provider) Strategy(mode domain.KioskMode) (ports.EnforcementStrategy, error) {
	s, ok := p.strategies[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKioskMode, mode)
	}
	return s, nil
}

// ManifestPath returns where the manifest lives under homeDir
func ManifestPath(homeDir string) string {
	return filepath.Join(homeDir, ManifestFile)
}
