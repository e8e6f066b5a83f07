package ports

import (
	"context"

	"github.com/mapplock/mapplock/internal/domain"
)

// EnforcementStrategy restricts the device for one kiosk mode
type EnforcementStrategy interface {
	Mode() domain.KioskMode
	// Start engages enforcement for a session. Restarting the same session
	// keeps apps blocked or unblocked since it began.
	Start(ctx context.Context, sessionID string, cfg domain.SessionConfiguration) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	End(ctx context.Context) error
}

// AppBlocker is implemented by strategies that can block individual apps
type AppBlocker interface {
	BlockApp(ctx context.Context, bundleID string) error
	UnblockApp(ctx context.Context, bundleID string) error
}

// BlockingStrategy is a strategy that also supports per-app blocking
type BlockingStrategy interface {
	EnforcementStrategy
	AppBlocker
}

// StrategyProvider selects the strategy for a kiosk mode
type StrategyProvider interface {
	Strategy(mode domain.KioskMode) (EnforcementStrategy, error)
}
