package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adapterlock "github.com/mapplock/mapplock/internal/adapters/lock"
	adaptermdm "github.com/mapplock/mapplock/internal/adapters/mdm"
	adapterpolicy "github.com/mapplock/mapplock/internal/adapters/policy"
	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
)

// ServeCmd runs the enforcement daemon
type ServeCmd struct {
	Listen string `help:"Command channel listen address (overrides settings.json)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.Container
	lk, err := adapterlock.Acquire(c.Home)
	if err != nil {
		return err
	}
	defer lk.Release()

	if err := c.Restore(ctx); err != nil {
		return err
	}

	addr := s.Listen
	if addr == "" {
		addr = c.Settings.Listen()
	}
	perSecond, burst := c.Settings.RateLimit()
	server := adaptermdm.NewServer(adaptermdm.ServerDeps{
		Actions:    c.Dispatcher,
		Compliance: c.Compliance,
		Status:     c.Lockdown,
		Violations: c.Reports,
	}, perSecond, burst)

	watcher := adapterpolicy.NewWatcher(c.Policies, adapterpolicy.DefaultDebounce, func(ctx context.Context, doc domain.PolicyDocument) {
		logging.Logger.Info("Policy changed", "version", doc.Version)
		c.checkCompliance(ctx)
	})

	logging.Logger.Info("Starting mapplock daemon", "device_id", c.DeviceID, "addr", addr)
	fmt.Printf("mapplock serving on %s (device %s)\n", addr, c.DeviceID)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx, addr)
	})
	g.Go(func() error {
		return c.Lockdown.Sessions().RunTicker(ctx, c.Settings.TickInterval())
	})
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		every(ctx, c.Settings.ComplianceInterval(), c.checkCompliance)
		return nil
	})
	if c.MDMClient != nil {
		g.Go(func() error {
			every(ctx, c.Settings.HeartbeatInterval(), c.sendHeartbeat)
			return nil
		})
	}

	err = g.Wait()
	logging.Logger.Info("mapplock daemon stopped", "error", err)
	return err
}

// every calls fn on each tick of interval until ctx is done
func every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

func (c *Container) checkCompliance(ctx context.Context) {
	result, err := c.Compliance.Check(ctx)
	if err != nil {
		logging.Logger.Warn("Compliance check incomplete", "error", err)
	}
	if _, err := c.Compliance.Report(ctx, result); err != nil {
		logging.Logger.Warn("Compliance report not delivered", "error", err)
	}
}

func (c *Container) sendHeartbeat(ctx context.Context) {
	if err := c.Reports.SendHeartbeat(ctx, c.Lockdown.Kiosk().State()); err != nil {
		logging.Logger.Warn("Heartbeat not delivered", "error", err)
	}
}
