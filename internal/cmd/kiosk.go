package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mapplock/mapplock/internal/adapters/enforcement"
	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/fileutil"
	"github.com/mapplock/mapplock/internal/theme"
)

// KioskCmd inspects and adjusts kiosk enforcement
type KioskCmd struct {
	Block   KioskBlockCmd   `cmd:"block" help:"Block an app for the rest of the session"`
	Retry   KioskRetryCmd   `cmd:"retry" help:"Re-attempt kiosk mode for the current session"`
	Status  KioskStatusCmd  `cmd:"status" help:"Show the applied enforcement" default:"1"`
	Unblock KioskUnblockCmd `cmd:"unblock" help:"Lift a block placed with 'kiosk block'"`
}

// KioskStatusCmd shows the applied enforcement manifest
type KioskStatusCmd struct {
	JSON bool `help:"Output as JSON"`
}

// Run executes the kiosk status command
func (k *KioskStatusCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container

	status, err := c.CurrentStatus(ctx)
	if err != nil {
		return err
	}

	var manifest *enforcement.Manifest
	var m enforcement.Manifest
	if err := fileutil.ReadJSON(enforcement.ManifestPath(c.Home), &m); err == nil {
		manifest = &m
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read enforcement manifest: %w", err)
	}

	if k.JSON {
		return printJSON(os.Stdout, map[string]any{
			"kiosk_state": status.KioskState,
			"manifest":    manifest,
		})
	}

	fmt.Println(theme.Field("Kiosk", theme.StateStyle(string(status.KioskState)).Render(string(status.KioskState))))
	if manifest == nil {
		fmt.Println(theme.MutedStyle.Render("no enforcement applied"))
		return nil
	}
	fmt.Println(theme.Field("Mode", string(manifest.Mode)))
	fmt.Println(theme.Field("Session", manifest.SessionName))
	fmt.Println(theme.Field("Restriction", string(manifest.RestrictionLevel)))
	fmt.Println(theme.Field("Paused", fmt.Sprintf("%t", manifest.Paused)))
	if manifest.LockedApp != "" {
		fmt.Println(theme.Field("Locked app", manifest.LockedApp))
	}
	printList("Allowed apps", manifest.AllowedApps)
	printList("Blocked apps", manifest.BlockedApps)
	sites := make([]string, 0, len(manifest.BlockedWebsites))
	for _, p := range manifest.BlockedWebsites {
		sites = append(sites, p.String())
	}
	printList("Blocked sites", sites)
	features := make([]string, 0, len(manifest.DisabledFeatures))
	for _, f := range manifest.DisabledFeatures {
		features = append(features, string(f))
	}
	printList("Disabled", features)
	return nil
}

func printList(label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Println(theme.Field(label, strings.Join(values, ", ")))
}

// KioskBlockCmd blocks an app
type KioskBlockCmd struct {
	BundleID string `arg:"" help:"App bundle id"`
}

// Run executes the block command
func (k *KioskBlockCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		if err := c.Lockdown.Kiosk().BlockApp(ctx, k.BundleID); err != nil {
			return err
		}
		fmt.Printf("Blocked %s\n", k.BundleID)
		return nil
	})
}

// KioskUnblockCmd unblocks an app
type KioskUnblockCmd struct {
	BundleID string `arg:"" help:"App bundle id"`
}

// Run executes the unblock command
func (k *KioskUnblockCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		if err := c.Lockdown.Kiosk().UnblockApp(ctx, k.BundleID); err != nil {
			return err
		}
		fmt.Printf("Unblocked %s\n", k.BundleID)
		return nil
	})
}

// KioskRetryCmd re-attempts kiosk mode
type KioskRetryCmd struct{}

// Run executes the retry command
func (k *KioskRetryCmd) Run(cli *CLI) error {
	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		err := c.Lockdown.RetryKiosk(ctx)
		if errors.Is(err, domain.ErrAlreadyActive) {
			fmt.Println("Kiosk mode already engaged")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("Kiosk mode engaged")
		return nil
	})
}
