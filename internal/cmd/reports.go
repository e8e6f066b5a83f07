package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mapplock/mapplock/internal/adapters/report"
	"github.com/mapplock/mapplock/internal/domain"
)

// ReportsCmd generates reports
type ReportsCmd struct {
	Usage      ReportsUsageCmd      `cmd:"usage" help:"Usage over a period" default:"1"`
	Violations ReportsViolationsCmd `cmd:"violations" help:"Violations of one session"`
}

// ReportsUsageCmd generates a usage report
type ReportsUsageCmd struct {
	Format   string        `help:"Output format: json, markdown or html" enum:"json,markdown,md,html" default:"markdown"`
	Lookback time.Duration `help:"Window for the custom period"`
	Period   string        `help:"Period: last_day, last_week, last_month or custom" default:"last_week"`
	Send     bool          `help:"Send the report to the management server"`
}

// Run executes the usage report command
func (r *ReportsUsageCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container

	period, err := domain.ParseReportPeriod(r.Period)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(r.Format)
	if err != nil {
		return err
	}
	if err := c.RestoreSessions(ctx); err != nil {
		return err
	}

	var usage domain.UsageReport
	if r.Send {
		usage, err = c.Reports.SendUsage(ctx, period, r.Lookback)
	} else {
		usage, err = c.Reports.Usage(ctx, period, r.Lookback)
	}
	if err != nil {
		return err
	}
	return writeReport(format, usage)
}

// ReportsViolationsCmd generates a violation report
type ReportsViolationsCmd struct {
	Format    string `help:"Output format: json, markdown or html" enum:"json,markdown,md,html" default:"markdown"`
	Send      bool   `help:"Send the report to the management server"`
	SessionID string `arg:"" optional:"" help:"Session id (defaults to the current or last session)"`
}

// Run executes the violation report command
func (r *ReportsViolationsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container

	format, err := report.ParseFormat(r.Format)
	if err != nil {
		return err
	}
	if err := c.RestoreSessions(ctx); err != nil {
		return err
	}

	var violations domain.ViolationReport
	if r.Send {
		violations, err = c.Reports.SendViolations(ctx, r.SessionID)
	} else {
		violations, err = c.Reports.SessionViolations(ctx, r.SessionID)
	}
	if err != nil {
		return err
	}
	return writeReport(format, violations)
}

func writeReport(format report.Format, v any) error {
	data, err := report.Render(format, v)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
