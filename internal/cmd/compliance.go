package cmd

import (
	"context"
	"os"

	"github.com/mapplock/mapplock/internal/logging"
)

// ComplianceCmd evaluates device compliance
type ComplianceCmd struct {
	Check ComplianceCheckCmd `cmd:"check" help:"Evaluate the device against the applied policy" default:"1"`
}

// ComplianceCheckCmd runs one compliance evaluation
type ComplianceCheckCmd struct {
	JSON bool `help:"Output as JSON"`
	Send bool `help:"Send the compliance report to the management server"`
}

// Run executes the compliance check command
func (cc *ComplianceCheckCmd) Run(cli *CLI) error {
	ctx := context.Background()
	c := cli.Container
	if err := c.RestoreSessions(ctx); err != nil {
		return err
	}

	// An indeterminate check still yields a result worth showing
	result, checkErr := c.Compliance.Check(ctx)
	if checkErr != nil {
		logging.Logger.Warn("Compliance check incomplete", "error", checkErr)
	}

	if cc.Send {
		if _, err := c.Compliance.Report(ctx, result); err != nil {
			return err
		}
	}

	if cc.JSON {
		return printJSON(os.Stdout, result)
	}
	printCompliance(os.Stdout, result)
	return nil
}
