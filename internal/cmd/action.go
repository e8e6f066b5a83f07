package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/theme"
)

// ActionCmd runs enterprise actions from the local operator
type ActionCmd struct {
	Run ActionRunCmd `cmd:"run" help:"Authorize and execute one action"`
}

// ActionRunCmd dispatches one action. The local operator is trusted for
// transport but privileged actions still need an admin token.
type ActionRunCmd struct {
	JSON   bool     `help:"Output the result as JSON"`
	Params []string `help:"Action parameter as key=value (repeatable)" name:"param" short:"p"`
	Type   string   `arg:"" help:"Action type (remote_lock, remote_unlock, configuration_update, compliance_check, report_generation, emergency_override, device_wipe, certificate_install)"`
}

// Run executes the action
func (a *ActionRunCmd) Run(cli *CLI) error {
	actionType, err := domain.ParseActionType(a.Type)
	if err != nil {
		return err
	}
	params, err := parseParams(a.Params)
	if err != nil {
		return err
	}

	action := domain.EnterpriseAction{
		ID:         uuid.NewString(),
		Type:       actionType,
		Parameters: params,
		Source:     "cli",
		Timestamp:  nowUTC(),
	}
	logging.Logger.Debug("Executing action command", "action_id", action.ID, "type", action.Type)

	c := cli.Container
	return c.WithLock(context.Background(), func(ctx context.Context) error {
		result, err := c.Dispatcher.Dispatch(ctx, action)
		if a.JSON {
			if printErr := printJSON(os.Stdout, result); printErr != nil {
				return printErr
			}
			return err
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", theme.StateStyle("active").Render(string(result.Outcome)), result.Message)
		return nil
	})
}
