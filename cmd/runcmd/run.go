// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package runcmd

import (
	"errors"
	"strings"

	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/dispatcher"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its run
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "run [function]",
		Short: "Run the token operation named by FUNCTION_NAME",
		Long: `The run command executes one token operation without asking anything,
taking every parameter from the environment (PR_KEY, NETWORK, RPC_URL,
TARGET_CHAIN, SALT, TOKEN_ADDRESS, RECIPIENT, AMOUNT, ...) or the config
file.

The operation is the positional argument, the --function flag, or the
FUNCTION_NAME environment variable, in that order. Known operations:
  ` + strings.Join(actions.NewDispatcher(&actions.Runner{}).Names(), "\n  ") + `

An unknown operation fails before anything is dialed.`,
		RunE: run,
		Args: cobrautils.MaximumNArgs(1),
	}
	cmd.Flags().String(constants.ConfigFunctionKey, "", "operation to run, overrides FUNCTION_NAME")
	return cmd
}

func run(_ *cobra.Command, args []string) error {
	name := app.Conf.GetConfigStringValue(constants.ConfigFunctionKey)
	if len(args) == 1 {
		name = args[0]
	}
	d := actions.NewDispatcher(&actions.Runner{App: app})
	ctx, cancel := utils.GetAPILargeContext()
	defer cancel()
	err := d.Dispatch(ctx, name)
	if errors.Is(err, dispatcher.ErrUnknownAction) {
		ux.Logger.RedXToUser("Unknown function: %s", name)
		ux.Logger.PrintToUser("Known functions: %s", strings.Join(d.Names(), ", "))
	}
	return err
}
