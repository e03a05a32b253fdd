// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its contract
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy compiled contracts",
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	return cmd
}
