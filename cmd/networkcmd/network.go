// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its network
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the networks the CLI knows about",
		Long: `The network command suite lists the built in networks, with any override
from the networks section of the config file applied.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// network list
	cmd.AddCommand(newListCmd())
	return cmd
}
