// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package gascmd

import (
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its gas
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gas",
		Short: "Quote cross chain gas fees",
		Long: `The gas command suite asks the Axelar GMP API what a cross chain call
costs, in wei of the source chain gas token.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// gas estimate
	cmd.AddCommand(newEstimateCmd())
	return cmd
}
