// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"context"

	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its token
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Deploy and operate interchain tokens",
		Long: `The token command suite deploys interchain tokens through the Interchain
Token Factory, deploys them or their token managers on remote chains, and
transfers and mints them.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// token id
	cmd.AddCommand(newIDCmd())
	// token deploy
	cmd.AddCommand(newDeployCmd())
	// token deploy-remote
	cmd.AddCommand(newDeployRemoteCmd())
	// token transfer
	cmd.AddCommand(newTransferCmd())
	// token mint
	cmd.AddCommand(newMintCmd())
	// token deploy-manager
	cmd.AddCommand(newDeployManagerCmd())
	// token owner
	cmd.AddCommand(newOwnerCmd())
	return cmd
}

// runWith executes action interactively, honoring --skip-confirm
func runWith(cmd *cobra.Command, action func(*actions.Runner, context.Context) error) error {
	skipConfirm, err := cmd.Flags().GetBool(constants.SkipConfirmFlag)
	if err != nil {
		return err
	}
	runner := &actions.Runner{
		App:         app,
		Interactive: true,
		SkipConfirm: skipConfirm,
	}
	ctx, cancel := utils.GetAPILargeContext()
	defer cancel()
	return action(runner, ctx)
}

func addSaltFlag(cmd *cobra.Command, defaultDesc string) {
	cmd.Flags().String(constants.ConfigSaltKey, "", "32 byte hex salt (env SALT, default "+defaultDesc+")")
}

func addTargetChainFlag(cmd *cobra.Command, defaultChain string) {
	cmd.Flags().String(constants.ConfigTargetChainKey, "", "destination chain name (env TARGET_CHAIN, default "+defaultChain+")")
}

func addGasFlags(cmd *cobra.Command) {
	cmd.Flags().String(constants.ConfigGasMultiplierKey, "", "gas fee multiplier (env GAS_MULTIPLIER, default 1.1)")
	cmd.Flags().String(constants.ConfigGasLimitKey, "", "gas limit quoted for the destination execution (default 700000)")
}
