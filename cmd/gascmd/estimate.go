// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package gascmd

import (
	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/spf13/cobra"
)

// its gas estimate
func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the gas fee of a cross chain call",
		Long: `Quotes the fee of a cross chain call. No key is needed and no chain is
contacted, only the gas fee service.`,
		RunE: estimate,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().String(constants.ConfigSourceChainKey, "", "source chain as known to Axelar (default the network's, else "+gas.DefaultSourceChain+")")
	cmd.Flags().String(constants.ConfigDestinationChainKey, "", "destination chain as known to Axelar (default "+gas.DefaultDestinationChain+")")
	cmd.Flags().String(constants.ConfigGasTokenKey, "", "symbol of the token the fee is paid in (default "+gas.DefaultGasToken+")")
	cmd.Flags().String(constants.ConfigGasLimitKey, "", "gas limit of the destination execution (default 700000)")
	cmd.Flags().String(constants.ConfigGasMultiplierKey, "", "fee multiplier (env GAS_MULTIPLIER, default 1.1)")
	return cmd
}

func estimate(*cobra.Command, []string) error {
	ctx, cancel := utils.GetAPIContext()
	defer cancel()
	return (&actions.Runner{App: app}).GasEstimate(ctx)
}
