// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/spf13/cobra"
)

func addTokenFlags(cmd *cobra.Command, defaultRecipient string, defaultAmount string) {
	cmd.Flags().String(constants.ConfigTokenAddressKey, "", "interchain token (env TOKEN_ADDRESS, default "+its.DefaultTokenAddress.Hex()+")")
	cmd.Flags().String(constants.ConfigRecipientKey, "", "recipient (env RECIPIENT, default "+defaultRecipient+")")
	cmd.Flags().String(constants.ConfigAmountKey, "", "amount in tokens (env AMOUNT, default "+defaultAmount+")")
	cmd.Flags().String(constants.ConfigDecimalsKey, "", "token decimals (default 18)")
}

// its token transfer
func newTransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer interchain tokens to another chain",
		Long: `Calls interchainTransfer on the token, paying the estimated cross chain
gas fee, to send tokens to a recipient on the destination chain.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).TransferTokens)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addTokenFlags(cmd, "asked for", its.DefaultTransferAmount)
	addTargetChainFlag(cmd, its.DefaultTransferChain)
	addGasFlags(cmd)
	cmd.Flags().String(constants.ConfigMetadataKey, "", "hex metadata passed along the transfer (default 0x)")
	return cmd
}

// its token mint
func newMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint interchain tokens",
		Long:  "Mints tokens to a recipient. The signer must be a minter of the token.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).MintTokens)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addTokenFlags(cmd, "the signer", its.DefaultMintAmount)
	return cmd
}
