// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

// its token id
func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Compute the interchain token id for the signer and a salt",
		Long: `Asks the Interchain Token Factory for the id of the token the signer gets
for the salt, and the Interchain Token Service for the token and token
manager addresses that id maps to. Nothing is sent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).InterchainTokenID)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addSaltFlag(cmd, "random")
	return cmd
}
