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

// its token owner
func newOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Print the owner of an ownable token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).TokenOwner)
		},
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().String(constants.ConfigTokenAddressKey, "", "token (env TOKEN_ADDRESS, default "+its.DefaultTokenAddress.Hex()+")")
	return cmd
}
