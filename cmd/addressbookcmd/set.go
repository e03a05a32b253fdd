// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbookcmd

import (
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/cobra"
)

// its addressbook set
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <network>.<contract> <address>",
		Short: "Record an address",
		Long: `Records an address, keeping every other entry. Recording
<network>.interchainTokenService or <network>.interchainTokenFactory
overrides the contract addresses used on that network.`,
		RunE: set,
		Args: cobrautils.ExactArgs(2),
	}
}

func set(_ *cobra.Command, args []string) error {
	book, err := app.LoadAddressBook()
	if err != nil {
		return err
	}
	if err := book.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := book.Save(); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%s set to %s in %s", args[0], args[1], book.Path())
	return nil
}
