// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbookcmd

import (
	"fmt"

	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/cobra"
)

// its addressbook get
func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <network>.<contract>",
		Short: "Print an address",
		RunE:  get,
		Args:  cobrautils.ExactArgs(1),
	}
}

func get(_ *cobra.Command, args []string) error {
	book, err := app.LoadAddressBook()
	if err != nil {
		return err
	}
	addr, err := book.GetAddress(args[0])
	if err != nil {
		return fmt.Errorf("%w (address book %s)", err, book.Path())
	}
	ux.Logger.PrintToUser("%s", addr.Hex())
	return nil
}
