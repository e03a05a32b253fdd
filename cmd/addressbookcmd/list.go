// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbookcmd

import (
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// its addressbook list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recorded address",
		RunE:  list,
		Args:  cobrautils.ExactArgs(0),
	}
}

func list(*cobra.Command, []string) error {
	book, err := app.LoadAddressBook()
	if err != nil {
		return err
	}
	networks := book.Networks()
	if len(networks) == 0 {
		ux.Logger.PrintToUser("No addresses recorded in %s", book.Path())
		return nil
	}
	t := ux.DefaultTable(book.Path(), table.Row{"Network", "Contract", "Address"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	for _, network := range networks {
		for _, contractName := range book.Contracts(network) {
			addr, _ := book.Get(network + "." + contractName)
			t.AppendRow(table.Row{network, contractName, addr})
		}
	}
	ux.Logger.PrintTable(t)
	return nil
}
