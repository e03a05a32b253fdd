// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"strconv"

	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// its network list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the known networks",
		RunE:  list,
		Args:  cobrautils.ExactArgs(0),
	}
}

func list(*cobra.Command, []string) error {
	t := ux.DefaultTable("Networks", table.Row{"Name", "Kind", "Chain ID", "Axelar Chain", "Gas Token", "RPC URL"})
	for _, n := range models.GetNetworks() {
		network, err := app.Conf.GetNetwork(n.Name)
		if err != nil {
			return err
		}
		chainID := "-"
		if network.ChainID != 0 {
			chainID = strconv.FormatUint(network.ChainID, 10)
		}
		axelarChain := network.AxelarChain
		if axelarChain == "" {
			axelarChain = "-"
		}
		gasToken := network.GasToken
		if gasToken == "" {
			gasToken = gas.DefaultGasToken
		}
		t.AppendRow(table.Row{network.Name, network.Kind, chainID, axelarChain, gasToken, network.RPCURL})
	}
	ux.Logger.PrintTable(t)
	return nil
}
