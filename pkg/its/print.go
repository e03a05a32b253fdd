// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/interchain-tools/its-cli/pkg/ux"
)

func printTx(network models.Network, r TxResult) {
	ux.Logger.PrintToUser("Transaction Hash: %s", r.TxHash.Hex())
	if url := network.TxURL(r.TxHash.Hex()); url != "" {
		ux.Logger.PrintToUser("Explorer: %s", url)
	}
	if r.Fee != nil {
		ux.Logger.PrintToUser("Gas Paid: %s wei (%s)", r.Fee, utils.FormatUnits(r.Fee, utils.DefaultDenomination))
	}
}

func (r *TokenIDResult) Print() {
	ux.Logger.PrintToUser("Token ID: %s", utils.FormatBytes32(r.TokenID))
	ux.Logger.PrintToUser("Token Address: %s", r.TokenAddress.Hex())
	ux.Logger.PrintToUser("Token Manager Address: %s", r.TokenManagerAddress.Hex())
	ux.Logger.PrintToUser("Deployer: %s", r.Deployer.Hex())
	ux.Logger.PrintToUser("Salt: %s", utils.FormatBytes32(r.Salt))
}

func (r *DeployResult) Print(network models.Network) {
	ux.Logger.PrintLineSeparator()
	ux.Logger.PrintToUser("Deployed Token ID: %s", utils.FormatBytes32(r.TokenID))
	ux.Logger.PrintToUser("Token Address: %s", r.TokenAddress.Hex())
	printTx(network, r.TxResult)
	ux.Logger.PrintToUser("Salt: %s", utils.FormatBytes32(r.Salt))
	ux.Logger.PrintToUser("Expected Token Manager Address: %s", r.TokenManagerAddress.Hex())
	ux.Logger.PrintToUser("%s", ux.Yellow("Keep the salt, deploying the token on another chain needs it"))
}

func (r *TxResult) Print(network models.Network) {
	printTx(network, *r)
}

func (r *TokenManagerResult) Print(network models.Network) {
	ux.Logger.PrintToUser("Token Manager Type: %s", r.Type)
	ux.Logger.PrintToUser("Salt: %s", utils.FormatBytes32(r.Salt))
	printTx(network, r.TxResult)
}

func (r *FeeResult) Print() {
	ux.Logger.PrintToUser(
		"Gas Fee %s -> %s (%s, gas limit %s): %s wei (%s %s)",
		r.Request.SourceChain,
		r.Request.DestinationChain,
		r.Request.GasToken,
		ux.ConvertToStringWithThousandSeparator(r.Request.GasLimit),
		r.Fee,
		utils.FormatUnits(r.Fee, utils.DefaultDenomination),
		r.Request.GasToken,
	)
}

func (r *ContractDeployResult) Print(network models.Network) {
	ux.Logger.GreenCheckmarkToUser("itsToken with address: %s", r.Address.Hex())
	if url := network.AddressURL(r.Address.Hex()); url != "" {
		ux.Logger.PrintToUser("Explorer: %s", url)
	}
	ux.Logger.PrintToUser("Transaction Hash: %s", r.TxHash.Hex())
	ux.Logger.PrintToUser("Recorded as %s", r.KeyPath)
}
