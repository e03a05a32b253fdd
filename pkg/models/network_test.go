// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetNetwork(t *testing.T) {
	require := require.New(t)

	n, err := GetNetwork("blasttest")
	require.NoError(err)
	require.Equal("blastTest", n.Name)
	require.Equal(uint64(168587773), n.ChainID)
	require.Equal("blast-sepolia", n.AxelarChain)

	n, err = GetNetwork("fantom")
	require.NoError(err)
	require.Equal(uint64(4002), n.ChainID)
	require.Equal("fantom", n.AxelarChain)
	require.Equal("FTM", n.GasToken)

	n, err = GetNetwork("mainnet")
	require.NoError(err)
	require.Equal("ethereum", n.AxelarChain)
	require.Empty(n.GasToken)

	_, err = GetNetwork("goerli")
	require.ErrorContains(err, "not a known network")
}

func TestNetworkURLs(t *testing.T) {
	require := require.New(t)

	n, err := GetNetwork("sepolia")
	require.NoError(err)
	require.Equal("https://sepolia.etherscan.io/tx/0xabc", n.TxURL("0xabc"))
	require.Equal("https://sepolia.etherscan.io/address/0xdef", n.AddressURL("0xdef"))
	require.Equal("testnet", n.AxelarEnvironment())

	local, err := GetNetwork("dev")
	require.NoError(err)
	require.Empty(local.TxURL("0xabc"))

	mainnet, err := GetNetwork("mainnet")
	require.NoError(err)
	require.Equal("mainnet", mainnet.AxelarEnvironment())
}

func TestGetNetworksReturnsCopy(t *testing.T) {
	networks := GetNetworks()
	networks[0].RPCURL = "http://changed"
	again := GetNetworks()
	require.NotEqual(t, "http://changed", again[0].RPCURL)
}

func TestNetworkNamesSorted(t *testing.T) {
	names := NetworkNames()
	require.Contains(t, names, "hardhat")
	require.IsIncreasing(t, names)
}
