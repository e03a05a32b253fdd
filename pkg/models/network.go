// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"sort"
	"strings"
)

type NetworkKind int64

const (
	Undefined NetworkKind = iota
	Mainnet
	Testnet
	Local
)

func (nk NetworkKind) String() string {
	switch nk {
	case Mainnet:
		return "Mainnet"
	case Testnet:
		return "Testnet"
	case Local:
		return "Local Network"
	}
	return "invalid network"
}

// Network describes an EVM chain the CLI can talk to
type Network struct {
	Name        string
	Kind        NetworkKind
	RPCURL      string
	ChainID     uint64
	AxelarChain string
	// GasToken is the symbol cross chain fees are quoted in. Empty means ETH.
	GasToken    string
	ExplorerURL string
}

// AxelarEnvironment is the Axelar environment whose gas service prices
// messages originated on this network
func (n Network) AxelarEnvironment() string {
	if n.Kind == Mainnet {
		return "mainnet"
	}
	return "testnet"
}

func (n Network) TxURL(txHash string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(n.ExplorerURL, "/"), txHash)
}

func (n Network) AddressURL(address string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s", strings.TrimSuffix(n.ExplorerURL, "/"), address)
}

func (n Network) String() string {
	return fmt.Sprintf("%s (%s)", n.Name, n.Kind)
}

const localRPCURL = "http://127.0.0.1:8545"

var staticNetworks = []Network{
	{
		Name:    "dev",
		Kind:    Local,
		RPCURL:  localRPCURL,
		ChainID: 31337,
	},
	{
		Name:    "hardhat",
		Kind:    Local,
		RPCURL:  localRPCURL,
		ChainID: 31337,
	},
	{
		Name:        "base",
		Kind:        Mainnet,
		RPCURL:      "https://go.getblock.io/d87f48410c844ae2b536597ac2cbb749",
		ChainID:     8453,
		AxelarChain: "base",
		ExplorerURL: "https://basescan.org",
	},
	{
		Name:        "basetest",
		Kind:        Testnet,
		RPCURL:      "https://base-goerli.public.blastapi.io",
		ChainID:     84531,
		ExplorerURL: "https://goerli.basescan.org",
	},
	{
		Name:    "optest",
		Kind:    Testnet,
		RPCURL:  "https://polygon-mumbai-infura.wallet.coinbase.com?targetName=optimism-goerli",
		ChainID: 420,
	},
	{
		Name:        "baobab",
		Kind:        Testnet,
		RPCURL:      "https://public-en-baobab.klaytn.net",
		ChainID:     1001,
		ExplorerURL: "https://baobab.klaytnscope.com",
	},
	{
		Name:        "cypress",
		Kind:        Mainnet,
		RPCURL:      "https://public-en-cypress.klaytn.net",
		ChainID:     8217,
		ExplorerURL: "https://klaytnscope.com",
	},
	{
		Name:        "sepolia",
		Kind:        Testnet,
		RPCURL:      "https://ethereum-sepolia.publicnode.com",
		ChainID:     11155111,
		AxelarChain: "ethereum-sepolia",
		ExplorerURL: "https://sepolia.etherscan.io",
	},
	{
		Name:        "blastTest",
		Kind:        Testnet,
		RPCURL:      "https://sepolia.blast.io",
		ChainID:     168587773,
		AxelarChain: "blast-sepolia",
		ExplorerURL: "https://testnet.blastscan.io",
	},
	{
		Name:        "fantom",
		Kind:        Testnet,
		RPCURL:      "https://rpc.ankr.com/fantom_testnet",
		ChainID:     4002,
		AxelarChain: "fantom",
		GasToken:    "FTM",
		ExplorerURL: "https://testnet.ftmscan.com",
	},
	{
		Name:        "mainnet",
		Kind:        Mainnet,
		RPCURL:      "https://rpc.ankr.com/eth",
		ChainID:     1,
		AxelarChain: "ethereum",
		ExplorerURL: "https://etherscan.io",
	},
}

// GetNetwork looks up name in the static network table. Lookup is case
// insensitive since viper lowercases every key it reads from config files.
func GetNetwork(name string) (Network, error) {
	for _, n := range staticNetworks {
		if strings.EqualFold(n.Name, name) {
			return n, nil
		}
	}
	return Network{}, fmt.Errorf("%q is not a known network, expected one of %s", name, strings.Join(NetworkNames(), ", "))
}

// NewCustomNetwork builds a network for an endpoint that is not part of the
// static table
func NewCustomNetwork(name string, rpcURL string) Network {
	return Network{
		Name:   name,
		Kind:   Testnet,
		RPCURL: rpcURL,
	}
}

func GetNetworks() []Network {
	networks := make([]Network, len(staticNetworks))
	copy(networks, staticNetworks)
	return networks
}

func NetworkNames() []string {
	names := make([]string, 0, len(staticNetworks))
	for _, n := range staticNetworks {
		names = append(names, n.Name)
	}
	sort.Strings(names)
	return names
}
