// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/gas"
)

const (
	DefaultOriginChain        = "Ethereum Sepolia"
	DefaultRemoteChain        = "Blast Sepolia Testnet"
	DefaultRemoteDeploySalt   = "0x4bc4c3cb44cd2a48c1cd8325969b12bb00cc689c2a3e6189387ce4adca0d548a"
	RemoteDeployFeeMultiplier = 2

	deployRemoteInterchainTokenSpec = "deployRemoteInterchainToken(string, bytes32, address, string, uint256)->(bytes32)"
)

type RemoteDeployParams struct {
	OriginChain      string
	DestinationChain string
	Salt             [32]byte
	// Minter on the destination chain, defaults to the signer
	Minter     common.Address
	FeeRequest gas.FeeRequest
}

type TxResult struct {
	TxHash common.Hash
	// Fee is the cross chain gas paid, nil when none was
	Fee *big.Int
}

// DeployRemoteInterchainToken deploys a token registered with salt on
// another chain. Twice the estimated fee is paid, as value and as gas value.
func DeployRemoteInterchainToken(
	ctx context.Context,
	caller contract.Caller,
	estimator gas.Estimator,
	addrs Addresses,
	params RemoteDeployParams,
) (*TxResult, error) {
	fee, err := estimator.EstimateGasFee(ctx, params.FeeRequest)
	if err != nil {
		return nil, err
	}
	value := new(big.Int).Mul(fee, big.NewInt(RemoteDeployFeeMultiplier))
	minter := params.Minter
	if minter == (common.Address{}) {
		minter = caller.Address()
	}
	tx, _, err := caller.Transact(
		ctx,
		addrs.Factory,
		value,
		deployRemoteInterchainTokenSpec,
		params.OriginChain,
		params.Salt,
		minter,
		params.DestinationChain,
		value,
	)
	if err != nil {
		return nil, fmt.Errorf("failure deploying remote interchain token: %w", err)
	}
	return &TxResult{TxHash: tx.Hash(), Fee: value}, nil
}
