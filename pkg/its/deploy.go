// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/utils"
)

const (
	DefaultTokenName     = "New Interchain Token"
	DefaultTokenSymbol   = "NIT"
	DefaultTokenDecimals = uint8(18)
	DefaultInitialSupply = "1000"

	deployInterchainTokenSpec = "deployInterchainToken(bytes32, string, string, uint8, uint256, address)->(address)"
)

type DeployParams struct {
	// Salt is generated when nil
	Salt     *[32]byte
	Name     string
	Symbol   string
	Decimals uint8
	// InitialSupply in base units, minted to Minter
	InitialSupply *big.Int
	// Minter defaults to the signer
	Minter common.Address
}

// DefaultDeployParams is a NIT token with 1000 tokens of supply
func DefaultDeployParams() DeployParams {
	return DeployParams{
		Name:          DefaultTokenName,
		Symbol:        DefaultTokenSymbol,
		Decimals:      DefaultTokenDecimals,
		InitialSupply: utils.ApplyDenomination(1000, DefaultTokenDecimals),
	}
}

type DeployResult struct {
	TokenIDResult
	TxResult
}

// RegisterAndDeploy registers a new interchain token on the factory and
// deploys it on the local chain
func RegisterAndDeploy(
	ctx context.Context,
	caller contract.Caller,
	addrs Addresses,
	params DeployParams,
) (*DeployResult, error) {
	var salt [32]byte
	if params.Salt != nil {
		salt = *params.Salt
	} else {
		var err error
		salt, err = utils.RandomSalt()
		if err != nil {
			return nil, err
		}
	}
	minter := params.Minter
	if minter == (common.Address{}) {
		minter = caller.Address()
	}
	supply := params.InitialSupply
	if supply == nil {
		supply = big.NewInt(0)
	}
	ids, err := InterchainTokenID(ctx, caller, addrs, salt)
	if err != nil {
		return nil, err
	}
	tx, _, err := caller.Transact(
		ctx,
		addrs.Factory,
		nil,
		deployInterchainTokenSpec,
		salt,
		params.Name,
		params.Symbol,
		params.Decimals,
		supply,
		minter,
	)
	if err != nil {
		return nil, fmt.Errorf("failure deploying interchain token: %w", err)
	}
	return &DeployResult{
		TokenIDResult: *ids,
		TxResult:      TxResult{TxHash: tx.Hash()},
	}, nil
}
