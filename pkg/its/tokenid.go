// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/contract"
)

const (
	interchainTokenIDSpec      = "interchainTokenId(address, bytes32)->(bytes32)"
	interchainTokenAddressSpec = "interchainTokenAddress(bytes32)->(address)"
	tokenManagerAddressSpec    = "tokenManagerAddress(bytes32)->(address)"
)

type TokenIDResult struct {
	Deployer            common.Address
	Salt                [32]byte
	TokenID             [32]byte
	TokenAddress        common.Address
	TokenManagerAddress common.Address
}

// GetInterchainTokenID asks the factory for the id of the token deployer
// gets for salt
func GetInterchainTokenID(
	ctx context.Context,
	caller contract.Caller,
	factory common.Address,
	deployer common.Address,
	salt [32]byte,
) ([32]byte, error) {
	out, err := caller.Call(ctx, factory, interchainTokenIDSpec, deployer, salt)
	if err != nil {
		return [32]byte{}, err
	}
	return contract.GetMethodReturn[[32]byte]("interchainTokenId", out)
}

func GetInterchainTokenAddress(
	ctx context.Context,
	caller contract.Caller,
	service common.Address,
	tokenID [32]byte,
) (common.Address, error) {
	out, err := caller.Call(ctx, service, interchainTokenAddressSpec, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return contract.GetMethodReturn[common.Address]("interchainTokenAddress", out)
}

func GetTokenManagerAddress(
	ctx context.Context,
	caller contract.Caller,
	service common.Address,
	tokenID [32]byte,
) (common.Address, error) {
	out, err := caller.Call(ctx, service, tokenManagerAddressSpec, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return contract.GetMethodReturn[common.Address]("tokenManagerAddress", out)
}

// InterchainTokenID derives the token id for the signer and salt, and the
// addresses the token and its manager get (or already have) on this chain
func InterchainTokenID(
	ctx context.Context,
	caller contract.Caller,
	addrs Addresses,
	salt [32]byte,
) (*TokenIDResult, error) {
	deployer := caller.Address()
	tokenID, err := GetInterchainTokenID(ctx, caller, addrs.Factory, deployer, salt)
	if err != nil {
		return nil, err
	}
	tokenAddress, err := GetInterchainTokenAddress(ctx, caller, addrs.Service, tokenID)
	if err != nil {
		return nil, err
	}
	managerAddress, err := GetTokenManagerAddress(ctx, caller, addrs.Service, tokenID)
	if err != nil {
		return nil, err
	}
	return &TokenIDResult{
		Deployer:            deployer,
		Salt:                salt,
		TokenID:             tokenID,
		TokenAddress:        tokenAddress,
		TokenManagerAddress: managerAddress,
	}, nil
}
