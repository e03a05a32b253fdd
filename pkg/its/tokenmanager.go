// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/utils"
)

type TokenManagerType uint8

const (
	NativeInterchainToken TokenManagerType = iota
	MintBurnFrom
	LockUnlock
	LockUnlockFee
	MintBurn
)

func (t TokenManagerType) String() string {
	switch t {
	case NativeInterchainToken:
		return "native interchain token"
	case MintBurnFrom:
		return "mint/burn from"
	case LockUnlock:
		return "lock/unlock"
	case LockUnlockFee:
		return "lock/unlock with fee"
	case MintBurn:
		return "mint/burn"
	}
	return fmt.Sprintf("token manager type %d", uint8(t))
}

const (
	DefaultTokenManagerChain = "Blast Sepolia Testnet"

	deployTokenManagerSpec = "deployTokenManager(bytes32, string, uint8, bytes, uint256)->(bytes32)"
)

var (
	DefaultTokenManagerOperator = common.HexToAddress("0x8b736035bbda71825e0219f5fe4dfb22c35fbddc")
	DefaultTokenManagerToken    = common.HexToAddress("0x03bf6e95090fd4cbe1e7bdb2b2228113303c0c5f")
)

// TokenManagerParams encodes the token manager setup parameters, that is
// abi.encode(bytes operator, address token)
func TokenManagerParams(operator common.Address, token common.Address) ([]byte, error) {
	bytesTy, err := abi.NewType("bytes", "", nil)
	if err != nil {
		return nil, err
	}
	addressTy, err := abi.NewType("address", "", nil)
	if err != nil {
		return nil, err
	}
	args := abi.Arguments{{Type: bytesTy}, {Type: addressTy}}
	return args.Pack(operator.Bytes(), token)
}

type TokenManagerDeployParams struct {
	// Salt is generated when nil
	Salt             *[32]byte
	DestinationChain string
	Type             TokenManagerType
	Operator         common.Address
	Token            common.Address
	FeeRequest       gas.FeeRequest
}

type TokenManagerResult struct {
	TxResult
	Salt [32]byte
	Type TokenManagerType
}

// DeployTokenManager deploys a token manager for an existing token on the
// destination chain, paying the estimated fee
func DeployTokenManager(
	ctx context.Context,
	caller contract.Caller,
	estimator gas.Estimator,
	addrs Addresses,
	params TokenManagerDeployParams,
) (*TokenManagerResult, error) {
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
	setup, err := TokenManagerParams(params.Operator, params.Token)
	if err != nil {
		return nil, err
	}
	fee, err := estimator.EstimateGasFee(ctx, params.FeeRequest)
	if err != nil {
		return nil, err
	}
	tx, _, err := caller.Transact(
		ctx,
		addrs.Service,
		fee,
		deployTokenManagerSpec,
		salt,
		params.DestinationChain,
		uint8(params.Type),
		setup,
		fee,
	)
	if err != nil {
		return nil, fmt.Errorf("failure deploying token manager: %w", err)
	}
	return &TokenManagerResult{
		TxResult: TxResult{TxHash: tx.Hash(), Fee: fee},
		Salt:     salt,
		Type:     params.Type,
	}, nil
}
