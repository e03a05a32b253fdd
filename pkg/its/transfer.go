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
	DefaultTransferChain  = "Polygon"
	DefaultTransferAmount = "25"
	DefaultMintAmount     = "1000"

	interchainTransferSpec = "interchainTransfer(string, bytes, uint256, bytes)"
	mintSpec               = "mint(address, uint256)"
)

var (
	DefaultTokenAddress = common.HexToAddress("0x4D5361D08321d51e3821D7BCe23d711b594767e7")
	DefaultRecipient    = common.HexToAddress("0x2d33B6d215B2aF28e4Ce2b1E02C62e8793750F6C")
)

type TransferParams struct {
	Token            common.Address
	DestinationChain string
	// Recipient is encoded as its 20 address bytes
	Recipient  common.Address
	Amount     *big.Int
	Metadata   []byte
	FeeRequest gas.FeeRequest
}

// InterchainTransfer sends amount of token to recipient on the destination
// chain, paying the estimated fee as value
func InterchainTransfer(
	ctx context.Context,
	caller contract.Caller,
	estimator gas.Estimator,
	params TransferParams,
) (*TxResult, error) {
	fee, err := estimator.EstimateGasFee(ctx, params.FeeRequest)
	if err != nil {
		return nil, err
	}
	metadata := params.Metadata
	if metadata == nil {
		metadata = []byte{}
	}
	tx, _, err := caller.Transact(
		ctx,
		params.Token,
		fee,
		interchainTransferSpec,
		params.DestinationChain,
		params.Recipient.Bytes(),
		params.Amount,
		metadata,
	)
	if err != nil {
		return nil, fmt.Errorf("failure transferring tokens: %w", err)
	}
	return &TxResult{TxHash: tx.Hash(), Fee: fee}, nil
}

type MintParams struct {
	Token     common.Address
	Recipient common.Address
	Amount    *big.Int
}

// Mint needs the signer to be a minter of token
func Mint(
	ctx context.Context,
	caller contract.Caller,
	params MintParams,
) (*TxResult, error) {
	tx, _, err := caller.Transact(
		ctx,
		params.Token,
		nil,
		mintSpec,
		params.Recipient,
		params.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("failure minting tokens: %w", err)
	}
	return &TxResult{TxHash: tx.Hash()}, nil
}
