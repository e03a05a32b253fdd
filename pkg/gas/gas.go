// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package gas

import (
	"context"
	"math/big"
)

const (
	DefaultSourceChain      = "ethereum-sepolia"
	DefaultDestinationChain = "blast-sepolia"
	DefaultGasToken         = "ETH"
	DefaultGasLimit         = uint64(700000)
	DefaultGasMultiplier    = 1.1
)

// FeeRequest describes a cross chain message whose execution fee is to be
// quoted
type FeeRequest struct {
	SourceChain      string
	DestinationChain string
	GasToken         string
	GasLimit         uint64
	GasMultiplier    float64
	// MinGasPrice is optional, in wei
	MinGasPrice *big.Int
}

// Estimator quotes the native fee, in wei, to pay on the source chain
type Estimator interface {
	EstimateGasFee(ctx context.Context, req FeeRequest) (*big.Int, error)
}

// DefaultFeeRequest is the quote used by the token operations when nothing
// else is configured
func DefaultFeeRequest() FeeRequest {
	return FeeRequest{
		SourceChain:      DefaultSourceChain,
		DestinationChain: DefaultDestinationChain,
		GasToken:         DefaultGasToken,
		GasLimit:         DefaultGasLimit,
		GasMultiplier:    DefaultGasMultiplier,
	}
}
