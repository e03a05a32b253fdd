// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"math/big"

	"github.com/interchain-tools/its-cli/pkg/gas"
)

type FeeResult struct {
	Request gas.FeeRequest
	Fee     *big.Int
}

// EstimateGas only quotes, nothing is sent
func EstimateGas(ctx context.Context, estimator gas.Estimator, req gas.FeeRequest) (*FeeResult, error) {
	fee, err := estimator.EstimateGasFee(ctx, req)
	if err != nil {
		return nil, err
	}
	return &FeeResult{Request: req, Fee: fee}, nil
}
