// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocks

import (
	"context"
	"math/big"

	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/stretchr/testify/mock"
)

// Estimator is a mock implementation of gas.Estimator
type Estimator struct {
	mock.Mock
}

func (m *Estimator) EstimateGasFee(ctx context.Context, req gas.FeeRequest) (*big.Int, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
