// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

// Caller is a mock implementation of contract.Caller. Variadic method
// parameters are recorded as a single []interface{} argument.
type Caller struct {
	mock.Mock
}

func (m *Caller) Address() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *Caller) Call(
	ctx context.Context,
	to common.Address,
	methodSpec string,
	params ...interface{},
) ([]interface{}, error) {
	args := m.Called(ctx, to, methodSpec, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interface{}), args.Error(1)
}

func (m *Caller) Transact(
	ctx context.Context,
	to common.Address,
	value *big.Int,
	methodSpec string,
	params ...interface{},
) (*types.Transaction, *types.Receipt, error) {
	args := m.Called(ctx, to, value, methodSpec, params)
	var tx *types.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*types.Transaction)
	}
	var receipt *types.Receipt
	if args.Get(1) != nil {
		receipt = args.Get(1).(*types.Receipt)
	}
	return tx, receipt, args.Error(2)
}

func (m *Caller) Deploy(
	ctx context.Context,
	bytecode []byte,
	constructorSpec string,
	params ...interface{},
) (common.Address, *types.Transaction, *types.Receipt, error) {
	args := m.Called(ctx, bytecode, constructorSpec, params)
	var tx *types.Transaction
	if args.Get(1) != nil {
		tx = args.Get(1).(*types.Transaction)
	}
	var receipt *types.Receipt
	if args.Get(2) != nil {
		receipt = args.Get(2).(*types.Receipt)
	}
	return args.Get(0).(common.Address), tx, receipt, args.Error(3)
}
