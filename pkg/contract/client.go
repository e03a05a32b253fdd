// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/interchain-tools/its-cli/pkg/evm"
	"github.com/interchain-tools/its-cli/pkg/ux"
)

var ErrFailedReceiptStatus = errors.New("failed receipt status")

// Caller is a signer bound to a chain. It is the only surface action code
// uses to reach contracts.
type Caller interface {
	// Address is the signer address
	Address() common.Address
	// Call executes a view method
	Call(ctx context.Context, to common.Address, methodSpec string, params ...interface{}) ([]interface{}, error)
	// Transact signs and submits a method call paying value, and waits for
	// the receipt
	Transact(
		ctx context.Context,
		to common.Address,
		value *big.Int,
		methodSpec string,
		params ...interface{},
	) (*types.Transaction, *types.Receipt, error)
	// Deploy publishes bytecode with the given constructor arguments
	Deploy(
		ctx context.Context,
		bytecode []byte,
		constructorSpec string,
		params ...interface{},
	) (common.Address, *types.Transaction, *types.Receipt, error)
}

// Backend is what Client needs from a chain connection. Both
// *ethclient.Client and the simulated backend client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

type Client struct {
	backend    Backend
	closer     func()
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
	// ShowProgress displays a spinner while waiting for receipts
	ShowProgress bool
}

// NewClient dials rpcURL and binds privateKey to it. A zero chainID is
// resolved from the endpoint.
func NewClient(
	ctx context.Context,
	rpcURL string,
	privateKeyStr string,
	chainID uint64,
) (*Client, error) {
	privateKey, err := evm.ParsePrivateKey(privateKeyStr)
	if err != nil {
		return nil, err
	}
	client, err := evm.GetClient(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	var id *big.Int
	if chainID != 0 {
		id = new(big.Int).SetUint64(chainID)
	}
	c, err := NewClientWithBackend(ctx, client, privateKey, id)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.closer = client.Close
	return c, nil
}

func NewClientWithBackend(
	ctx context.Context,
	backend Backend,
	privateKey *ecdsa.PrivateKey,
	chainID *big.Int,
) (*Client, error) {
	if chainID == nil {
		var err error
		chainID, err = backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failure getting chain id: %w", err)
		}
	}
	return &Client{
		backend:    backend,
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:    chainID,
	}, nil
}

func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Client) txOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	txOpts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, err
	}
	txOpts.Context = ctx
	txOpts.Value = value
	return txOpts, nil
}

func (c *Client) Call(
	ctx context.Context,
	to common.Address,
	methodSpec string,
	params ...interface{},
) ([]interface{}, error) {
	methodName, parsed, err := ParseABI(methodSpec, false, true, params...)
	if err != nil {
		return nil, err
	}
	contract := bind.NewBoundContract(to, parsed, c.backend, c.backend, c.backend)
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx, From: c.address}, &out, methodName, params...); err != nil {
		return nil, fmt.Errorf("failure calling %s on %s: %w", methodName, to.Hex(), err)
	}
	return out, nil
}

func (c *Client) Transact(
	ctx context.Context,
	to common.Address,
	value *big.Int,
	methodSpec string,
	params ...interface{},
) (*types.Transaction, *types.Receipt, error) {
	paid := value != nil && value.Sign() > 0
	methodName, parsed, err := ParseABI(methodSpec, paid, false, params...)
	if err != nil {
		return nil, nil, err
	}
	txOpts, err := c.txOpts(ctx, value)
	if err != nil {
		return nil, nil, err
	}
	contract := bind.NewBoundContract(to, parsed, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(txOpts, methodName, params...)
	if err != nil {
		return nil, nil, fmt.Errorf("failure sending %s to %s: %w", methodName, to.Hex(), err)
	}
	receipt, err := c.wait(ctx, tx, methodName)
	if err != nil {
		return tx, receipt, err
	}
	return tx, receipt, nil
}

func (c *Client) Deploy(
	ctx context.Context,
	bytecode []byte,
	constructorSpec string,
	params ...interface{},
) (common.Address, *types.Transaction, *types.Receipt, error) {
	_, parsed, err := ParseABI(constructorSpec, false, false, params...)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	txOpts, err := c.txOpts(ctx, nil)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	address, tx, _, err := bind.DeployContract(txOpts, parsed, bytecode, c.backend, params...)
	if err != nil {
		return common.Address{}, nil, nil, fmt.Errorf("failure deploying contract: %w", err)
	}
	receipt, err := c.wait(ctx, tx, "contract deploy")
	if err != nil {
		return common.Address{}, tx, receipt, err
	}
	return address, tx, receipt, nil
}

func (c *Client) wait(ctx context.Context, tx *types.Transaction, desc string) (*types.Receipt, error) {
	if c.ShowProgress {
		spinSession := ux.NewUserSpinner()
		spinner := spinSession.SpinToUser("Waiting for %s tx %s", desc, tx.Hash().Hex())
		receipt, success, err := evm.WaitForTransaction(ctx, c.backend, tx)
		switch {
		case err != nil:
			ux.SpinFailWithError(spinner, err)
		case !success:
			ux.SpinFailWithError(spinner, ErrFailedReceiptStatus)
		default:
			ux.SpinComplete(spinner)
		}
		spinSession.Stop()
		return checkReceipt(tx, receipt, success, err)
	}
	receipt, success, err := evm.WaitForTransaction(ctx, c.backend, tx)
	return checkReceipt(tx, receipt, success, err)
}

func checkReceipt(tx *types.Transaction, receipt *types.Receipt, success bool, err error) (*types.Receipt, error) {
	if err != nil {
		return nil, err
	}
	if !success {
		return receipt, fmt.Errorf("%w for tx %s", ErrFailedReceiptStatus, tx.Hash().Hex())
	}
	return receipt, nil
}
