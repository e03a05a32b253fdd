// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

var (
	// init code returning a runtime that answers every call with uint256(42)
	answerBytecode = common.FromHex("600a600c600039600a6000f3" + "602a60005260206000f3")
	// init code returning a runtime that reverts every call
	revertBytecode = common.FromHex("6005600c60003960056000f3" + "60006000fd")
)

func newSimulatedClient(t *testing.T) (*Client, *simulated.Backend) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	funds := new(big.Int).Mul(big.NewInt(100), big.NewInt(1_000_000_000_000_000_000))
	backend := simulated.NewBackend(types.GenesisAlloc{
		crypto.PubkeyToAddress(key.PublicKey): {Balance: funds},
	})
	t.Cleanup(func() { _ = backend.Close() })

	// mine blocks in the background so receipts show up
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				backend.Commit()
			}
		}
	}()
	t.Cleanup(func() { close(done) })

	client, err := NewClientWithBackend(context.Background(), backend.Client(), key, nil)
	require.NoError(t, err)
	return client, backend
}

func TestClientDeployCallTransact(t *testing.T) {
	require := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, backend := newSimulatedClient(t)

	address, tx, receipt, err := client.Deploy(ctx, answerBytecode, "")
	require.NoError(err)
	require.NotNil(tx)
	require.Equal(types.ReceiptStatusSuccessful, receipt.Status)
	require.Equal(receipt.ContractAddress, address)

	code, err := backend.Client().CodeAt(ctx, address, nil)
	require.NoError(err)
	require.NotEmpty(code)

	out, err := client.Call(ctx, address, "balanceOf(address)->(uint256)", client.Address())
	require.NoError(err)
	balance, err := GetMethodReturn[*big.Int]("balanceOf", out)
	require.NoError(err)
	require.Equal(int64(42), balance.Int64())

	tx, receipt, err = client.Transact(ctx, address, big.NewInt(1000), "mint(address, uint256)", client.Address(), big.NewInt(25))
	require.NoError(err)
	require.Equal(big.NewInt(1000), tx.Value())
	require.Equal(tx.Hash(), receipt.TxHash)
}

func TestClientTransactRevert(t *testing.T) {
	require := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, _ := newSimulatedClient(t)

	address, _, _, err := client.Deploy(ctx, revertBytecode, "")
	require.NoError(err)

	_, _, err = client.Transact(ctx, address, nil, "mint(address, uint256)", client.Address(), big.NewInt(25))
	require.ErrorContains(err, "failure sending mint")
}
