// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else if parsedURL.Scheme == "" {
		return false, nil
	}
	return true, nil
}

// GetClient dials rpcURL. Endpoints given without a scheme are assumed to be
// https.
func GetClient(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return nil, err
	}
	if !hasScheme {
		rpcURL = "https://" + rpcURL
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failure connecting to %s: %w", rpcURL, err)
	}
	return client, nil
}

func ParsePrivateKey(privateKeyStr string) (*ecdsa.PrivateKey, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyStr), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return privateKey, nil
}

// WaitForTransaction blocks until tx is mined and reports whether its receipt
// status is successful
func WaitForTransaction(
	ctx context.Context,
	client bind.DeployBackend,
	tx *types.Transaction,
) (*types.Receipt, bool, error) {
	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, false, fmt.Errorf("failure waiting for tx %s: %w", tx.Hash().Hex(), err)
	}
	return receipt, receipt.Status == types.ReceiptStatusSuccessful, nil
}
