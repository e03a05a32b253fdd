// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/evm"
)

func ValidateAddress(input string) error {
	if !common.IsHexAddress(input) {
		return errors.New("invalid address")
	}
	return nil
}

func validatePrivateKey(input string) error {
	if _, err := evm.ParsePrivateKey(input); err != nil {
		return errors.New("invalid private key")
	}
	return nil
}
