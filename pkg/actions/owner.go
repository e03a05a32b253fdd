// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package actions

import (
	"context"
	"fmt"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/interchain-tools/its-cli/pkg/ux"
)

// TokenOwner prints the owner of the token at token-address. Nothing is sent.
func (r *Runner) TokenOwner(ctx context.Context) error {
	token, err := r.App.GetAddress(constants.ConfigTokenAddressKey, its.DefaultTokenAddress)
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "read the token owner")
	if err != nil {
		return err
	}
	defer closeFn()
	owner, err := contract.GetContractOwner(ctx, caller, token)
	if err != nil {
		return fmt.Errorf("failure reading owner of %s: %w", token.Hex(), err)
	}
	ux.Logger.PrintToUser("Owner of %s: %s", token.Hex(), owner.Hex())
	if url := network.AddressURL(owner.Hex()); url != "" {
		ux.Logger.PrintToUser("  %s", url)
	}
	return nil
}
