// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// GetContractOwner gets owner for https://docs.openzeppelin.com/contracts/2.x/api/ownership#Ownable-owner contracts
func GetContractOwner(
	ctx context.Context,
	caller Caller,
	contractAddress common.Address,
) (common.Address, error) {
	out, err := caller.Call(ctx, contractAddress, "owner()->(address)")
	if err != nil {
		return common.Address{}, err
	}
	return GetMethodReturn[common.Address]("owner", out)
}
