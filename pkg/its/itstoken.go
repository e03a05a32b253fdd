// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/addressbook"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/contract"
)

type ContractDeployResult struct {
	Network string
	KeyPath string
	Address common.Address
	TxHash  common.Hash
}

// DeployItsToken publishes the ItsToken bytecode and records its address
// under "<network>.itsToken" in book, which is saved right away
func DeployItsToken(
	ctx context.Context,
	caller contract.Caller,
	book *addressbook.AddressBook,
	network string,
	bytecode []byte,
) (*ContractDeployResult, error) {
	if book == nil {
		return nil, errors.New("no address book to record the deployment")
	}
	if network == "" {
		network = constants.DefaultNetwork
	}
	address, tx, _, err := caller.Deploy(ctx, bytecode, "")
	if err != nil {
		return nil, fmt.Errorf("failure deploying ItsToken: %w", err)
	}
	keyPath := network + "." + constants.ItsTokenAddressBookID
	if err := book.Set(keyPath, address.Hex()); err != nil {
		return nil, err
	}
	if err := book.Save(); err != nil {
		return nil, fmt.Errorf("failure saving address book %s: %w", book.Path(), err)
	}
	return &ContractDeployResult{
		Network: network,
		KeyPath: keyPath,
		Address: address,
		TxHash:  tx.Hash(),
	}, nil
}
