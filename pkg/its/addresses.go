// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package its

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/addressbook"
	"github.com/interchain-tools/its-cli/pkg/constants"
)

var (
	DefaultServiceAddress = common.HexToAddress("0xB5FB4BE02232B1bBA4dC8f81dc24C26980dE9e3C")
	DefaultFactoryAddress = common.HexToAddress("0x83a93500d23Fbc3e82B410aD07A6a9F7A0670D66")
)

// Addresses locates the Interchain Token Service deployment on a chain
type Addresses struct {
	Service common.Address
	Factory common.Address
}

func DefaultAddresses() Addresses {
	return Addresses{
		Service: DefaultServiceAddress,
		Factory: DefaultFactoryAddress,
	}
}

// ResolveAddresses returns the default deployment overridden by whatever
// the address book records for network. A nil book means defaults.
func ResolveAddresses(book *addressbook.AddressBook, network string) (Addresses, error) {
	addrs := DefaultAddresses()
	if book == nil {
		return addrs, nil
	}
	for id, target := range map[string]*common.Address{
		constants.InterchainTokenServiceID: &addrs.Service,
		constants.InterchainTokenFactoryID: &addrs.Factory,
	} {
		addr, err := book.GetAddress(network + "." + id)
		switch {
		case errors.Is(err, constants.ErrKeyNotFoundOnBook):
		case err != nil:
			return Addresses{}, fmt.Errorf("failure resolving %s: %w", id, err)
		default:
			*target = addr
		}
	}
	return addrs, nil
}
