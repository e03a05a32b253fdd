// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package addressbook keeps the deployed contract addresses per network in a
// JSON file of the shape {"<network>": {"<contract>": "0x..."}}.
package addressbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/spf13/afero"
)

var ErrInvalidKeyPath = errors.New("key path must be of the form <network>.<contract>")

type AddressBook struct {
	fs      afero.Fs
	path    string
	entries map[string]map[string]string
}

// Load reads the address book at path. A missing file yields an empty book
// that will be created on Save.
func Load(fs afero.Fs, path string) (*AddressBook, error) {
	book := &AddressBook{
		fs:      fs,
		path:    path,
		entries: map[string]map[string]string{},
	}
	bs, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failure reading address book %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(bs))) == 0 {
		return book, nil
	}
	if err := json.Unmarshal(bs, &book.entries); err != nil {
		return nil, fmt.Errorf("address book %s is not valid JSON: %w", path, err)
	}
	if book.entries == nil {
		book.entries = map[string]map[string]string{}
	}
	return book, nil
}

func (b *AddressBook) Path() string {
	return b.path
}

func splitKeyPath(keyPath string) (string, string, error) {
	parts := strings.Split(keyPath, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidKeyPath, keyPath)
	}
	return parts[0], parts[1], nil
}

// Get returns the address stored under "<network>.<contract>"
func (b *AddressBook) Get(keyPath string) (string, bool) {
	network, contractName, err := splitKeyPath(keyPath)
	if err != nil {
		return "", false
	}
	addr, ok := b.entries[network][contractName]
	return addr, ok
}

// GetAddress is Get plus parsing into a common.Address
func (b *AddressBook) GetAddress(keyPath string) (common.Address, error) {
	addr, ok := b.Get(keyPath)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s", constants.ErrKeyNotFoundOnBook, keyPath)
	}
	if !common.IsHexAddress(addr) {
		return common.Address{}, fmt.Errorf("%w %q at %s", constants.ErrInvalidAddress, addr, keyPath)
	}
	return common.HexToAddress(addr), nil
}

// Set stores address under "<network>.<contract>". Keys keep their case.
func (b *AddressBook) Set(keyPath string, address string) error {
	network, contractName, err := splitKeyPath(keyPath)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return fmt.Errorf("%w %q", constants.ErrInvalidAddress, address)
	}
	if b.entries[network] == nil {
		b.entries[network] = map[string]string{}
	}
	b.entries[network][contractName] = address
	return nil
}

// Save writes the book back. encoding/json sorts map keys, so saving the same
// content twice yields the same bytes.
func (b *AddressBook) Save() error {
	bs, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return err
	}
	bs = append(bs, '\n')
	if dir := filepath.Dir(b.path); dir != "" && dir != "." {
		if err := b.fs.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			return fmt.Errorf("failure creating address book dir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(b.fs, b.path, bs, constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failure writing address book %s: %w", b.path, err)
	}
	return nil
}

func (b *AddressBook) Networks() []string {
	networks := make([]string, 0, len(b.entries))
	for network := range b.entries {
		networks = append(networks, network)
	}
	sort.Strings(networks)
	return networks
}

func (b *AddressBook) Contracts(network string) []string {
	contracts := make([]string, 0, len(b.entries[network]))
	for contractName := range b.entries[network] {
		contracts = append(contracts, contractName)
	}
	sort.Strings(contracts)
	return contracts
}
