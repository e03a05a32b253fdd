// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbook

import (
	"testing"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	bookPath     = "config/deployments.json"
	tokenAddress = "0x4D5361D08321d51e3821D7BCe23d711b594767e7"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	require := require.New(t)
	book, err := Load(afero.NewMemMapFs(), bookPath)
	require.NoError(err)
	require.Empty(book.Networks())
	_, ok := book.Get("dev.itsToken")
	require.False(ok)
}

func TestLoadInvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, bookPath, []byte("{not json"), 0o644))
	_, err := Load(fs, bookPath)
	require.ErrorContains(t, err, "not valid JSON")
}

func TestSetGetSave(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	book, err := Load(fs, bookPath)
	require.NoError(err)

	require.NoError(book.Set("sepolia.itsToken", tokenAddress))
	require.NoError(book.Save())

	reloaded, err := Load(fs, bookPath)
	require.NoError(err)
	addr, ok := reloaded.Get("sepolia.itsToken")
	require.True(ok)
	require.Equal(tokenAddress, addr)
	require.Equal([]string{"sepolia"}, reloaded.Networks())
	require.Equal([]string{"itsToken"}, reloaded.Contracts("sepolia"))

	parsed, err := reloaded.GetAddress("sepolia.itsToken")
	require.NoError(err)
	require.Equal(tokenAddress, parsed.Hex())
}

func TestSetPreservesExistingEntries(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, bookPath, []byte(`{"dev":{"interchainTokenService":"0xB5FB4BE02232B1bBA4dC8f81dc24C26980dE9e3C"}}`), 0o644))

	book, err := Load(fs, bookPath)
	require.NoError(err)
	require.NoError(book.Set("dev.itsToken", tokenAddress))
	require.NoError(book.Save())

	reloaded, err := Load(fs, bookPath)
	require.NoError(err)
	require.Equal([]string{"interchainTokenService", "itsToken"}, reloaded.Contracts("dev"))
}

func TestSaveIsIdempotent(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()

	write := func() []byte {
		book, err := Load(fs, bookPath)
		require.NoError(err)
		require.NoError(book.Set("dev.itsToken", tokenAddress))
		require.NoError(book.Set("blastTest.itsToken", tokenAddress))
		require.NoError(book.Save())
		bs, err := afero.ReadFile(fs, bookPath)
		require.NoError(err)
		return bs
	}

	first := write()
	second := write()
	third := write()
	require.Equal(first, second)
	require.Equal(second, third)
	require.Equal(`{
  "blastTest": {
    "itsToken": "0x4D5361D08321d51e3821D7BCe23d711b594767e7"
  },
  "dev": {
    "itsToken": "0x4D5361D08321d51e3821D7BCe23d711b594767e7"
  }
}
`, string(first))
}

func TestSetRejectsBadInput(t *testing.T) {
	book, err := Load(afero.NewMemMapFs(), bookPath)
	require.NoError(t, err)

	tests := []struct {
		name    string
		keyPath string
		address string
		wantErr error
	}{
		{"no contract", "dev", tokenAddress, ErrInvalidKeyPath},
		{"too deep", "dev.a.b", tokenAddress, ErrInvalidKeyPath},
		{"empty network", ".itsToken", tokenAddress, ErrInvalidKeyPath},
		{"not hex", "dev.itsToken", "hello", constants.ErrInvalidAddress},
		{"missing prefix", "dev.itsToken", "4D5361D08321d51e3821D7BCe23d711b594767e7", constants.ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, book.Set(tt.keyPath, tt.address), tt.wantErr)
		})
	}
}

func TestGetAddressMissingKey(t *testing.T) {
	book, err := Load(afero.NewMemMapFs(), bookPath)
	require.NoError(t, err)
	_, err = book.GetAddress("dev.itsToken")
	require.ErrorIs(t, err, constants.ErrKeyNotFoundOnBook)
}
