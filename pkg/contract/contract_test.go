// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestGetWords(t *testing.T) {
	require.Equal(t, []string{"address", "bytes32"}, getWords("address, bytes32"))
	require.Equal(t, []string{"bytes32, address", "uint256"}, getWords("(bytes32, address), uint256"))
	require.Equal(t, []string{"(bytes32, address), uint8", "string"}, getWords("((bytes32, address), uint8), string"))
	require.Empty(t, getWords(""))
}

func TestParseABI(t *testing.T) {
	require := require.New(t)

	name, parsed, err := ParseABI("interchainTokenId(address, bytes32)->(bytes32)", false, true)
	require.NoError(err)
	require.Equal("interchainTokenId", name)
	method, ok := parsed.Methods[name]
	require.True(ok)
	require.Len(method.Inputs, 2)
	require.Equal("address", method.Inputs[0].Type.String())
	require.Equal("bytes32", method.Inputs[1].Type.String())
	require.Len(method.Outputs, 1)
	require.Equal("bytes32", method.Outputs[0].Type.String())
	require.True(method.IsConstant())

	name, parsed, err = ParseABI("deployRemoteInterchainToken(string, bytes32, address, string, uint256)", true, false)
	require.NoError(err)
	require.True(parsed.Methods[name].IsPayable())
	require.Empty(parsed.Methods[name].Outputs)

	name, parsed, err = ParseABI("owner", false, true)
	require.NoError(err)
	require.Equal("owner", name)
	require.Empty(parsed.Methods[name].Inputs)
}

func TestParseABIConstructor(t *testing.T) {
	require := require.New(t)

	name, parsed, err := ParseABI("", false, false)
	require.NoError(err)
	require.Empty(name)
	require.Empty(parsed.Constructor.Inputs)

	_, parsed, err = ParseABI("(string, address, uint256)", false, false)
	require.NoError(err)
	require.Len(parsed.Constructor.Inputs, 3)
}

func TestParseSpecErrors(t *testing.T) {
	_, _, err := ParseSpec("mint(address, uint256)->address", false, false)
	require.ErrorContains(t, err, "surrounded by parenthesis")
}

func TestParseABIPacksCalldata(t *testing.T) {
	require := require.New(t)
	deployer := common.HexToAddress("0x2d33B6d215B2aF28e4Ce2b1E02C62e8793750F6C")
	salt := [32]byte{1, 2, 3}

	name, parsed, err := ParseABI("interchainTokenId(address, bytes32)->(bytes32)", false, true, deployer, salt)
	require.NoError(err)
	data, err := parsed.Pack(name, deployer, salt)
	require.NoError(err)
	selector := crypto.Keccak256([]byte("interchainTokenId(address,bytes32)"))[:4]
	require.Equal(selector, data[:4])
	require.Len(data, 4+32+32)
	require.Equal(deployer.Bytes(), data[4+12:4+32])
	require.Equal(salt[:], data[4+32:])
}

func TestParseABIPacksTuple(t *testing.T) {
	require := require.New(t)
	type Params struct {
		DestinationID [32]byte
		Recipient     common.Address
	}
	params := Params{
		DestinationID: [32]byte{9},
		Recipient:     common.HexToAddress("0x2d33B6d215B2aF28e4Ce2b1E02C62e8793750F6C"),
	}
	name, parsed, err := ParseABI("send((bytes32, address), uint256)", false, false, params, big.NewInt(25))
	require.NoError(err)
	data, err := parsed.Pack(name, params, big.NewInt(25))
	require.NoError(err)
	selector := crypto.Keccak256([]byte("send((bytes32,address),uint256)"))[:4]
	require.Equal(selector, data[:4])
	require.Len(data, 4+3*32)
}

func TestGetMethodReturn(t *testing.T) {
	require := require.New(t)

	addr := common.HexToAddress("0x83a93500d23Fbc3e82B410aD07A6a9F7A0670D66")
	got, err := GetMethodReturn[common.Address]("interchainTokenAddress", []interface{}{addr})
	require.NoError(err)
	require.Equal(addr, got)

	_, err = GetMethodReturn[common.Address]("interchainTokenAddress", nil)
	require.ErrorContains(err, "no return value")

	_, err = GetMethodReturn[common.Address]("interchainTokenAddress", []interface{}{addr, addr})
	require.ErrorContains(err, "expected 1 return value")

	_, err = GetMethodReturn[[32]byte]("interchainTokenId", []interface{}{addr})
	require.ErrorContains(err, "expected [32]uint8")
}
