// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RandomSalt returns 32 random bytes
func RandomSalt() ([32]byte, error) {
	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return salt, fmt.Errorf("failure generating salt: %w", err)
	}
	return salt, nil
}

// ParseSalt parses a 0x prefixed 32 byte hex string
func ParseSalt(s string) ([32]byte, error) {
	var salt [32]byte
	bs, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return salt, fmt.Errorf("invalid salt %q: %w", s, err)
	}
	if len(bs) != common.HashLength {
		return salt, fmt.Errorf("invalid salt %q: expected %d bytes, got %d", s, common.HashLength, len(bs))
	}
	copy(salt[:], bs)
	return salt, nil
}

func FormatBytes32(b [32]byte) string {
	return hexutil.Encode(b[:])
}
