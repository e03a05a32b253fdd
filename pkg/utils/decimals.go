// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const DefaultDenomination = 18

// Convert an integer amount of the given denomination to base units
// (i.e. An amount of 54 with a decimals value of 3 results in 54000)
func ApplyDenomination(amount uint64, decimals uint8) *big.Int {
	multiplier := new(big.Int).Exp(
		big.NewInt(10),
		big.NewInt(int64(decimals)),
		nil,
	)
	return new(big.Int).Mul(
		new(big.Int).SetUint64(amount),
		multiplier,
	)
}

// Convert an integer amount of the default denomination to base units
func ApplyDefaultDenomination(amount uint64) *big.Int {
	return ApplyDenomination(amount, DefaultDenomination)
}

// ParseUnits converts a decimal token amount such as "25" or "0.5" into base
// units for a token with the given decimals. Amounts with more fractional
// digits than decimals, and negative amounts, are rejected.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("invalid amount %q: must not be negative", amount)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("invalid amount %q: more than %d decimals", amount, decimals)
	}
	return shifted.BigInt(), nil
}

// FormatUnits renders base units as a decimal amount of a token with the
// given decimals
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

