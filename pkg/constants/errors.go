// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoPrivateKey      = errors.New("no private key provided: set PR_KEY, use --private-key, or add private-key to the config file")
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrNoRPCEndpoint     = errors.New("no rpc endpoint configured for network")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrKeyNotFoundOnBook = errors.New("key not found on address book")
)
