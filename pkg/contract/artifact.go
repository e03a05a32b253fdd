// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/afero"
)

type artifact struct {
	ContractName string          `json:"contractName"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

type foundryBytecode struct {
	Object string `json:"object"`
}

// LoadArtifactBytecode returns the creation bytecode found at path. Hardhat
// artifacts keep it as a hex string under "bytecode", Foundry ones under
// "bytecode.object", and solc .bin files hold the bare hex.
func LoadArtifactBytecode(fs afero.Fs, path string) ([]byte, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failure reading contract artifact: %w", err)
	}
	var hexCode string
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var a artifact
		if err := json.Unmarshal(bs, &a); err != nil {
			return nil, fmt.Errorf("invalid contract artifact %s: %w", path, err)
		}
		if err := json.Unmarshal(a.Bytecode, &hexCode); err != nil {
			var fb foundryBytecode
			if err := json.Unmarshal(a.Bytecode, &fb); err != nil {
				return nil, fmt.Errorf("contract artifact %s has no bytecode", path)
			}
			hexCode = fb.Object
		}
	} else {
		hexCode = string(bs)
	}
	hexCode = strings.TrimSpace(hexCode)
	bytecode := common.FromHex(hexCode)
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("contract artifact %s has empty bytecode", path)
	}
	return bytecode, nil
}
