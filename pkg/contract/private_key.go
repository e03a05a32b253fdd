// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"fmt"
	"strings"

	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

type PrivateKeyFlags struct {
	privateKeyFlagName string
	keyFileFlagName    string
	PrivateKey         string
	KeyFile            string
}

const (
	defaultPrivateKeyFlagName = "private-key"
	defaultKeyFileFlagName    = "key-file"
)

func (pkf *PrivateKeyFlags) fillDefaultFlagNames() {
	if pkf.privateKeyFlagName == "" {
		pkf.privateKeyFlagName = defaultPrivateKeyFlagName
	}
	if pkf.keyFileFlagName == "" {
		pkf.keyFileFlagName = defaultKeyFileFlagName
	}
}

// AddToFlagSet registers the key flags on flags, usually the persistent
// flags of the root command
func (pkf *PrivateKeyFlags) AddToFlagSet(
	flags *pflag.FlagSet,
	goal string,
) {
	pkf.fillDefaultFlagNames()
	flags.StringVar(
		&pkf.PrivateKey,
		pkf.privateKeyFlagName,
		"",
		fmt.Sprintf("private key to use %s", goal),
	)
	flags.StringVar(
		&pkf.KeyFile,
		pkf.keyFileFlagName,
		"",
		fmt.Sprintf("file holding the hex private key to use %s", goal),
	)
}

// GetPrivateKey resolves the flags. When neither flag is given,
// fallbackPrivateKey (usually the PR_KEY setting) is returned.
func (pkf *PrivateKeyFlags) GetPrivateKey(
	fs afero.Fs,
	fallbackPrivateKey string,
) (string, error) {
	pkf.fillDefaultFlagNames()
	if pkf.PrivateKey != "" && pkf.KeyFile != "" {
		return "", fmt.Errorf("%s and %s are mutually exclusive flags",
			pkf.privateKeyFlagName,
			pkf.keyFileFlagName,
		)
	}
	if pkf.PrivateKey != "" {
		return pkf.PrivateKey, nil
	}
	if pkf.KeyFile != "" {
		bs, err := afero.ReadFile(fs, utils.ExpandHome(pkf.KeyFile))
		if err != nil {
			return "", fmt.Errorf("failure reading key file: %w", err)
		}
		return strings.TrimSpace(string(bs)), nil
	}
	return fallbackPrivateKey, nil
}
