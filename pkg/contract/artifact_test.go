// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadArtifactBytecode(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "hardhat/ItsToken.json", []byte(`{"contractName":"ItsToken","bytecode":"0x6080604052"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "foundry/ItsToken.json", []byte(`{"bytecode":{"object":"0x6080604052"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "solc/ItsToken.bin", []byte("6080604052\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "empty/ItsToken.json", []byte(`{"bytecode":"0x"}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "broken/ItsToken.json", []byte(`{"bytecode":`), 0o644))

	expected := []byte{0x60, 0x80, 0x60, 0x40, 0x52}
	for _, path := range []string{"hardhat/ItsToken.json", "foundry/ItsToken.json", "solc/ItsToken.bin"} {
		t.Run(path, func(t *testing.T) {
			bs, err := LoadArtifactBytecode(fs, path)
			require.NoError(t, err)
			require.Equal(t, expected, bs)
		})
	}

	_, err := LoadArtifactBytecode(fs, "empty/ItsToken.json")
	require.ErrorContains(t, err, "empty bytecode")

	_, err = LoadArtifactBytecode(fs, "broken/ItsToken.json")
	require.ErrorContains(t, err, "invalid contract artifact")

	_, err = LoadArtifactBytecode(fs, "missing.json")
	require.ErrorContains(t, err, "failure reading contract artifact")
}
