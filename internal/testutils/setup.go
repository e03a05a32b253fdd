// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"context"
	"io"
	"testing"

	"github.com/interchain-tools/its-cli/internal/mocks"
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/config"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// first hardhat account
	TestPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	TestAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// TestApp is an app whose chain and gas service are mocks, writing to an
// in memory filesystem
type TestApp struct {
	*application.ITS
	Caller    *mocks.Caller
	Estimator *mocks.Estimator
	Prompter  *mocks.Prompter
	// Dials counts how many times a caller was requested
	Dials int
}

func SetupTestInTempDir(t *testing.T) *TestApp {
	testDir := t.TempDir()
	viper.Reset()
	t.Cleanup(viper.Reset)
	ux.NewUserLog(zap.NewNop(), io.Discard)

	ta := &TestApp{
		ITS:       application.New(),
		Caller:    &mocks.Caller{},
		Estimator: &mocks.Estimator{},
		Prompter:  &mocks.Prompter{},
	}
	ta.NewCaller = func(context.Context, models.Network, string) (contract.Caller, func(), error) {
		ta.Dials++
		return ta.Caller, func() {}, nil
	}
	ta.NewEstimator = func(models.Network) gas.Estimator {
		return ta.Estimator
	}
	ta.Setup(testDir, zap.NewNop(), config.New(), ta.Prompter, afero.NewMemMapFs())
	return ta
}
