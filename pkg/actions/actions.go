// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package actions

import (
	"context"

	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/dispatcher"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/prompts"
	"go.uber.org/zap"
)

// action names, as accepted by FUNCTION_NAME
const (
	InterchainTokenIDName   = "interchainTokenId"
	RegisterAndDeployName   = "registerAndDeploy"
	DeployToRemoteChainName = "deployToRemoteChain"
	TransferTokensName      = "transferTokens"
	MintTokensName          = "mintTokens"
	DeployTokenManagerName  = "deployTokenManager"
	GasEstimateName         = "gasEstimate"
	DeployItsTokenName      = "deployItsToken"
)

// Runner executes the token operations with parameters taken from the app
// settings. Every dependency is built on demand.
type Runner struct {
	App *application.ITS
	// Interactive enables prompting for a missing key and confirming
	// before anything is signed
	Interactive bool
	SkipConfirm bool
}

func NewDispatcher(r *Runner) *dispatcher.Dispatcher {
	return dispatcher.New().
		Register(InterchainTokenIDName, r.InterchainTokenID).
		Register(RegisterAndDeployName, r.RegisterAndDeploy).
		Register(DeployToRemoteChainName, r.DeployToRemoteChain).
		Register(TransferTokensName, r.TransferTokens).
		Register(MintTokensName, r.MintTokens).
		Register(DeployTokenManagerName, r.DeployTokenManager).
		Register(GasEstimateName, r.GasEstimate).
		Register(DeployItsTokenName, r.DeployItsToken)
}

// connect resolves the network and binds the signer to it
func (r *Runner) connect(ctx context.Context, goal string) (models.Network, contract.Caller, func(), error) {
	network, err := r.App.GetNetwork()
	if err != nil {
		return models.Network{}, nil, nil, err
	}
	caller, closeFn, err := r.App.GetCaller(ctx, network, r.Interactive, goal)
	if err != nil {
		return models.Network{}, nil, nil, err
	}
	r.App.Log.Info("connected",
		zap.String("network", network.Name),
		zap.String("signer", caller.Address().Hex()),
	)
	return network, caller, closeFn, nil
}

func (r *Runner) confirm(goal string) error {
	if !r.Interactive {
		return nil
	}
	return prompts.ConfirmTransaction(r.App.Prompt, r.SkipConfirm, goal)
}
