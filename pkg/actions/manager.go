// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package actions

import (
	"context"
	"fmt"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"go.uber.org/zap"
)

func (r *Runner) DeployTokenManager(ctx context.Context) error {
	salt, err := r.salt()
	if err != nil {
		return err
	}
	managerType, err := r.App.GetUint(constants.ConfigTokenManagerTypeKey, uint64(its.NativeInterchainToken), 8)
	if err != nil {
		return err
	}
	operator, err := r.App.GetAddress(constants.ConfigOperatorKey, its.DefaultTokenManagerOperator)
	if err != nil {
		return err
	}
	token, err := r.App.GetAddress(constants.ConfigTokenAddressKey, its.DefaultTokenManagerToken)
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "deploy the token manager")
	if err != nil {
		return err
	}
	defer closeFn()
	feeRequest, err := r.App.GetFeeRequest(network)
	if err != nil {
		return err
	}
	addrs, err := r.App.GetITSAddresses(network)
	if err != nil {
		return err
	}
	params := its.TokenManagerDeployParams{
		Salt:             &salt,
		DestinationChain: r.App.GetTargetChain(its.DefaultTokenManagerChain),
		Type:             its.TokenManagerType(managerType),
		Operator:         operator,
		Token:            token,
		FeeRequest:       feeRequest,
	}
	if err := r.confirm(fmt.Sprintf("deploy a %s token manager on %s", params.Type, params.DestinationChain)); err != nil {
		return err
	}
	result, err := its.DeployTokenManager(ctx, caller, r.App.GetEstimator(network), addrs, params)
	if err != nil {
		return err
	}
	result.Print(network)
	return nil
}

// GasEstimate only talks to the gas service, no key is needed
func (r *Runner) GasEstimate(ctx context.Context) error {
	network, err := r.App.GetNetwork()
	if err != nil {
		return err
	}
	req, err := r.App.GetFeeRequest(network)
	if err != nil {
		return err
	}
	result, err := its.EstimateGas(ctx, r.App.GetEstimator(network), req)
	if err != nil {
		return err
	}
	result.Print()
	return nil
}

func (r *Runner) DeployItsToken(ctx context.Context) error {
	artifactPath := r.App.GetArtifactPath()
	bytecode, err := contract.LoadArtifactBytecode(r.App.Fs, artifactPath)
	if err != nil {
		return err
	}
	book, err := r.App.LoadAddressBook()
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "deploy ItsToken")
	if err != nil {
		return err
	}
	defer closeFn()
	if err := r.confirm("deploy ItsToken on " + network.Name); err != nil {
		return err
	}
	r.App.Log.Info("deploying ItsToken",
		zap.String("artifact", artifactPath),
		zap.Int("bytecodeSize", len(bytecode)),
	)
	result, err := its.DeployItsToken(ctx, caller, book, network.Name, bytecode)
	if err != nil {
		return err
	}
	result.Print(network)
	ux.Logger.Info("address book %s updated", book.Path())
	return nil
}
