// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package actions

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/interchain-tools/its-cli/pkg/utils"
)

func (r *Runner) salt() ([32]byte, error) {
	salt, err := r.App.GetSalt()
	if err != nil {
		return [32]byte{}, err
	}
	if salt != nil {
		return *salt, nil
	}
	return utils.RandomSalt()
}

// address reads key. An interactive runner asks for it when nothing is set
// instead of falling back to defaultAddr.
func (r *Runner) address(key string, question string, defaultAddr common.Address) (common.Address, error) {
	if r.Interactive && r.App.Conf.GetConfigStringValue(key) == "" {
		return r.App.Prompt.CaptureAddress(question)
	}
	return r.App.GetAddress(key, defaultAddr)
}

func (r *Runner) InterchainTokenID(ctx context.Context) error {
	salt, err := r.salt()
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "compute the token id")
	if err != nil {
		return err
	}
	defer closeFn()
	addrs, err := r.App.GetITSAddresses(network)
	if err != nil {
		return err
	}
	result, err := its.InterchainTokenID(ctx, caller, addrs, salt)
	if err != nil {
		return err
	}
	result.Print()
	return nil
}

func (r *Runner) deployParams() (its.DeployParams, error) {
	params := its.DefaultDeployParams()
	salt, err := r.App.GetSalt()
	if err != nil {
		return params, err
	}
	params.Salt = salt
	params.Name = r.App.GetString(constants.ConfigTokenNameKey, params.Name)
	params.Symbol = r.App.GetString(constants.ConfigTokenSymbolKey, params.Symbol)
	decimals, err := r.App.GetUint(constants.ConfigDecimalsKey, uint64(params.Decimals), 8)
	if err != nil {
		return params, err
	}
	params.Decimals = uint8(decimals)
	params.InitialSupply, err = r.App.GetAmount(constants.ConfigSupplyKey, its.DefaultInitialSupply, params.Decimals)
	if err != nil {
		return params, err
	}
	params.Minter, err = r.App.GetAddress(constants.ConfigMinterKey, params.Minter)
	return params, err
}

func (r *Runner) RegisterAndDeploy(ctx context.Context) error {
	params, err := r.deployParams()
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "deploy the interchain token")
	if err != nil {
		return err
	}
	defer closeFn()
	addrs, err := r.App.GetITSAddresses(network)
	if err != nil {
		return err
	}
	if err := r.confirm(
		"deploy " + params.Name + " (" + params.Symbol + ") on " + network.Name,
	); err != nil {
		return err
	}
	result, err := its.RegisterAndDeploy(ctx, caller, addrs, params)
	if err != nil {
		return err
	}
	result.Print(network)
	return nil
}

func (r *Runner) DeployToRemoteChain(ctx context.Context) error {
	saltStr := r.App.GetString(constants.ConfigSaltKey, its.DefaultRemoteDeploySalt)
	salt, err := utils.ParseSalt(saltStr)
	if err != nil {
		return err
	}
	params := its.RemoteDeployParams{
		OriginChain:      r.App.GetString(constants.ConfigOriginChainKey, its.DefaultOriginChain),
		DestinationChain: r.App.GetTargetChain(its.DefaultRemoteChain),
		Salt:             salt,
	}
	network, caller, closeFn, err := r.connect(ctx, "deploy the remote interchain token")
	if err != nil {
		return err
	}
	defer closeFn()
	params.Minter, err = r.App.GetAddress(constants.ConfigMinterKey, caller.Address())
	if err != nil {
		return err
	}
	params.FeeRequest, err = r.App.GetFeeRequest(network)
	if err != nil {
		return err
	}
	addrs, err := r.App.GetITSAddresses(network)
	if err != nil {
		return err
	}
	if err := r.confirm("deploy the token on " + params.DestinationChain); err != nil {
		return err
	}
	result, err := its.DeployRemoteInterchainToken(ctx, caller, r.App.GetEstimator(network), addrs, params)
	if err != nil {
		return err
	}
	result.Print(network)
	return nil
}

func (r *Runner) TransferTokens(ctx context.Context) error {
	token, err := r.App.GetAddress(constants.ConfigTokenAddressKey, its.DefaultTokenAddress)
	if err != nil {
		return err
	}
	recipient, err := r.address(constants.ConfigRecipientKey, "Recipient address on the destination chain", its.DefaultRecipient)
	if err != nil {
		return err
	}
	decimals, err := r.App.GetUint(constants.ConfigDecimalsKey, uint64(its.DefaultTokenDecimals), 8)
	if err != nil {
		return err
	}
	amount, err := r.App.GetAmount(constants.ConfigAmountKey, its.DefaultTransferAmount, uint8(decimals))
	if err != nil {
		return err
	}
	metadata, err := r.App.GetBytes(constants.ConfigMetadataKey)
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "transfer tokens")
	if err != nil {
		return err
	}
	defer closeFn()
	feeRequest, err := r.App.GetFeeRequest(network)
	if err != nil {
		return err
	}
	params := its.TransferParams{
		Token:            token,
		DestinationChain: r.App.GetTargetChain(its.DefaultTransferChain),
		Recipient:        recipient,
		Amount:           amount,
		Metadata:         metadata,
		FeeRequest:       feeRequest,
	}
	if err := r.confirm(
		"transfer " + utils.FormatUnits(amount, uint8(decimals)) + " tokens to " + recipient.Hex() + " on " + params.DestinationChain,
	); err != nil {
		return err
	}
	result, err := its.InterchainTransfer(ctx, caller, r.App.GetEstimator(network), params)
	if err != nil {
		return err
	}
	result.Print(network)
	return nil
}

func (r *Runner) MintTokens(ctx context.Context) error {
	token, err := r.App.GetAddress(constants.ConfigTokenAddressKey, its.DefaultTokenAddress)
	if err != nil {
		return err
	}
	decimals, err := r.App.GetUint(constants.ConfigDecimalsKey, uint64(its.DefaultTokenDecimals), 8)
	if err != nil {
		return err
	}
	amount, err := r.App.GetAmount(constants.ConfigAmountKey, its.DefaultMintAmount, uint8(decimals))
	if err != nil {
		return err
	}
	network, caller, closeFn, err := r.connect(ctx, "mint tokens")
	if err != nil {
		return err
	}
	defer closeFn()
	recipient, err := r.App.GetAddress(constants.ConfigRecipientKey, caller.Address())
	if err != nil {
		return err
	}
	if err := r.confirm("mint " + utils.FormatUnits(amount, uint8(decimals)) + " tokens to " + recipient.Hex()); err != nil {
		return err
	}
	result, err := its.Mint(ctx, caller, its.MintParams{
		Token:     token,
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	result.Print(network)
	return nil
}
