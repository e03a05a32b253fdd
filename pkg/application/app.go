// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/interchain-tools/its-cli/pkg/addressbook"
	"github.com/interchain-tools/its-cli/pkg/config"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/gas"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/prompts"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// CallerFactory binds a signer to the network's endpoint. The returned
// function releases the connection.
type CallerFactory func(ctx context.Context, network models.Network, privateKey string) (contract.Caller, func(), error)

// EstimatorFactory returns the gas fee estimator for a network
type EstimatorFactory func(network models.Network) gas.Estimator

type ITS struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Fs      afero.Fs

	NewCaller    CallerFactory
	NewEstimator EstimatorFactory
}

func New() *ITS {
	return &ITS{}
}

func (app *ITS) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Fs = fs
	if app.NewCaller == nil {
		app.NewCaller = app.dialCaller
	}
	if app.NewEstimator == nil {
		app.NewEstimator = app.axelarEstimator
	}
}

func (app *ITS) GetBaseDir() string {
	return app.baseDir
}

func (app *ITS) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *ITS) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *ITS) dialCaller(ctx context.Context, network models.Network, privateKey string) (contract.Caller, func(), error) {
	if network.RPCURL == "" {
		return nil, nil, fmt.Errorf("%w %s", constants.ErrNoRPCEndpoint, network.Name)
	}
	app.Log.Debug("dialing", zap.String("network", network.Name), zap.String("rpc", network.RPCURL))
	client, err := contract.NewClient(ctx, network.RPCURL, privateKey, network.ChainID)
	if err != nil {
		return nil, nil, err
	}
	client.ShowProgress = true
	return client, client.Close, nil
}

func (app *ITS) axelarEstimator(network models.Network) gas.Estimator {
	return gas.NewAxelarClient(
		network.AxelarEnvironment(),
		app.Conf.GetConfigStringValue(constants.ConfigAxelarAPIURLKey),
		app.Log,
	)
}

// GetNetwork resolves the selected network, with --rpc/RPC_URL replacing
// its endpoint
func (app *ITS) GetNetwork() (models.Network, error) {
	name := app.Conf.GetConfigStringValue(constants.ConfigNetworkKey)
	if name == "" {
		name = constants.DefaultNetwork
	}
	rpcURL := app.Conf.GetConfigStringValue(constants.ConfigRPCURLKey)
	network, err := app.Conf.GetNetwork(name)
	if err != nil {
		if rpcURL == "" {
			return models.Network{}, err
		}
		network = models.NewCustomNetwork(name, rpcURL)
	}
	if rpcURL != "" {
		if err := utils.ValidateURLFormat(rpcURL); err != nil {
			return models.Network{}, fmt.Errorf("invalid rpc url %q: %w", rpcURL, err)
		}
		network.RPCURL = rpcURL
	}
	return network, nil
}

// GetPrivateKey returns the configured signer key. When none is configured
// and prompt is set, the user is asked for one.
func (app *ITS) GetPrivateKey(prompt bool, goal string) (string, error) {
	key := app.Conf.GetConfigStringValue(constants.ConfigPrivateKeyKey)
	if key != "" {
		return key, nil
	}
	if !prompt || app.Prompt == nil {
		return "", constants.ErrNoPrivateKey
	}
	return prompts.PromptPrivateKey(app.Prompt, goal)
}

// GetCaller binds the configured signer to network
func (app *ITS) GetCaller(ctx context.Context, network models.Network, prompt bool, goal string) (contract.Caller, func(), error) {
	key, err := app.GetPrivateKey(prompt, goal)
	if err != nil {
		return nil, nil, err
	}
	return app.NewCaller(ctx, network, key)
}

func (app *ITS) GetEstimator(network models.Network) gas.Estimator {
	return app.NewEstimator(network)
}

func (app *ITS) GetAddressBookPath() string {
	if path := app.Conf.GetConfigStringValue(constants.ConfigAddressBookKey); path != "" {
		return utils.ExpandHome(path)
	}
	return constants.DefaultAddressBook
}

func (app *ITS) LoadAddressBook() (*addressbook.AddressBook, error) {
	return addressbook.Load(app.Fs, app.GetAddressBookPath())
}

func (app *ITS) GetArtifactPath() string {
	if path := app.Conf.GetConfigStringValue(constants.ConfigArtifactPathKey); path != "" {
		return utils.ExpandHome(path)
	}
	return constants.DefaultArtifactPath
}

// GetITSAddresses is the ITS deployment for network, as overridden by the
// address book
func (app *ITS) GetITSAddresses(network models.Network) (its.Addresses, error) {
	book, err := app.LoadAddressBook()
	if err != nil {
		return its.Addresses{}, err
	}
	return its.ResolveAddresses(book, network.Name)
}

// GetSalt returns the configured salt, or nil when none is
func (app *ITS) GetSalt() (*[32]byte, error) {
	s := app.Conf.GetConfigStringValue(constants.ConfigSaltKey)
	if s == "" {
		return nil, nil
	}
	salt, err := utils.ParseSalt(s)
	if err != nil {
		return nil, err
	}
	return &salt, nil
}

// GetAddress reads an address valued key, falling back to defaultAddr
func (app *ITS) GetAddress(key string, defaultAddr common.Address) (common.Address, error) {
	s := app.Conf.GetConfigStringValue(key)
	if s == "" {
		return defaultAddr, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w %q for %s", constants.ErrInvalidAddress, s, key)
	}
	return common.HexToAddress(s), nil
}

// GetString reads key, falling back to defaultValue
func (app *ITS) GetString(key string, defaultValue string) string {
	if v := app.Conf.GetConfigStringValue(key); v != "" {
		return v
	}
	return defaultValue
}

// GetUint reads an unsigned integer key no larger than bitSize bits
func (app *ITS) GetUint(key string, defaultValue uint64, bitSize int) (uint64, error) {
	s := app.Conf.GetConfigStringValue(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

// GetAmount reads a token amount key, in base units of a token with the
// given decimals
func (app *ITS) GetAmount(key string, defaultAmount string, decimals uint8) (*big.Int, error) {
	return utils.ParseUnits(app.GetString(key, defaultAmount), decimals)
}

// GetBytes reads a 0x prefixed hex key
func (app *ITS) GetBytes(key string) ([]byte, error) {
	s := app.GetString(key, "0x")
	bs, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return bs, nil
}

// GetTargetChain is the destination chain name, TARGET_CHAIN when set
func (app *ITS) GetTargetChain(defaultChain string) string {
	return app.GetString(constants.ConfigTargetChainKey, defaultChain)
}

var errInvalidMultiplier = errors.New("gas multiplier must be a positive number")

// GetFeeRequest is the gas quote request for a message sent from network.
// The network's Axelar chain and gas token replace the defaults.
func (app *ITS) GetFeeRequest(network models.Network) (gas.FeeRequest, error) {
	req := gas.DefaultFeeRequest()
	if network.AxelarChain != "" {
		req.SourceChain = network.AxelarChain
	}
	if network.GasToken != "" {
		req.GasToken = network.GasToken
	}
	req.SourceChain = app.GetString(constants.ConfigSourceChainKey, req.SourceChain)
	req.DestinationChain = app.GetString(constants.ConfigDestinationChainKey, req.DestinationChain)
	req.GasToken = app.GetString(constants.ConfigGasTokenKey, req.GasToken)
	gasLimit, err := app.GetUint(constants.ConfigGasLimitKey, req.GasLimit, 64)
	if err != nil {
		return gas.FeeRequest{}, err
	}
	req.GasLimit = gasLimit
	if s := app.Conf.GetConfigStringValue(constants.ConfigGasMultiplierKey); s != "" {
		multiplier, err := strconv.ParseFloat(s, 64)
		if err != nil || multiplier <= 0 {
			return gas.FeeRequest{}, fmt.Errorf("%w, got %q", errInvalidMultiplier, s)
		}
		req.GasMultiplier = multiplier
	}
	return req, nil
}
