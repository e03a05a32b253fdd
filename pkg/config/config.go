// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/models"
	"github.com/interchain-tools/its-cli/pkg/utils"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envBindings maps config keys to the environment variables that feed them
var envBindings = map[string]string{
	constants.ConfigNetworkKey:         constants.NetworkEnvVar,
	constants.ConfigRPCURLKey:          constants.RPCURLEnvVar,
	constants.ConfigPrivateKeyKey:      constants.PrivateKeyEnvVar,
	constants.ConfigAddressBookKey:     constants.AddressBookEnvVar,
	constants.ConfigAxelarAPIURLKey:    constants.AxelarAPIURLEnvVar,
	constants.ConfigEtherscanAPIKeyKey: constants.EtherscanAPIKeyVar,
	constants.ConfigFunctionKey:        constants.FunctionNameEnvVar,
	constants.ConfigTargetChainKey:     constants.TargetChainEnvVar,
	constants.ConfigSaltKey:            constants.SaltEnvVar,
	constants.ConfigTokenAddressKey:    constants.TokenAddressEnvVar,
	constants.ConfigRecipientKey:       constants.RecipientEnvVar,
	constants.ConfigAmountKey:          constants.AmountEnvVar,
	constants.ConfigArtifactPathKey:    constants.ArtifactPathEnvVar,
	constants.ConfigGasMultiplierKey:   constants.GasMultiplierEnvVar,
}

// flagKeys are config keys that have no environment variable but can be
// given as flags
var flagKeys = map[string]struct{}{
	constants.ConfigOriginChainKey:      {},
	constants.ConfigTokenNameKey:        {},
	constants.ConfigTokenSymbolKey:      {},
	constants.ConfigDecimalsKey:         {},
	constants.ConfigSupplyKey:           {},
	constants.ConfigMinterKey:           {},
	constants.ConfigMetadataKey:         {},
	constants.ConfigOperatorKey:         {},
	constants.ConfigTokenManagerTypeKey: {},
	constants.ConfigSourceChainKey:      {},
	constants.ConfigDestinationChainKey: {},
	constants.ConfigGasTokenKey:         {},
	constants.ConfigGasLimitKey:         {},
}

type Config struct{}

func New() *Config {
	return &Config{}
}

// BindEnv makes every known config key readable from its environment
// variable
func (*Config) BindEnv() error {
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// BindFlags lets the flags of the running command named after config keys
// take precedence over environment and config file
func (*Config) BindFlags(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		_, isEnvKey := envBindings[f.Name]
		_, isFlagKey := flagKeys[f.Name]
		if isEnvKey || isFlagKey {
			err = viper.BindPFlag(f.Name, f)
		}
	})
	return err
}

func (*Config) SetConfig(log *zap.Logger, s string) {
	viper.SetConfigType("json")
	d := filepath.Dir(s)
	viper.AddConfigPath(d)
	viper.SetConfigFile(s)
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found", zap.String("config-file", s))
	}
}

func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.GetConfigPath())
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}

// networkKey addresses a field under networks.<name> in the config file
func networkKey(name string, field string) string {
	return strings.Join([]string{constants.ConfigNetworksKey, strings.ToLower(name), field}, ".")
}

// GetNetwork resolves name against the static network table, applying
// whatever networks.<name> overrides the config file carries. A name the
// table does not know is accepted when the config file gives it an rpcUrl.
func (*Config) GetNetwork(name string) (models.Network, error) {
	network, err := models.GetNetwork(name)
	if err != nil {
		rpcURL := viper.GetString(networkKey(name, "rpcUrl"))
		if rpcURL == "" {
			return models.Network{}, fmt.Errorf("%w: %w", constants.ErrUnknownNetwork, err)
		}
		network = models.NewCustomNetwork(name, rpcURL)
	}
	if v := viper.GetString(networkKey(name, "rpcUrl")); v != "" {
		network.RPCURL = v
	}
	if v := viper.GetUint64(networkKey(name, "chainId")); v != 0 {
		network.ChainID = v
	}
	if v := viper.GetString(networkKey(name, "axelarChain")); v != "" {
		network.AxelarChain = v
	}
	if v := viper.GetString(networkKey(name, "gasToken")); v != "" {
		network.GasToken = v
	}
	if v := viper.GetString(networkKey(name, "explorerUrl")); v != "" {
		network.ExplorerURL = v
	}
	if viper.GetBool(networkKey(name, "mainnet")) {
		network.Kind = models.Mainnet
	}
	return network, nil
}
