// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	CLIName     = "its"
	BaseDirName = ".its-cli"
	LogDir      = "logs"
	LogFileName = "its.log"

	ConfigFileName        = "config.json"
	DefaultAddressBook    = "deployments.json"
	DefaultNetwork        = "dev"
	DefaultArtifactPath   = "artifacts/contracts/ItsToken.sol/ItsToken.json"
	ItsTokenAddressBookID = "itsToken"

	WriteReadReadPerms = 0o644
	DefaultPerms755    = 0o755

	APIRequestTimeout      = 30 * time.Second
	APIRequestLargeTimeout = 2 * time.Minute

	// log file rotation
	MaxLogFileSize   = 50
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 7 // days

	DefaultLogLevel = "info"

	// environment variables read by the run command and the config layer
	PrivateKeyEnvVar    = "PR_KEY"
	NetworkEnvVar       = "NETWORK"
	RPCURLEnvVar        = "RPC_URL"
	FunctionNameEnvVar  = "FUNCTION_NAME"
	TargetChainEnvVar   = "TARGET_CHAIN"
	AxelarAPIURLEnvVar  = "AXELAR_API_URL"
	EtherscanAPIKeyVar  = "ETHERSCAN_API_KEY"
	SaltEnvVar          = "SALT"
	TokenAddressEnvVar  = "TOKEN_ADDRESS"
	RecipientEnvVar     = "RECIPIENT"
	AmountEnvVar        = "AMOUNT"
	ArtifactPathEnvVar  = "ARTIFACT_PATH"
	AddressBookEnvVar   = "ADDRESS_BOOK"
	GasMultiplierEnvVar = "GAS_MULTIPLIER"

	// config keys
	ConfigNetworkKey         = "network"
	ConfigRPCURLKey          = "rpc-url"
	ConfigPrivateKeyKey      = "private-key"
	ConfigAddressBookKey     = "address-book"
	ConfigAxelarAPIURLKey    = "axelar-api-url"
	ConfigEtherscanAPIKeyKey = "etherscan-api-key"
	ConfigNetworksKey        = "networks"
	ConfigLogLevelKey        = "log-level"
	ConfigFunctionKey        = "function"
	ConfigTargetChainKey     = "target-chain"
	ConfigSaltKey            = "salt"
	ConfigTokenAddressKey    = "token-address"
	ConfigRecipientKey       = "recipient"
	ConfigAmountKey          = "amount"
	ConfigArtifactPathKey    = "artifact-path"
	ConfigGasMultiplierKey   = "gas-multiplier"

	// keys only set through flags or the config file
	ConfigOriginChainKey      = "origin-chain"
	ConfigTokenNameKey        = "name"
	ConfigTokenSymbolKey      = "symbol"
	ConfigDecimalsKey         = "decimals"
	ConfigSupplyKey           = "supply"
	ConfigMinterKey           = "minter"
	ConfigMetadataKey         = "metadata"
	ConfigOperatorKey         = "operator"
	ConfigTokenManagerTypeKey = "token-manager-type"
	ConfigSourceChainKey      = "source-chain"
	ConfigDestinationChainKey = "destination-chain"
	ConfigGasTokenKey         = "gas-token"
	ConfigGasLimitKey         = "gas-limit"

	SkipConfirmFlag = "skip-confirm"

	// address book contract ids for the ITS deployment
	InterchainTokenServiceID = "interchainTokenService"
	InterchainTokenFactoryID = "interchainTokenFactory"

	AxelarTestnetAPIURL = "https://testnet.api.gmp.axelarscan.io"
	AxelarMainnetAPIURL = "https://api.gmp.axelarscan.io"
)
