// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package tokencmd

import (
	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/its"
	"github.com/spf13/cobra"
)

// its token deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Register and deploy a new interchain token",
		Long: `Deploys a new interchain token through the Interchain Token Factory,
minting the initial supply to the minter. The token id, token address and
expected token manager address are printed together with the salt, which
is needed to deploy the token on other chains.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).RegisterAndDeploy)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addSaltFlag(cmd, "random")
	cmd.Flags().String(constants.ConfigTokenNameKey, "", "token name (default "+its.DefaultTokenName+")")
	cmd.Flags().String(constants.ConfigTokenSymbolKey, "", "token symbol (default "+its.DefaultTokenSymbol+")")
	cmd.Flags().String(constants.ConfigDecimalsKey, "", "token decimals (default 18)")
	cmd.Flags().String(constants.ConfigSupplyKey, "", "initial supply in tokens (default "+its.DefaultInitialSupply+")")
	cmd.Flags().String(constants.ConfigMinterKey, "", "minter and initial supply holder (default the signer)")
	return cmd
}

// its token deploy-remote
func newDeployRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-remote",
		Short: "Deploy an interchain token on a remote chain",
		Long: `Deploys the token registered with the given salt on the destination chain.
Twice the estimated cross chain gas fee is paid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).DeployToRemoteChain)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addSaltFlag(cmd, its.DefaultRemoteDeploySalt)
	addTargetChainFlag(cmd, its.DefaultRemoteChain)
	addGasFlags(cmd)
	cmd.Flags().String(constants.ConfigOriginChainKey, "", "chain the token was registered on (default "+its.DefaultOriginChain+")")
	cmd.Flags().String(constants.ConfigMinterKey, "", "minter on the remote chain (default the signer)")
	return cmd
}

// its token deploy-manager
func newDeployManagerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy-manager",
		Short: "Deploy a token manager for an existing token on a remote chain",
		Long: `Deploys a token manager through the Interchain Token Service, paying the
estimated cross chain gas fee. Manager types are 0 (native interchain
token), 1 (mint/burn from), 2 (lock/unlock), 3 (lock/unlock with fee) and
4 (mint/burn).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWith(cmd, (*actions.Runner).DeployTokenManager)
		},
		Args: cobrautils.ExactArgs(0),
	}
	addSaltFlag(cmd, "random")
	addTargetChainFlag(cmd, its.DefaultTokenManagerChain)
	addGasFlags(cmd)
	cmd.Flags().String(constants.ConfigTokenManagerTypeKey, "", "token manager type (default 0)")
	cmd.Flags().String(constants.ConfigOperatorKey, "", "token manager operator (default "+its.DefaultTokenManagerOperator.Hex()+")")
	cmd.Flags().String(constants.ConfigTokenAddressKey, "", "managed token (env TOKEN_ADDRESS, default "+its.DefaultTokenManagerToken.Hex()+")")
	return cmd
}
