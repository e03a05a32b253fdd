// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/interchain-tools/its-cli/pkg/actions"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/utils"
	"github.com/spf13/cobra"
)

// its contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the ItsToken contract and record it in the address book",
		Long: `Deploys the compiled ItsToken contract found at the artifact path and
records its address as <network>.itsToken in the address book.`,
		RunE: deploy,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().String(constants.ConfigArtifactPathKey, "", "compiled contract artifact (env ARTIFACT_PATH, default "+constants.DefaultArtifactPath+")")
	return cmd
}

func deploy(cmd *cobra.Command, _ []string) error {
	skipConfirm, err := cmd.Flags().GetBool(constants.SkipConfirmFlag)
	if err != nil {
		return err
	}
	ctx, cancel := utils.GetAPILargeContext()
	defer cancel()
	runner := &actions.Runner{
		App:         app,
		Interactive: true,
		SkipConfirm: skipConfirm,
	}
	return runner.DeployItsToken(ctx)
}
