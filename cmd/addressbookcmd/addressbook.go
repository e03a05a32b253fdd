// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package addressbookcmd

import (
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.ITS

// its addressbook
func NewCmd(injectedApp *application.ITS) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "addressbook",
		Aliases: []string{"book"},
		Short:   "Inspect and edit the address book",
		Long: `The addressbook command suite reads and writes the JSON file holding the
deployed contract addresses per network. Keys have the form
<network>.<contract>, for example sepolia.itsToken.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// addressbook get
	cmd.AddCommand(newGetCmd())
	// addressbook set
	cmd.AddCommand(newSetCmd())
	// addressbook list
	cmd.AddCommand(newListCmd())
	return cmd
}
