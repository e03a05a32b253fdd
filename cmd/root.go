// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/interchain-tools/its-cli/cmd/addressbookcmd"
	"github.com/interchain-tools/its-cli/cmd/contractcmd"
	"github.com/interchain-tools/its-cli/cmd/gascmd"
	"github.com/interchain-tools/its-cli/cmd/networkcmd"
	"github.com/interchain-tools/its-cli/cmd/runcmd"
	"github.com/interchain-tools/its-cli/cmd/tokencmd"
	"github.com/interchain-tools/its-cli/pkg/application"
	"github.com/interchain-tools/its-cli/pkg/cobrautils"
	"github.com/interchain-tools/its-cli/pkg/config"
	"github.com/interchain-tools/its-cli/pkg/constants"
	"github.com/interchain-tools/its-cli/pkg/contract"
	"github.com/interchain-tools/its-cli/pkg/prompts"
	"github.com/interchain-tools/its-cli/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.ITS

	logLevel   string
	Version    = ""
	cfgFile    string
	keyFlags   contract.PrivateKeyFlags
	networkArg string
	rpcURL     string
	bookPath   string
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: constants.CLIName,
		Long: `its operates tokens on the Axelar Interchain Token Service.

It computes interchain token ids, deploys interchain tokens locally and on
remote chains, transfers and mints them, quotes cross chain gas through the
Axelar GMP API, and deploys the ItsToken contract recording its address in
a JSON address book.

Settings are read from flags, then environment (PR_KEY, NETWORK, RPC_URL,
TARGET_CHAIN, ...), then the config file.`,
		PersistentPreRunE: createApp,
		PersistentPostRun: closeLogs,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobrautils.ConfigureRootCmd(rootCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.its-cli/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevelKey, constants.DefaultLogLevel, "log level for the log file")
	rootCmd.PersistentFlags().StringVar(&networkArg, "network", "", fmt.Sprintf("network to operate on (default %s)", constants.DefaultNetwork))
	rootCmd.PersistentFlags().StringVar(&rpcURL, "rpc", "", "rpc endpoint, replaces the one of the network")
	rootCmd.PersistentFlags().StringVar(&bookPath, "address-book", "", fmt.Sprintf("address book file (default %s)", constants.DefaultAddressBook))
	rootCmd.PersistentFlags().Bool(constants.SkipConfirmFlag, false, "do not ask for confirmation before sending transactions")
	keyFlags.AddToFlagSet(rootCmd.PersistentFlags(), "to sign transactions")

	// add sub commands
	rootCmd.AddCommand(runcmd.NewCmd(app))
	rootCmd.AddCommand(tokencmd.NewCmd(app))
	rootCmd.AddCommand(gascmd.NewCmd(app))
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(addressbookcmd.NewCmd(app))
	rootCmd.AddCommand(networkcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	cf := config.New()
	app.Setup(baseDir, log, cf, prompts.NewPrompter(), afero.NewOsFs())
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)

	if err := initConfig(cmd); err != nil {
		return err
	}
	log.Debug("starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("version", Version),
		zap.String("baseDir", app.GetBaseDir()),
		zap.String("logDir", app.GetLogDir()),
		zap.Bool("configFile", app.Conf.ConfigFileExists()),
		zap.Bool("privateKey", app.Conf.ConfigValueIsSet(constants.ConfigPrivateKeyKey)),
	)
	return nil
}

// setupEnv creates the base dir if needed
func setupEnv() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get the home dir %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(homeDir, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	// some logging config params
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(writer),
		level,
	)
	return zap.New(core).Named(constants.CLIName), nil
}

func closeLogs(*cobra.Command, []string) {
	if app != nil && app.Log != nil {
		_ = app.Log.Sync()
	}
}

// initConfig reads in config file, environment and global flags, in
// increasing order of precedence
func initConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		// Use config file from the flag.
		app.Conf.SetConfig(app.Log, cfgFile)
	} else {
		app.Conf.SetConfig(app.Log, app.GetConfigPath())
	}
	if err := app.Conf.BindEnv(); err != nil {
		return err
	}
	globals := map[string]string{
		constants.ConfigNetworkKey:     "network",
		constants.ConfigRPCURLKey:      "rpc",
		constants.ConfigAddressBookKey: "address-book",
	}
	for key, flag := range globals {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	if err := app.Conf.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	key, err := keyFlags.GetPrivateKey(app.Fs, "")
	if err != nil {
		return err
	}
	if key != "" {
		viper.Set(constants.ConfigPrivateKeyKey, key)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	cobrautils.HandleErrors(err)
}
