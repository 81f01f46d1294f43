package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/origin-lookup/internal/app"
	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
	"github.com/oshokin/origin-lookup/internal/service/lookup"
	"github.com/oshokin/origin-lookup/internal/version"
)

const (
	flagName        = "name"
	flagID          = "id"
	flagRemid       = "remid"
	flagSID         = "sid"
	flagAccessToken = "access-token"
	flagOutput      = "output"
	flagConfig      = "config"
	flagEnvFile     = "env-file"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals // It is required to load credentials before the configuration is read.
	envFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "origin-lookup (--name NAME | --id ID[,ID...])",
		Short: "Look up Origin users by EA ID or by user ID.",
		Long: `Origin Lookup resolves EA IDs (display names) to Origin user IDs and back.

It authenticates with the "remid" and "sid" session cookies of an EA account,
mints an access token from them and keeps all three in a dotenv file so later
runs can reuse them. Run 'origin-lookup auth login' to harvest the cookies
through a browser.`,
		Example: `  origin-lookup --name w4rm1nd
  origin-lookup --id 2407904290
  origin-lookup --id 2407904290,1001223352890 -o json`,
		Version:          version.Full(),
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			query, err := bindFlagsToConfig(cmd.Flags(), appConfig)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRootCommand(cmd.Context(), appConfig, query)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		flagConfig,
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmd.PersistentFlags().StringVar(
		&envFilenameFromFlag,
		flagEnvFile,
		"",
		fmt.Sprintf("path to the dotenv file holding the credentials (default is '%s')",
			config.DefaultEnvFilename))

	addRootFlags(rootCmd.Flags())

	rootCmd.MarkFlagsMutuallyExclusive(flagName, flagID)
	rootCmd.MarkFlagsOneRequired(flagName, flagID)
}

func addRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		flagName,
		"n",
		"",
		"EA ID (display name) to look up, case-insensitive.")

	flags.StringSliceP(
		flagID,
		"i",
		nil,
		"user ID to look up; repeat the flag or separate several IDs with commas.")

	flags.String(
		flagRemid,
		"",
		"the 'remid' session cookie (overrides REMID).")

	flags.String(
		flagSID,
		"",
		"the 'sid' session cookie (overrides SID).")

	flags.String(
		flagAccessToken,
		"",
		"a pre-minted access token (overrides ACCESS_TOKEN); minted from the cookies when empty.")

	flags.StringP(
		flagOutput,
		"o",
		"",
		fmt.Sprintf("output format: %v.", config.OutputFormats))
}

// initConfig reads the settings with the dotenv credentials exported into the environment.
// The settings are read twice because the dotenv path itself may come from them.
func initConfig(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load configuration: %v", err)
	}

	envFile := cfg.EnvFile
	if envFilenameFromFlag != "" {
		envFile = envFilenameFromFlag
	}

	if err = config.LoadEnvFile(envFile); err != nil {
		logger.Fatalf(ctx, "Failed to load credentials: %v", err)
	}

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load configuration: %v", err)
	}

	appConfig.EnvFile = envFile

	if err = config.ValidateConfig(appConfig); err != nil {
		logger.Fatalf(ctx, "Invalid configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	if appConfig.ConfigFile != "" {
		logger.Debugf(ctx, "Configuration loaded from %s", appConfig.ConfigFile)
	}
}

// bindFlagsToConfig applies the flags that were set on top of the configuration,
// validates the result and builds the lookup query.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) (lookup.Query, error) {
	var query lookup.Query

	if flag := flags.Lookup(flagRemid); flag != nil && flag.Changed {
		cfg.Remid, _ = flags.GetString(flagRemid)
	}

	if flag := flags.Lookup(flagSID); flag != nil && flag.Changed {
		cfg.SID, _ = flags.GetString(flagSID)
	}

	if flag := flags.Lookup(flagAccessToken); flag != nil && flag.Changed {
		cfg.AccessToken, _ = flags.GetString(flagAccessToken)
	}

	if flag := flags.Lookup(flagOutput); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString(flagOutput)
	}

	if flag := flags.Lookup(flagName); flag != nil && flag.Changed {
		query.Name, _ = flags.GetString(flagName)
	}

	if flag := flags.Lookup(flagID); flag != nil && flag.Changed {
		query.IDs, _ = flags.GetStringSlice(flagID)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return query, err
	}

	if err := config.ValidateCredentials(cfg); err != nil {
		return query, err
	}

	return query, nil
}
