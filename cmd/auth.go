package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/origin-lookup/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage the EA session used for lookups.

Use 'auth login' to sign in through a browser and store the session cookies automatically.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to EA and store the session cookies",
		Long: `Opens a browser window for you to sign in to your EA account.

The login process:
1. Browser opens at https://www.ea.com/login
2. Enter your email or EA ID and password
3. Complete two-factor verification if asked
4. Wait for the browser to close by itself

The "remid" and "sid" cookies are then read from the browser, checked by
minting an access token, and saved with the token to the dotenv file
(default .env). Lookups pick them up from there:
origin-lookup --name w4rm1nd`,
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authLoginCmd)
	rootCmd.AddCommand(authCmd)
}
