package app

import (
	"context"
	"fmt"

	"github.com/oshokin/origin-lookup/internal/client/origin"
	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
	"github.com/oshokin/origin-lookup/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It opens a browser, waits for the user to sign in, verifies the harvested cookies
// by minting a token and saves all three values to the dotenv file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	authService, err := auth.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
		return
	}

	credentials, err := authService.LoginAndExtractCredentials(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	if err = CompleteLogin(ctx, cfg, credentials); err != nil {
		logger.Fatalf(ctx, "%v", err)
		return
	}

	logger.Infof(ctx, "Credentials saved to %s", cfg.EnvFile)
	logger.Info(ctx, "Authentication complete! You can now look users up:")
	logger.Info(ctx, "origin-lookup --name w4rm1nd")
}

// CompleteLogin mints a token from the harvested cookies and persists the credentials.
// Nothing is written when the cookies cannot mint a token.
func CompleteLogin(ctx context.Context, cfg *config.Config, credentials *config.Credentials) error {
	minter := origin.NewTokenMinter(newHTTPClient(cfg), cfg.AuthURL)

	session, err := origin.NewSession(ctx, minter, credentials.Remid, credentials.SID)
	if err != nil {
		return fmt.Errorf("harvested cookies were rejected: %w", err)
	}

	credentials.AccessToken = session.Token()

	if err = config.SaveCredentials(cfg.EnvFile, credentials); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	return nil
}
