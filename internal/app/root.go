package app

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/oshokin/origin-lookup/internal/client/origin"
	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
	"github.com/oshokin/origin-lookup/internal/render"
	"github.com/oshokin/origin-lookup/internal/service/lookup"
	transport "github.com/oshokin/origin-lookup/internal/transport/http"
)

// ExecuteRootCommand looks the users up and prints them to stdout.
// Any failure is fatal.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, query lookup.Query) {
	if err := RunLookup(ctx, cfg, query, os.Stdout); err != nil {
		logger.Fatalf(ctx, "Lookup failed: %v", err)
	}
}

// RunLookup establishes a session, persists the credentials, runs the lookup and renders the result to out.
// The credentials are persisted again when the token was renewed during the lookup.
func RunLookup(ctx context.Context, cfg *config.Config, query lookup.Query, out io.Writer) error {
	httpClient := newHTTPClient(cfg)

	session, err := newSession(ctx, cfg, origin.NewTokenMinter(httpClient, cfg.AuthURL))
	if err != nil {
		return err
	}

	initialToken := session.Token()
	saveSessionCredentials(ctx, cfg, session)

	originClient, err := origin.NewClient(cfg, session, httpClient)
	if err != nil {
		return err
	}

	users, lookupErr := lookup.NewService(originClient).Lookup(ctx, query)

	if session.Token() != initialToken {
		logger.Debug(ctx, "Access token was renewed during the lookup")
		saveSessionCredentials(ctx, cfg, session)
	}

	if lookupErr != nil {
		return lookupErr
	}

	return render.Render(out, cfg.OutputFormat, users...)
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return transport.NewClient(transport.ClientOptions{
		Timeout:      cfg.ParsedRequestTimeout,
		MaxLogLength: cfg.ParsedMaxLogLength,
		UserAgent:    cfg.UserAgent,
	})
}

// newSession trusts a configured token and mints one otherwise.
func newSession(ctx context.Context, cfg *config.Config, minter origin.TokenMinter) (*origin.Session, error) {
	if cfg.AccessToken != "" {
		logger.Debug(ctx, "Using the configured access token")

		return origin.NewSessionWithToken(minter, cfg.Remid, cfg.SID, cfg.AccessToken), nil
	}

	logger.Debug(ctx, "No access token configured, minting one from the session cookies")

	return origin.NewSession(ctx, minter, cfg.Remid, cfg.SID)
}

// saveSessionCredentials merges the session's cookies and token into the dotenv file.
// A write failure does not stop the lookup.
func saveSessionCredentials(ctx context.Context, cfg *config.Config, session *origin.Session) {
	credentials := &config.Credentials{
		Remid:       session.Remid(),
		SID:         session.SID(),
		AccessToken: session.Token(),
	}

	if err := config.SaveCredentials(cfg.EnvFile, credentials); err != nil {
		logger.Warnf(ctx, "Failed to save credentials to %s: %v", cfg.EnvFile, err)

		return
	}

	logger.Debugf(ctx, "Credentials saved to %s", cfg.EnvFile)
}
