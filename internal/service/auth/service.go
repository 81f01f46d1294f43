package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"

	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
)

const (
	// browserSlowMotionDelay is the delay between browser actions in debug mode.
	browserSlowMotionDelay = 200 * time.Millisecond

	// eaLoginURL is the page the browser opens; it redirects to the EA sign-in form.
	eaLoginURL = "https://www.ea.com/login"

	// eaAccountsURL is the identity provider origin the session cookies belong to.
	eaAccountsURL = "https://accounts.ea.com/"

	// remidCookieName is the long-lived "remember me" session cookie.
	remidCookieName = "remid"
	// sidCookieName is the session ID cookie.
	sidCookieName = "sid"

	// loginPollInterval is the interval between cookie checks.
	loginPollInterval = 1 * time.Second

	// maxLoginWaitTime is the maximum time to wait for the user to sign in.
	maxLoginWaitTime = 10 * time.Minute

	// browserCleanupDelay gives Chrome time to release file locks before the profile is removed.
	browserCleanupDelay = 500 * time.Millisecond
)

// allowedLoginDomains lists the domains the sign-in flow may visit (subdomains included).
//
//nolint:gochecknoglobals // Read-only lookup table.
var allowedLoginDomains = []string{"ea.com", "origin.com"}

var (
	// ErrLoginTimeout is returned when login takes too long.
	ErrLoginTimeout = errors.New("login timeout exceeded")

	// ErrBrowserClosed is returned when the browser is closed by the user.
	ErrBrowserClosed = errors.New("browser was closed by user")

	// ErrNavigatedAway is returned when the user leaves the EA and Origin domains.
	ErrNavigatedAway = errors.New("user navigated away from login flow")
)

// Service provides browser-based authentication.
type Service interface {
	// LoginAndExtractCredentials opens a browser, waits for the user to sign in
	// and returns the harvested session cookies.
	LoginAndExtractCredentials(ctx context.Context) (*config.Credentials, error)
}

// ServiceImpl drives a go-rod browser through the EA sign-in flow.
type ServiceImpl struct {
	cfg     *config.Config
	browser *rod.Browser
	page    *rod.Page
	// tempDir stores the temporary profile directory for cleanup.
	tempDir string
}

// NewService creates a new browser authentication service.
func NewService(cfg *config.Config) (*ServiceImpl, error) {
	return &ServiceImpl{
		cfg: cfg,
	}, nil
}

// LoginAndExtractCredentials opens a browser, waits for the user to sign in
// and returns the harvested session cookies. The access token is left empty.
func (s *ServiceImpl) LoginAndExtractCredentials(ctx context.Context) (*config.Credentials, error) {
	logger.Info(ctx, "Starting browser-based authentication")

	if err := s.initBrowser(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	defer s.cleanup(ctx)

	if err := s.page.Context(ctx).Navigate(eaLoginURL); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", eaLoginURL, err)
	}

	printLoginInstructions(ctx)

	credentials, err := s.waitForSessionCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	logger.Info(ctx, "Session cookies extracted successfully")

	return credentials, nil
}
