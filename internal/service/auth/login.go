package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
)

func printLoginInstructions(ctx context.Context) {
	logger.Info(ctx, "")
	logger.Info(ctx, "Please sign in to your EA account in the browser window:")
	logger.Info(ctx, "1. Enter your email or EA ID and password")
	logger.Info(ctx, "2. Complete two-factor verification if asked")
	logger.Info(ctx, "3. Do not close the browser, it closes by itself once the session cookies are set")
	logger.Info(ctx, "")
	logger.Infof(ctx, "Waiting up to %v for the sign-in to complete...", maxLoginWaitTime)
}

// waitForSessionCookies polls until the session cookies appear or the flow is abandoned.
func (s *ServiceImpl) waitForSessionCookies(ctx context.Context) (*config.Credentials, error) {
	var (
		deadline = time.After(maxLoginWaitTime)
		ticker   = time.NewTicker(loginPollInterval)
		lastURL  string
	)

	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, fmt.Errorf("%w: waited for %v", ErrLoginTimeout, maxLoginWaitTime)
		case <-ticker.C:
		}

		currentURL, err := s.currentURL(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBrowserClosed, err)
		}

		if currentURL != lastURL {
			logger.Debugf(ctx, "URL changed: %s", currentURL)

			lastURL = currentURL
		}

		if credentials := s.sessionCookies(ctx); credentials != nil {
			return credentials, nil
		}

		if err = validateLoginURL(currentURL); err != nil {
			return nil, err
		}
	}
}

// validateLoginURL checks that the page is still on an EA or Origin domain.
// Blank pages opened by the browser itself are allowed.
func validateLoginURL(currentURL string) error {
	if currentURL == "" || strings.HasPrefix(currentURL, "about:") {
		return nil
	}

	parsedURL, err := url.Parse(currentURL)
	if err != nil {
		return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
	}

	host := strings.ToLower(parsedURL.Hostname())
	for _, domain := range allowedLoginDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return nil
		}
	}

	return fmt.Errorf("%w to: %s", ErrNavigatedAway, currentURL)
}
