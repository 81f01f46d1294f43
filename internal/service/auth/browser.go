package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"

	"github.com/oshokin/origin-lookup/internal/logger"
)

// initBrowser launches a visible browser on a throwaway profile and opens a stealth page.
func (s *ServiceImpl) initBrowser(ctx context.Context) error {
	logger.Debug(ctx, "Initializing browser")

	tempDir, err := os.MkdirTemp("", "origin-lookup-auth-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary user data directory: %w", err)
	}

	s.tempDir = tempDir

	logger.Debugf(ctx, "Using temporary profile directory: %s", tempDir)

	browserLauncher := launcher.New().
		Context(ctx).
		// User needs to see the browser to sign in.
		Headless(false).
		UserDataDir(tempDir)

	// Prefer the system Chrome; rod downloads Chromium otherwise.
	if chromePath, exists := launcher.LookPath(); exists {
		logger.Debugf(ctx, "Using system Chrome installation at: %s", chromePath)

		browserLauncher = browserLauncher.Bin(chromePath)
	} else {
		logger.Info(ctx, "System Chrome not found, downloading Chromium")
	}

	controlURL, err := browserLauncher.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	logger.Debugf(ctx, "Browser launched at: %s", controlURL)

	browserInstance := rod.New().ControlURL(controlURL)

	if logger.IsDebugLevel() {
		browserInstance = browserInstance.
			Trace(true).
			SlowMotion(browserSlowMotionDelay)
	}

	if err = browserInstance.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}

	s.browser = browserInstance

	s.page, err = stealth.Page(s.browser)
	if err != nil {
		return fmt.Errorf("failed to open stealth page: %w", err)
	}

	logger.Debug(ctx, "Browser initialized with stealth mode")

	return nil
}

// currentURL returns the page URL. A closed browser or page is reported as an error.
func (s *ServiceImpl) currentURL(ctx context.Context) (pageURL string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "Page info panic recovered: %v", r)

			err = ErrBrowserClosed
		}
	}()

	info, err := s.page.Info()
	if err != nil {
		return "", err
	}

	return info.URL, nil
}

// cleanup closes the browser and removes the temporary profile.
func (s *ServiceImpl) cleanup(ctx context.Context) {
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			logger.Debugf(ctx, "Browser close error (expected): %v", err)
		}
	}

	if s.tempDir != "" {
		time.Sleep(browserCleanupDelay)

		if err := os.RemoveAll(s.tempDir); err != nil {
			logger.Debugf(ctx, "Could not clean up temp directory %s: %v", s.tempDir, err)
		}
	}
}
