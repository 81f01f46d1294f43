package auth

import (
	"context"

	"github.com/go-rod/rod/lib/proto"

	"github.com/oshokin/origin-lookup/internal/config"
	"github.com/oshokin/origin-lookup/internal/logger"
)

// sessionCookies reads the EA session cookies from the browser.
// It returns nil until both cookies are set.
func (s *ServiceImpl) sessionCookies(ctx context.Context) *config.Credentials {
	defer func() {
		if r := recover(); r != nil {
			logger.Debugf(ctx, "Cookie read panic recovered: %v", r)
		}
	}()

	cookies, err := s.page.Cookies([]string{eaAccountsURL})
	if err != nil {
		logger.Debugf(ctx, "Failed to read cookies: %v", err)

		return nil
	}

	return findSessionCookies(cookies)
}

// findSessionCookies picks remid and sid out of a cookie jar.
func findSessionCookies(cookies []*proto.NetworkCookie) *config.Credentials {
	var credentials config.Credentials

	for _, cookie := range cookies {
		if cookie == nil || cookie.Value == "" {
			continue
		}

		switch cookie.Name {
		case remidCookieName:
			credentials.Remid = cookie.Value
		case sidCookieName:
			credentials.SID = cookie.Value
		}
	}

	if credentials.Remid == "" || credentials.SID == "" {
		return nil
	}

	return &credentials
}
