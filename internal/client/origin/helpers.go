package origin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oshokin/origin-lookup/internal/logger"
)

// validatable is implemented by payloads that can tell a well-formed record from a stray document.
type validatable interface {
	validate() error
}

// authenticatedGet performs a lookup with the session's token and decodes the response into T.
//
// A transport-level failure (no HTTP response at all) is taken as a sign of a stale token:
// the token is renewed and the request is retried exactly once, and the retry's outcome is final.
// If the renewal fails, the original transport error is returned.
// Any HTTP response, whatever its status, is decoded as-is and never retried;
// a body that is not a complete user record fails with ErrDecode.
//
//nolint:revive // Context is not the first argument because Go methods cannot be generic.
func authenticatedGet[T any](
	c *ClientImpl,
	ctx context.Context,
	operation string,
	rawQuery string,
) (*T, error) {
	endpoint, err := url.Parse(c.usersURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid lookup URL: %w", operation, err)
	}

	if endpoint.RawQuery != "" {
		endpoint.RawQuery += "&"
	}

	endpoint.RawQuery += rawQuery

	route := endpoint.String()
	staleToken := c.session.Token()

	response, err := c.get(ctx, route, staleToken)
	if err != nil {
		// A cancelled or timed out caller says nothing about the token.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, operation, route, err)
		}

		logger.Warnf(ctx, "%s failed, renewing access token and retrying once: %v", operation, err)

		if renewErr := c.session.RenewToken(ctx, staleToken); renewErr != nil {
			logger.Warnf(ctx, "Failed to renew access token: %v", renewErr)

			return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, operation, route, err)
		}

		response, err = c.get(ctx, route, c.session.Token())
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s (retried with renewed token): %w", ErrTransport, operation, route, err)
		}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// HTTP-level rejections are passed through to the decoder as well.
	logger.DebugKV(ctx, "Lookup answered", "operation", operation, "status", response.StatusCode)

	var result T
	if err = c.decoder.Decode(response.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: %s %s (HTTP %d): %w", ErrDecode, operation, route, response.StatusCode, err)
	}

	if v, ok := any(&result).(validatable); ok {
		if err = v.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s %s (HTTP %d): %w", ErrDecode, operation, route, response.StatusCode, err)
		}
	}

	return &result, nil
}

// get issues one GET with the given token.
func (c *ClientImpl) get(ctx context.Context, route, token string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set(authTokenHeader, token)
	request.Header.Set(acceptHeader, c.decoder.MediaType())

	return c.httpClient.Do(request)
}
