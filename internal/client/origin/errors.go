package origin

import "errors"

var (
	// ErrTransport indicates that a request could not be completed (connection, DNS, timeout).
	ErrTransport = errors.New("transport error")
	// ErrAuth indicates that an access token could not be minted from the session cookies.
	ErrAuth = errors.New("authentication failed")
	// ErrDecode indicates that a response body does not match the expected shape.
	ErrDecode = errors.New("failed to decode response")
	// ErrNotFound indicates that a lookup by ID returned no users.
	ErrNotFound = errors.New("user not found")
	// ErrNoUserIDs indicates that a lookup by IDs was requested without any ID.
	ErrNoUserIDs = errors.New("at least one user ID is required")
	// ErrUnexpectedHTTPStatus indicates that the mint endpoint answered with a non-2xx status.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyAccessToken indicates that the mint endpoint answered without an access token.
	ErrEmptyAccessToken = errors.New("access token is empty")
)
