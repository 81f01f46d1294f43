package http

import (
	"net/http"

	"github.com/oshokin/origin-lookup/internal/utils"
)

// UserAgentInjector is a http.RoundTripper that fills in the User-Agent header when a request has none.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
}

const userAgentHeader = "User-Agent"

// NewUserAgentInjector wraps next so that every request leaves with a User-Agent.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip injects the User-Agent header if it is missing and forwards the request.
// The caller's request is cloned rather than mutated, as required by http.RoundTripper.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(userAgentHeader) != "" {
		return t.next.RoundTrip(req)
	}

	injected := req.Clone(req.Context())
	injected.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())

	return t.next.RoundTrip(injected)
}
