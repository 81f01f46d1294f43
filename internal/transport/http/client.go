package http

import (
	"net/http"
	"time"

	"github.com/oshokin/origin-lookup/internal/utils"
)

// ClientOptions configures NewClient.
type ClientOptions struct {
	// Timeout bounds every request. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxLogLength limits debug dumps. Zero means DefaultMaxLogLength.
	MaxLogLength uint64
	// UserAgent overrides DefaultUserAgent when not empty.
	UserAgent string
	// Transport is the innermost round tripper. Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// NewClient builds the HTTP client shared by the token minter and the lookup client:
// User-Agent injection on top of debug logging on top of the base transport.
func NewClient(options ClientOptions) *http.Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := options.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &http.Client{
		Transport: NewUserAgentInjector(
			NewLogTransport(base, options.MaxLogLength),
			utils.NewStaticUserAgentProvider(options.UserAgent, DefaultUserAgent)),
		Timeout: timeout,
	}
}
