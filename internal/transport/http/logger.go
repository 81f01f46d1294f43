package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/oshokin/origin-lookup/internal/logger"
	"github.com/oshokin/origin-lookup/internal/utils"
)

// LogTransport is a custom http.RoundTripper that logs HTTP requests and responses at debug level.
// Every round trip gets its own trace ID so a request, its failure and its retry can be told apart.
// Credential headers are masked before dumping.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of logged request/response data.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// sensitiveHeaders are masked in request dumps.
//
//nolint:gochecknoglobals // Immutable lookup table.
var sensitiveHeaders = []string{"Authtoken", "Cookie", "Authorization"}

// NewLogTransport creates and returns a new instance of LogTransport.
// A zero maxLogLength defaults to DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := logger.WithKV(req.Context(), "trace_id", uuid.NewString())

	requestDump := t.dumpRequest(req)
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s after %s | Error: %v", req.Method, req.URL.Redacted(), duration, err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	size := "unknown size"
	if resp.ContentLength >= 0 {
		size = humanize.Bytes(uint64(resp.ContentLength))
	}

	logger.Debugf(ctx, "%s %s [%d] %s, %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, size, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	masked := req.Clone(req.Context())

	for _, header := range sensitiveHeaders {
		if value := masked.Header.Get(header); value != "" {
			masked.Header.Set(header, utils.MaskSecret(value))
		}
	}

	// GET requests carry no body, so the clone is safe to dump without consuming the original.
	dump, err := httputil.DumpRequestOut(masked, false)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return strings.ToValidUTF8(string(data[:t.maxLogLength]), "") + "... [truncated]"
	}

	return string(data)
}
