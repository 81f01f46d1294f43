package auth

import (
	"context"
	"testing"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/origin-lookup/internal/config"
)

// TestNewService tests the NewService function.
func TestNewService(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Remid: "test_remid",
	}

	service, err := NewService(cfg)

	require.NoError(t, err)
	assert.NotNil(t, service)
	assert.Equal(t, cfg, service.cfg)
	assert.Nil(t, service.browser)
	assert.Nil(t, service.page)
}

// TestValidateLoginURL tests the validateLoginURL function.
func TestValidateLoginURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		expectError bool
	}{
		{
			name: "blank page",
			url:  "about:blank",
		},
		{
			name: "EA login page",
			url:  "https://www.ea.com/login",
		},
		{
			name: "EA sign-in form",
			url:  "https://signin.ea.com/p/juno/login?fid=abc",
		},
		{
			name: "accounts domain",
			url:  "https://accounts.ea.com/connect/auth",
		},
		{
			name: "Origin domain",
			url:  "https://www.origin.com/usa/en-us/store",
		},
		{
			name:        "different domain",
			url:         "https://google.com",
			expectError: true,
		},
		{
			name:        "lookalike domain",
			url:         "https://ea.com.evil.example/login",
			expectError: true,
		},
		{
			name:        "suffix without dot",
			url:         "https://notea.com/",
			expectError: true,
		},
		{
			name:        "EA domain in query only",
			url:         "https://evil.example/?next=https://accounts.ea.com",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateLoginURL(tt.url)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNavigatedAway)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFindSessionCookies tests that both cookies are required.
func TestFindSessionCookies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cookies  []*proto.NetworkCookie
		expected *config.Credentials
	}{
		{
			name: "both cookies present",
			cookies: []*proto.NetworkCookie{
				{Name: "_ga", Value: "GA1.2"},
				{Name: "remid", Value: "R", Domain: ".accounts.ea.com"},
				{Name: "sid", Value: "S", Domain: ".accounts.ea.com"},
			},
			expected: &config.Credentials{Remid: "R", SID: "S"},
		},
		{
			name: "sid missing",
			cookies: []*proto.NetworkCookie{
				{Name: "remid", Value: "R"},
			},
		},
		{
			name: "empty remid",
			cookies: []*proto.NetworkCookie{
				{Name: "remid", Value: ""},
				{Name: "sid", Value: "S"},
			},
		},
		{
			name:    "no cookies",
			cookies: []*proto.NetworkCookie{nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, findSessionCookies(tt.cookies))
		})
	}
}

// TestSentinelErrors tests the messages of the sentinel errors.
func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "login timeout exceeded", ErrLoginTimeout.Error())
	assert.Equal(t, "browser was closed by user", ErrBrowserClosed.Error())
	assert.Equal(t, "user navigated away from login flow", ErrNavigatedAway.Error())
}

// TestServiceImpl_Cleanup tests that cleanup tolerates a service that never launched a browser.
func TestServiceImpl_Cleanup(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	service := &ServiceImpl{tempDir: tempDir}

	assert.NotPanics(t, func() {
		service.cleanup(context.Background())
	})
	assert.NoDirExists(t, tempDir)
}
