package origin

//go:generate $MOCKGEN -source=session.go -destination=mocks/session_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/oshokin/origin-lookup/internal/logger"
)

// TokenMinter exchanges session cookies for a fresh access token.
type TokenMinter interface {
	// MintToken returns a new access token for the given remid and sid cookies.
	MintToken(ctx context.Context, remid, sid string) (string, error)
}

// TokenMinterImpl mints tokens through the identity provider's implicit, no-prompt flow.
type TokenMinterImpl struct {
	// httpClient performs the mint request.
	httpClient *http.Client
	// authURL is the full mint endpoint including its query.
	authURL string
	// decoder decodes the mint payload.
	decoder responseDecoder
}

// NewTokenMinter creates a TokenMinterImpl for the given mint endpoint.
func NewTokenMinter(httpClient *http.Client, authURL string) *TokenMinterImpl {
	return &TokenMinterImpl{
		httpClient: httpClient,
		authURL:    authURL,
		decoder:    jsonDecoder{},
	}
}

// MintToken performs a single unauthenticated GET presenting remid and sid as cookies.
// Every failure (transport, non-2xx status, malformed payload, provider error, empty token) wraps ErrAuth.
func (m *TokenMinterImpl) MintToken(ctx context.Context, remid, sid string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, m.authURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAuth, opMintToken, err)
	}

	request.Header.Set(cookieHeader, fmt.Sprintf("remid=%s;sid=%s;", remid, sid))
	request.Header.Set(acceptHeader, m.decoder.MediaType())

	response, err := m.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAuth, opMintToken, err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s: %w: %d", ErrAuth, opMintToken, ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var authData AuthData
	if err = m.decoder.Decode(response.Body, &authData); err != nil {
		return "", fmt.Errorf("%w: %s: %w: %w", ErrAuth, opMintToken, ErrDecode, err)
	}

	if authData.Error != "" {
		return "", fmt.Errorf("%w: %s: provider error %q: %s",
			ErrAuth, opMintToken, authData.Error, authData.ErrorDescription)
	}

	if authData.AccessToken == "" {
		return "", fmt.Errorf("%w: %s: %w", ErrAuth, opMintToken, ErrEmptyAccessToken)
	}

	return authData.AccessToken, nil
}

// Session holds the session cookies and the current access token.
// The cookies never change; the token is replaced wholesale on refresh.
// A Session is safe for concurrent use.
type Session struct {
	// remid is the "remid" session cookie.
	remid string
	// sid is the "sid" session cookie.
	sid string
	// minter mints new tokens from the cookies.
	minter TokenMinter
	// refreshMutex serializes refreshes.
	refreshMutex sync.Mutex
	// tokenMutex guards token.
	tokenMutex sync.RWMutex
	// token is the most recently minted (or caller-supplied) access token.
	token string
}

// NewSession creates a session from cookies, minting a token immediately.
// No session is returned when minting fails.
func NewSession(ctx context.Context, minter TokenMinter, remid, sid string) (*Session, error) {
	token, err := minter.MintToken(ctx, remid, sid)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "Access token minted from session cookies")

	return &Session{
		remid:  remid,
		sid:    sid,
		minter: minter,
		token:  token,
	}, nil
}

// NewSessionWithToken creates a session that trusts the given token. It performs no I/O.
func NewSessionWithToken(minter TokenMinter, remid, sid, token string) *Session {
	return &Session{
		remid:  remid,
		sid:    sid,
		minter: minter,
		token:  token,
	}
}

// Remid returns the "remid" cookie.
func (s *Session) Remid() string {
	return s.remid
}

// SID returns the "sid" cookie.
func (s *Session) SID() string {
	return s.sid
}

// Token returns a snapshot of the current access token.
func (s *Session) Token() string {
	s.tokenMutex.RLock()
	defer s.tokenMutex.RUnlock()

	return s.token
}

// Refresh mints a new token and stores it.
// On failure the previous token is kept.
func (s *Session) Refresh(ctx context.Context) error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return s.refreshLocked(ctx)
}

// RenewToken refreshes the token unless it already differs from staleToken,
// in which case another caller has refreshed it in the meantime and nothing is minted.
func (s *Session) RenewToken(ctx context.Context, staleToken string) error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.Token() != staleToken {
		logger.Debug(ctx, "Access token was already renewed by a concurrent request")

		return nil
	}

	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	token, err := s.minter.MintToken(ctx, s.remid, s.sid)
	if err != nil {
		return err
	}

	s.tokenMutex.Lock()
	s.token = token
	s.tokenMutex.Unlock()

	logger.Debug(ctx, "Access token refreshed")

	return nil
}
