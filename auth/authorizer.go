package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const defaultTokenURL = "https://accounts.spotify.com/api/token"

// Authorizer mints fresh access tokens. Implementations own the grant
// mechanics; they never cache tokens themselves, that is [TokenStore]'s job.
type Authorizer interface {
	Mint(ctx context.Context) (*AccessToken, error)
}

// Doer sends a single HTTP request. *http.Client satisfies it; tests inject
// scripted transports.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures an authorizer.
type Option func(*settings)

type settings struct {
	tokenURL string
	http     Doer
	now      func() time.Time
}

// WithTokenURL overrides the accounts service token endpoint.
func WithTokenURL(u string) Option {
	return func(s *settings) { s.tokenURL = u }
}

// WithHTTPClient sets the HTTP client used for token requests. Timeouts are
// the client's responsibility.
func WithHTTPClient(d Doer) Option {
	return func(s *settings) { s.http = d }
}

func newSettings(opts []Option) settings {
	s := settings{
		tokenURL: defaultTokenURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ClientCredentials implements the client-credentials grant. Every mint is a
// fresh grant; the accounts service never hands out a refresh token for this
// flow.
type ClientCredentials struct {
	id     string
	secret string
	cfg    settings

	mu   sync.Mutex
	fail error // sticky after a permanent rejection
}

// NewClientCredentials creates an authorizer for app-only access.
func NewClientCredentials(id, secret string, opts ...Option) *ClientCredentials {
	return &ClientCredentials{id: id, secret: secret, cfg: newSettings(opts)}
}

// Mint requests a new token with grant_type=client_credentials.
func (c *ClientCredentials) Mint(ctx context.Context) (*AccessToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fail != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialsReset, c.fail)
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	resp, err := requestToken(ctx, c.cfg, c.id, c.secret, form)
	if err != nil {
		c.fail = stickyError(err)
		return nil, err
	}
	return resp.token(c.cfg.now()), nil
}

// AuthorizationCode implements the refresh-token grant of the authorization
// code flow. The refresh token is reused indefinitely unless the accounts
// service rotates it, in which case the rotated value replaces the stored one
// for every subsequent mint.
type AuthorizationCode struct {
	id     string
	secret string
	cfg    settings

	mu      sync.Mutex
	refresh string
	fail    error
}

// NewAuthorizationCode creates an authorizer acting on a user's behalf with a
// previously obtained refresh token.
func NewAuthorizationCode(id, secret, refreshToken string, opts ...Option) *AuthorizationCode {
	return &AuthorizationCode{id: id, secret: secret, refresh: refreshToken, cfg: newSettings(opts)}
}

// Mint exchanges the stored refresh token for a new access token.
func (a *AuthorizationCode) Mint(ctx context.Context) (*AccessToken, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.fail != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialsReset, a.fail)
	}
	if a.refresh == "" {
		return nil, ErrNoRefreshToken
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {a.refresh},
	}
	resp, err := requestToken(ctx, a.cfg, a.id, a.secret, form)
	if err != nil {
		a.fail = stickyError(err)
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	if resp.RefreshToken != "" {
		a.refresh = resp.RefreshToken
	}
	return resp.token(a.cfg.now()), nil
}

// RefreshToken returns the refresh token currently in use. Callers that
// persist credentials should read it back after a successful mint in case the
// accounts service rotated it.
func (a *AuthorizationCode) RefreshToken() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refresh
}

// stickyError returns err if it marks the credential as permanently rejected,
// nil otherwise.
func stickyError(err error) error {
	var authErr *Error
	if errors.As(err, &authErr) && authErr.Permanent() {
		return err
	}
	return nil
}

// requestToken performs one POST against the token endpoint with HTTP basic
// auth and a form-encoded grant.
func requestToken(ctx context.Context, cfg settings, id, secret string, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: building token request: %v", ErrAuthFailed, err)
	}
	req.SetBasicAuth(id, secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := cfg.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token endpoint unreachable: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading token response: %v", ErrAuthFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		authErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(body, authErr); err != nil {
			authErr.Code = "unknown"
			authErr.Description = strings.TrimSpace(string(body))
		}
		return nil, authErr
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("%w: decoding token response: %v", ErrAuthFailed, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", ErrAuthFailed)
	}
	return &token, nil
}
