package harmonia

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harmonia-dev/harmonia/auth"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// defaultMaxRetries bounds 429-triggered retries per logical call.
const defaultMaxRetries = 3

// Doer sends a single HTTP request. *http.Client satisfies it; tests inject
// scripted transports.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a typed client to the Spotify Web API.
//
// It owns a [auth.TokenStore], so each Client refreshes its own token
// independently; create one Client per credential set and share it between
// goroutines.
type Client struct {
	http       Doer
	baseURL    string
	store      *auth.TokenStore
	limiter    *rate.Limiter
	logger     *log.Logger
	maxRetries int

	// injectable for deterministic retry tests
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API requests. Timeouts are the
// client's responsibility.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithBaseURL overrides the Web API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger attaches a logger for retry and refresh events. Without it the
// client is silent.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRateLimit adds a client-side limiter so bursts of calls queue locally
// instead of tripping the server's 429.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithMaxRetries sets the 429 retry ceiling.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithTokenStore replaces the client's token store. Useful for sharing one
// store between clients or injecting custom expiry margins, see
// [auth.NewTokenStore].
func WithTokenStore(s *auth.TokenStore) Option {
	return func(c *Client) { c.store = s }
}

// New creates a Client that authorizes through the given [auth.Authorizer].
func New(authorizer auth.Authorizer, opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		store:      auth.NewTokenStore(authorizer),
		maxRetries: defaultMaxRetries,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TokenStore exposes the client's token store, e.g. to persist the current
// token alongside a rotated refresh token.
func (c *Client) TokenStore() *auth.TokenStore { return c.store }

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
