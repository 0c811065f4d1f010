package auth

import (
	"context"
	"sync"
	"time"
)

// DefaultExpiryMargin is how long before a token's real expiry it is treated
// as already expired, so a refresh happens before the server starts rejecting
// it.
const DefaultExpiryMargin = time.Minute

// TokenStore caches one access token behind a mutex and refreshes it through
// its [Authorizer] when it goes stale.
//
// The mutex is held for the duration of a mint, which strictly serializes
// refreshes: a caller arriving mid-refresh blocks and then observes the fresh
// token instead of racing a second request against the token endpoint. The
// lock is never held across an API request send.
type TokenStore struct {
	mu     sync.Mutex
	auth   Authorizer
	token  *AccessToken
	margin time.Duration
	now    func() time.Time
}

// StoreOption configures a [TokenStore].
type StoreOption func(*TokenStore)

// WithExpiryMargin sets the refresh safety margin.
func WithExpiryMargin(d time.Duration) StoreOption {
	return func(s *TokenStore) { s.margin = d }
}

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *TokenStore) { s.now = now }
}

// NewTokenStore creates an empty store; the first Token call mints.
func NewTokenStore(a Authorizer, opts ...StoreOption) *TokenStore {
	s := &TokenStore{
		auth:   a,
		margin: DefaultExpiryMargin,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the cached token while it is valid, otherwise mints a
// replacement. Mint failures surface as-is; a stale token is never
// substituted.
func (s *TokenStore) Token(ctx context.Context) (*AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.ValidAt(s.now(), s.margin) {
		return s.token, nil
	}

	token, err := s.auth.Mint(ctx)
	if err != nil {
		return nil, err
	}
	s.token = token
	return token, nil
}

// Invalidate drops the cached token if it still matches value. The guard
// keeps a 401 observed on a stale token from clobbering a token another
// caller refreshed in the meantime.
func (s *TokenStore) Invalidate(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != nil && s.token.Value == value {
		s.token = nil
	}
}
