package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// slowAuthorizer mints numbered tokens with a configurable expiry and an
// optional artificial delay, counting every mint.
type slowAuthorizer struct {
	mints int32
	ttl   time.Duration
	delay time.Duration
	err   error
}

func (a *slowAuthorizer) Mint(ctx context.Context) (*AccessToken, error) {
	if a.delay > 0 {
		time.Sleep(a.delay)
	}
	if a.err != nil {
		return nil, a.err
	}
	n := atomic.AddInt32(&a.mints, 1)
	ttl := a.ttl
	if ttl == 0 {
		ttl = time.Hour
	}
	return &AccessToken{
		Value:     fmt.Sprintf("token-%d", n),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

func TestTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Mints On First Use", func(t *testing.T) {
		authorizer := &slowAuthorizer{}
		store := NewTokenStore(authorizer)

		token, err := store.Token(ctx)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}
		if token.Value != "token-1" {
			t.Errorf("unexpected token %q", token.Value)
		}
	})

	t.Run("Reuses Valid Token", func(t *testing.T) {
		authorizer := &slowAuthorizer{}
		store := NewTokenStore(authorizer)

		first, _ := store.Token(ctx)
		second, err := store.Token(ctx)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}
		if first.Value != second.Value {
			t.Errorf("expected cached token, got %q then %q", first.Value, second.Value)
		}
		if atomic.LoadInt32(&authorizer.mints) != 1 {
			t.Errorf("expected 1 mint, got %d", authorizer.mints)
		}
	})

	t.Run("Safety Margin Treats Near-Expiry As Expired", func(t *testing.T) {
		// 10 seconds of remaining life is inside the 60s margin.
		authorizer := &slowAuthorizer{ttl: 10 * time.Second}
		store := NewTokenStore(authorizer)

		if _, err := store.Token(ctx); err != nil {
			t.Fatalf("first mint failed: %v", err)
		}
		token, err := store.Token(ctx)
		if err != nil {
			t.Fatalf("second mint failed: %v", err)
		}
		if token.Value != "token-2" {
			t.Errorf("expected a refresh before use, got %q", token.Value)
		}
	})

	t.Run("Custom Margin", func(t *testing.T) {
		authorizer := &slowAuthorizer{ttl: 10 * time.Second}
		store := NewTokenStore(authorizer, WithExpiryMargin(time.Second))

		first, _ := store.Token(ctx)
		second, _ := store.Token(ctx)
		if first.Value != second.Value {
			t.Errorf("token should survive a 1s margin, got %q then %q", first.Value, second.Value)
		}
	})

	t.Run("Concurrent Callers Share One Mint", func(t *testing.T) {
		authorizer := &slowAuthorizer{delay: 20 * time.Millisecond}
		store := NewTokenStore(authorizer)

		var wg sync.WaitGroup
		tokens := make([]string, 16)
		for i := range tokens {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				token, err := store.Token(ctx)
				if err == nil {
					tokens[i] = token.Value
				}
			}(i)
		}
		wg.Wait()

		if got := atomic.LoadInt32(&authorizer.mints); got != 1 {
			t.Errorf("expected exactly 1 mint under concurrency, got %d", got)
		}
		for i, v := range tokens {
			if v != "token-1" {
				t.Errorf("caller %d observed %q", i, v)
			}
		}
	})

	t.Run("Mint Failure Surfaces Without Stale Token", func(t *testing.T) {
		failure := errors.New("credentials rejected")
		authorizer := &slowAuthorizer{err: failure}
		store := NewTokenStore(authorizer)

		token, err := store.Token(ctx)
		if !errors.Is(err, failure) {
			t.Fatalf("expected mint failure, got %v", err)
		}
		if token != nil {
			t.Errorf("no token should be returned on failure, got %q", token.Value)
		}
	})

	t.Run("Invalidate", func(t *testing.T) {
		t.Run("Drops Matching Token", func(t *testing.T) {
			authorizer := &slowAuthorizer{}
			store := NewTokenStore(authorizer)

			token, _ := store.Token(ctx)
			store.Invalidate(token.Value)

			refreshed, _ := store.Token(ctx)
			if refreshed.Value != "token-2" {
				t.Errorf("expected forced refresh, got %q", refreshed.Value)
			}
		})

		t.Run("Ignores Stale Value", func(t *testing.T) {
			authorizer := &slowAuthorizer{}
			store := NewTokenStore(authorizer)

			current, _ := store.Token(ctx)
			store.Invalidate("some-older-token")

			again, _ := store.Token(ctx)
			if again.Value != current.Value {
				t.Errorf("stale invalidation must not clobber the cache, got %q", again.Value)
			}
		})
	})
}

func TestAccessTokenValidAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		token  *AccessToken
		margin time.Duration
		want   bool
	}{
		{"Nil", nil, time.Minute, false},
		{"Empty Value", &AccessToken{ExpiresAt: now.Add(time.Hour)}, time.Minute, false},
		{"Fresh", &AccessToken{Value: "t", ExpiresAt: now.Add(time.Hour)}, time.Minute, true},
		{"Inside Margin", &AccessToken{Value: "t", ExpiresAt: now.Add(10 * time.Second)}, time.Minute, false},
		{"Past Expiry", &AccessToken{Value: "t", ExpiresAt: now.Add(-time.Second)}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.token.ValidAt(now, tc.margin); got != tc.want {
				t.Errorf("ValidAt = %v, want %v", got, tc.want)
			}
		})
	}
}
