package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientCredentialsMint(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh Grant", func(t *testing.T) {
		var calls int32
		var gotGrant, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			r.ParseForm()
			gotGrant = r.PostForm.Get("grant_type")
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "cc-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
				"scope":        "",
			})
		}))
		defer server.Close()

		authorizer := NewClientCredentials("id", "secret", WithTokenURL(server.URL))
		token, err := authorizer.Mint(ctx)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if gotGrant != "client_credentials" {
			t.Errorf("expected client_credentials grant, got %q", gotGrant)
		}
		if gotAuth == "" {
			t.Error("expected basic auth header")
		}
		if token.Value != "cc-token" {
			t.Errorf("unexpected token %q", token.Value)
		}
		if remaining := time.Until(token.ExpiresAt); remaining < 59*time.Minute {
			t.Errorf("expected ~1h expiry, got %v", remaining)
		}

		// Every mint is a fresh grant: no refresh token is ever involved.
		if _, err := authorizer.Mint(ctx); err != nil {
			t.Fatalf("second mint failed: %v", err)
		}
		if atomic.LoadInt32(&calls) != 2 {
			t.Errorf("expected 2 token requests, got %d", calls)
		}
	})

	t.Run("Rejected Credentials Are Sticky", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "Invalid client secret",
			})
		}))
		defer server.Close()

		authorizer := NewClientCredentials("id", "bad-secret", WithTokenURL(server.URL))

		_, err := authorizer.Mint(ctx)
		var authErr *Error
		if !errors.As(err, &authErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if authErr.Code != "invalid_client" || !authErr.Permanent() {
			t.Errorf("unexpected error %+v", authErr)
		}
		if !errors.Is(err, ErrAuthFailed) {
			t.Error("expected error to wrap ErrAuthFailed")
		}

		_, err = authorizer.Mint(ctx)
		if !errors.Is(err, ErrCredentialsReset) {
			t.Fatalf("expected sticky failure, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Errorf("a permanently rejected credential must not be retried, got %d calls", calls)
		}
	})

	t.Run("Transient Failure Is Not Sticky", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "cc-token",
				"expires_in":   3600,
			})
		}))
		defer server.Close()

		authorizer := NewClientCredentials("id", "secret", WithTokenURL(server.URL))

		if _, err := authorizer.Mint(ctx); err == nil {
			t.Fatal("expected first mint to fail")
		}
		if _, err := authorizer.Mint(ctx); err != nil {
			t.Fatalf("expected recovery on second mint, got %v", err)
		}
	})

	t.Run("Endpoint Unreachable", func(t *testing.T) {
		authorizer := NewClientCredentials("id", "secret", WithTokenURL("http://127.0.0.1:1/token"))
		_, err := authorizer.Mint(ctx)
		if !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", err)
		}
	})
}

func TestAuthorizationCodeMint(t *testing.T) {
	ctx := context.Background()

	t.Run("Refresh Grant", func(t *testing.T) {
		var gotGrant, gotRefresh string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			gotGrant = r.PostForm.Get("grant_type")
			gotRefresh = r.PostForm.Get("refresh_token")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "user-token",
				"expires_in":   3600,
				"scope":        "user-read-private user-library-read",
			})
		}))
		defer server.Close()

		authorizer := NewAuthorizationCode("id", "secret", "refresh-1", WithTokenURL(server.URL))
		token, err := authorizer.Mint(ctx)
		if err != nil {
			t.Fatalf("expected token, got %v", err)
		}

		if gotGrant != "refresh_token" || gotRefresh != "refresh-1" {
			t.Errorf("unexpected grant %q / refresh %q", gotGrant, gotRefresh)
		}
		if !token.HasScope(ScopeUserReadPrivate) || !token.HasScope(ScopeUserLibraryRead) {
			t.Errorf("expected granted scopes to be parsed, got %v", token.Scopes)
		}
		if authorizer.RefreshToken() != "refresh-1" {
			t.Errorf("refresh token should be reused, got %q", authorizer.RefreshToken())
		}
	})

	t.Run("Rotated Refresh Token Replaces Stored One", func(t *testing.T) {
		var refreshes []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.ParseForm()
			refreshes = append(refreshes, r.PostForm.Get("refresh_token"))
			resp := map[string]any{
				"access_token": "user-token",
				"expires_in":   3600,
			}
			if len(refreshes) == 1 {
				resp["refresh_token"] = "refresh-2"
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		authorizer := NewAuthorizationCode("id", "secret", "refresh-1", WithTokenURL(server.URL))

		if _, err := authorizer.Mint(ctx); err != nil {
			t.Fatalf("first mint failed: %v", err)
		}
		if authorizer.RefreshToken() != "refresh-2" {
			t.Fatalf("expected rotation, still have %q", authorizer.RefreshToken())
		}

		if _, err := authorizer.Mint(ctx); err != nil {
			t.Fatalf("second mint failed: %v", err)
		}
		if refreshes[1] != "refresh-2" {
			t.Errorf("second mint should use the rotated token, sent %q", refreshes[1])
		}
	})

	t.Run("Revoked Refresh Token Is Sticky", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "Refresh token revoked",
			})
		}))
		defer server.Close()

		authorizer := NewAuthorizationCode("id", "secret", "revoked", WithTokenURL(server.URL))

		_, err := authorizer.Mint(ctx)
		if !errors.Is(err, ErrRefreshFailed) {
			t.Fatalf("expected ErrRefreshFailed, got %v", err)
		}

		_, err = authorizer.Mint(ctx)
		if !errors.Is(err, ErrCredentialsReset) {
			t.Fatalf("expected sticky failure, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 1 {
			t.Errorf("revoked refresh token must not be retried, got %d calls", calls)
		}
	})

	t.Run("Missing Refresh Token", func(t *testing.T) {
		authorizer := NewAuthorizationCode("id", "secret", "")
		_, err := authorizer.Mint(ctx)
		if !errors.Is(err, ErrNoRefreshToken) {
			t.Fatalf("expected ErrNoRefreshToken, got %v", err)
		}
	})
}
