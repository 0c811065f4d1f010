package auth

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizationURL(t *testing.T) {
	t.Run("Carries All Parameters", func(t *testing.T) {
		raw := AuthorizationURL("client-id", "http://127.0.0.1:8888/callback", "state-1",
			[]Scope{ScopeUserReadPrivate, ScopeUserLibraryRead}, true)

		parsed, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("unparseable URL: %v", err)
		}
		if parsed.Host != "accounts.spotify.com" {
			t.Errorf("unexpected host %s", parsed.Host)
		}

		q := parsed.Query()
		if q.Get("response_type") != "code" {
			t.Errorf("expected code response type, got %q", q.Get("response_type"))
		}
		if q.Get("client_id") != "client-id" || q.Get("state") != "state-1" {
			t.Errorf("unexpected identity params: %v", q)
		}
		if q.Get("scope") != "user-read-private user-library-read" {
			t.Errorf("unexpected scope %q", q.Get("scope"))
		}
		if q.Get("show_dialog") != "true" {
			t.Errorf("expected show_dialog, got %q", q.Get("show_dialog"))
		}
	})

	t.Run("Omits Empty Scope And Dialog", func(t *testing.T) {
		raw := AuthorizationURL("client-id", "http://127.0.0.1:8888/callback", "state-1", nil, false)
		if strings.Contains(raw, "scope=") || strings.Contains(raw, "show_dialog") {
			t.Errorf("unexpected optional params in %s", raw)
		}
	})
}

func TestGenerateState(t *testing.T) {
	a, b := GenerateState(), GenerateState()
	if a == "" || a == b {
		t.Errorf("expected unique non-empty states, got %q and %q", a, b)
	}
}

func TestOAuthConfig(t *testing.T) {
	cfg := OAuthConfig("id", "secret", "http://127.0.0.1:8888/callback", []Scope{ScopeUserReadEmail})
	if cfg.Endpoint.AuthURL != AuthURL || cfg.Endpoint.TokenURL != TokenURL {
		t.Errorf("unexpected endpoints %+v", cfg.Endpoint)
	}
	if len(cfg.Scopes) != 1 || cfg.Scopes[0] != "user-read-email" {
		t.Errorf("unexpected scopes %v", cfg.Scopes)
	}
}

func TestHasScope(t *testing.T) {
	token := &AccessToken{Value: "t", Scopes: []string{"user-read-private"}}
	if !token.HasScope(ScopeUserReadPrivate) {
		t.Error("expected granted scope to match")
	}
	if token.HasScope(ScopeUserLibraryRead) {
		t.Error("unexpected scope match")
	}
	var nilToken *AccessToken
	if nilToken.HasScope(ScopeUserReadPrivate) {
		t.Error("nil token must have no scopes")
	}
}
