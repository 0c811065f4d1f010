package auth

import (
	"strings"
	"time"
)

// AccessToken is a bearer token minted by an [Authorizer].
//
// Tokens are immutable once minted; a refresh produces a replacement rather
// than mutating the old value in place.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
	Scopes    []string
}

// ValidAt reports whether the token can still be attached to a request at the
// given instant. A token inside the safety margin before its expiry counts as
// expired so it is refreshed before the server would reject it.
func (t *AccessToken) ValidAt(now time.Time, margin time.Duration) bool {
	if t == nil || t.Value == "" {
		return false
	}
	return now.Before(t.ExpiresAt.Add(-margin))
}

// HasScope reports whether the token was granted the named scope.
func (t *AccessToken) HasScope(s Scope) bool {
	if t == nil {
		return false
	}
	for _, granted := range t.Scopes {
		if granted == string(s) {
			return true
		}
	}
	return false
}

// tokenResponse is the accounts service's token grant payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
	RefreshToken string `json:"refresh_token"`
}

func (r tokenResponse) token(now time.Time) *AccessToken {
	return &AccessToken{
		Value:     r.AccessToken,
		ExpiresAt: now.Add(time.Duration(r.ExpiresIn) * time.Second),
		Scopes:    strings.Fields(r.Scope),
	}
}
