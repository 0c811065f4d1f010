package auth

import "fmt"

var (
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrRefreshFailed    = fmt.Errorf("token refresh failed")
	ErrNoRefreshToken   = fmt.Errorf("no refresh token available")
	ErrCredentialsReset = fmt.Errorf("credentials permanently rejected")
)

// Error is the JSON payload the Spotify accounts service returns when a token
// request fails, e.g. {"error": "invalid_grant", "error_description": "..."}.
type Error struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
	Status      int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("auth error (status %d): %s", e.Status, e.Code)
	}
	return fmt.Sprintf("auth error (status %d): %s: %s", e.Status, e.Code, e.Description)
}

func (e *Error) Unwrap() error { return ErrAuthFailed }

// Permanent reports whether retrying the same credential is pointless.
//
// The accounts service answers 400/401 when the client secret or refresh
// token is invalid or revoked; anything else is treated as transient.
func (e *Error) Permanent() bool {
	return e.Status == 400 || e.Status == 401
}
