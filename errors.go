package harmonia

import (
	"fmt"
	"time"
)

var (
	// ErrTokenExpired means the API rejected the bearer token even after one
	// forced refresh. Re-authorization is needed.
	ErrTokenExpired = fmt.Errorf("access token expired")

	// ErrRateLimited means the retry ceiling was hit while the API kept
	// answering 429.
	ErrRateLimited = fmt.Errorf("rate limit exceeded")

	// ErrTransport wraps connection-level failures and timeouts. The client
	// never retries these.
	ErrTransport = fmt.Errorf("transport failure")
)

// APIError is the error payload a Web API endpoint returns for 4xx/5xx
// responses, e.g. {"error": {"status": 404, "message": "invalid id"}}.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify API error %d: %s", e.Status, e.Message)
}

// IsServerError reports whether the error came from the server side (5xx).
func (e *APIError) IsServerError() bool { return e.Status >= 500 }

// RateLimitError reports that the bounded 429 retries were exhausted.
// RetryAfter carries the server's last requested backoff.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, server asked for a %s backoff", e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }
