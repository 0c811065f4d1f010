package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")

	// Persistence errors
	ErrTokenNotFound = fmt.Errorf("no stored token")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
