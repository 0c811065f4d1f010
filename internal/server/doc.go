// Package server runs the temporary loopback HTTP server backing the CLI's
// authorization code flow.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback.
//
// The handler validates the state parameter (CSRF protection), exchanges the
// authorization code for tokens, and sends the result through a channel.
//
// It only processes one callback to prevent replay attacks.
//
// # Lifecycle
//
// When the user runs the login command, a [CallbackServer] starts on the
// configured loopback address, handles the single callback, and shuts down
// after delivering the OAuth token.
package server
