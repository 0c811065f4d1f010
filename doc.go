// Package harmonia is a typed client for the Spotify Web API.
//
// # Usage
//
// Create a [Client] from an [auth.Authorizer] and call endpoint methods on
// it:
//
//	authorizer := auth.NewClientCredentials(clientID, clientSecret)
//	client := harmonia.New(authorizer)
//	artist, err := client.GetArtist(ctx, "0OdUWJ0sBjDrqHygGUXeCF")
//
// User-scoped endpoints need the authorization code flow instead; see
// [auth.NewAuthorizationCode] and the auth package docs for bootstrapping a
// refresh token.
//
// # Token Lifecycle
//
// The client caches its access token and refreshes it shortly before expiry.
// A 401 response forces one refresh and one retry; a second 401 surfaces
// [ErrTokenExpired]. 429 responses are retried after the server's Retry-After
// delay, a bounded number of times, before [ErrRateLimited] surfaces. Other
// 4xx and all 5xx responses return an [*APIError] without retrying, and
// network failures return an error wrapping [ErrTransport].
package harmonia
