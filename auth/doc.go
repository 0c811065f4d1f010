// Package auth implements the Spotify authorization flows used by the client.
//
// # Flows
//
// Two grant types are supported, each behind the [Authorizer] interface:
//   - [ClientCredentials] : app-only access, no user context
//   - [AuthorizationCode] : user access via a long-lived refresh token
//
// # Token Caching
//
// [TokenStore] owns the cached access token. It serializes refreshes behind a
// mutex so concurrent callers never race duplicate requests against the token
// endpoint, and it treats tokens within a safety margin of expiry as already
// expired.
//
// # Bootstrapping a Refresh Token
//
// [AuthorizationURL] builds the consent URL to send the user to, and
// [OAuthConfig] produces an [oauth2.Config] for exchanging the returned code.
// The refresh token from that exchange is what [NewAuthorizationCode] wants.
package auth
