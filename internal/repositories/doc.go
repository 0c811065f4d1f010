// Package repositories implements SQLite persistence for CLI credentials.
//
// [TokenRepository] stores one row per Spotify client id: the long-lived
// refresh token plus the most recently minted access token. The CLI saves a
// row after login and after any mint that rotated the refresh token, so a
// completed authorization survives process restarts.
package repositories
