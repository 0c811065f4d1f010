package auth

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// AuthURL is the Spotify accounts consent page.
	AuthURL = "https://accounts.spotify.com/authorize"
	// TokenURL is the Spotify accounts token endpoint.
	TokenURL = defaultTokenURL
)

// Scope is an access scope the user can grant.
//
// Reference: https://developer.spotify.com/documentation/web-api/concepts/scopes
type Scope string

const (
	ScopeUGCImageUpload           Scope = "ugc-image-upload"
	ScopeUserReadPlaybackState    Scope = "user-read-playback-state"
	ScopeUserModifyPlaybackState  Scope = "user-modify-playback-state"
	ScopeUserReadCurrentlyPlaying Scope = "user-read-currently-playing"
	ScopeStreaming                Scope = "streaming"
	ScopeAppRemoteControl         Scope = "app-remote-control"
	ScopeUserReadEmail            Scope = "user-read-email"
	ScopeUserReadPrivate          Scope = "user-read-private"
	ScopePlaylistReadCollab       Scope = "playlist-read-collaborative"
	ScopePlaylistModifyPublic     Scope = "playlist-modify-public"
	ScopePlaylistReadPrivate      Scope = "playlist-read-private"
	ScopePlaylistModifyPrivate    Scope = "playlist-modify-private"
	ScopeUserLibraryModify        Scope = "user-library-modify"
	ScopeUserLibraryRead          Scope = "user-library-read"
	ScopeUserTopRead              Scope = "user-top-read"
	ScopeUserReadRecentlyPlayed   Scope = "user-read-recently-played"
	ScopeUserFollowRead           Scope = "user-follow-read"
	ScopeUserFollowModify         Scope = "user-follow-modify"
)

func joinScopes(scopes []Scope) string {
	parts := make([]string, len(scopes))
	for i, s := range scopes {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// GenerateState returns a random state token for CSRF protection of the
// authorization redirect.
func GenerateState() string {
	return uuid.New().String()
}

// AuthorizationURL builds the consent URL to send the user's browser to.
// showDialog forces the approval prompt even when the user already approved
// the app. redirectURI must be allow-listed on the Spotify dashboard and must
// not carry a query string.
func AuthorizationURL(clientID, redirectURI, state string, scopes []Scope, showDialog bool) string {
	q := url.Values{
		"response_type": {"code"},
		"client_id":     {clientID},
		"redirect_uri":  {redirectURI},
		"state":         {state},
	}
	if len(scopes) > 0 {
		q.Set("scope", joinScopes(scopes))
	}
	if showDialog {
		q.Set("show_dialog", "true")
	}
	return AuthURL + "?" + q.Encode()
}

// OAuthConfig returns an [oauth2.Config] for exchanging the authorization
// code that the consent redirect carries. The resulting token's RefreshToken
// field is what [NewAuthorizationCode] expects.
func OAuthConfig(clientID, clientSecret, redirectURI string, scopes []Scope) *oauth2.Config {
	scopeStrings := make([]string, len(scopes))
	for i, s := range scopes {
		scopeStrings[i] = string(s)
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       scopeStrings,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: TokenURL,
		},
	}
}
