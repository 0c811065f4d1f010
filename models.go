// Web API object model, based on
// https://developer.spotify.com/documentation/web-api/reference/
package harmonia

// Image represents an image resource at one resolution.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers carries a follower count.
type Followers struct {
	Total int `json:"total"`
}

// ExternalIDs holds known external identifiers for a track.
type ExternalIDs struct {
	ISRC string `json:"isrc"`
	EAN  string `json:"ean"`
	UPC  string `json:"upc"`
}

// ExternalURLs holds known external URLs for an object.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// page is the shared shape of offset-paginated responses.
type page struct {
	Href     string  `json:"href"`
	Total    int     `json:"total"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Cursors point into a cursor-paginated stream.
type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// SimpleArtist is the artist object embedded in tracks and albums.
type SimpleArtist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Artist is a full artist object.
type Artist struct {
	SimpleArtist
	Genres     []string  `json:"genres"`
	Images     []Image   `json:"images"`
	Popularity int       `json:"popularity"`
	Followers  Followers `json:"followers"`
}

// SimpleAlbum is the album object embedded in tracks.
type SimpleAlbum struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	AlbumType            string         `json:"album_type"`
	Artists              []SimpleArtist `json:"artists"`
	ReleaseDate          string         `json:"release_date"`
	ReleaseDatePrecision string         `json:"release_date_precision"`
	TotalTracks          int            `json:"total_tracks"`
	Images               []Image        `json:"images"`
	URI                  string         `json:"uri"`
	ExternalURLs         ExternalURLs   `json:"external_urls"`
}

// Album is a full album object.
type Album struct {
	SimpleAlbum
	Genres     []string        `json:"genres"`
	Label      string          `json:"label"`
	Popularity int             `json:"popularity"`
	Tracks     SimpleTrackPage `json:"tracks"`
}

// SimpleTrack is the track object embedded in albums.
type SimpleTrack struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Artists     []SimpleArtist `json:"artists"`
	DiscNumber  int            `json:"disc_number"`
	TrackNumber int            `json:"track_number"`
	DurationMS  int            `json:"duration_ms"`
	Explicit    bool           `json:"explicit"`
	URI         string         `json:"uri"`
}

// Track is a full track object.
type Track struct {
	SimpleTrack
	Album        SimpleAlbum  `json:"album"`
	ExternalIDs  ExternalIDs  `json:"external_ids"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Popularity   int          `json:"popularity"`
}

// SavedTrack is a track in the user's library.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

// SimpleTrackPage is a paginated list of simplified tracks.
type SimpleTrackPage struct {
	page
	Items []SimpleTrack `json:"items"`
}

// TrackPage is a paginated list of full tracks.
type TrackPage struct {
	page
	Items []Track `json:"items"`
}

// SavedTrackPage is a paginated list of library tracks.
type SavedTrackPage struct {
	page
	Items []SavedTrack `json:"items"`
}

// ArtistPage is a paginated list of full artists.
type ArtistPage struct {
	page
	Items []Artist `json:"items"`
}

// SimpleAlbumPage is a paginated list of simplified albums.
type SimpleAlbumPage struct {
	page
	Items []SimpleAlbum `json:"items"`
}

// User is the profile of the authorized user. Email, Country and Product need
// the user-read-email / user-read-private scopes.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Country     string    `json:"country"`
	Product     string    `json:"product"` // premium, free, etc.
	Followers   Followers `json:"followers"`
	Images      []Image   `json:"images"`
	URI         string    `json:"uri"`
}

// PublicUser is another user's public profile.
type PublicUser struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Followers   Followers `json:"followers"`
	Images      []Image   `json:"images"`
	URI         string    `json:"uri"`
}

// SimplePlaylist is the playlist object returned in lists.
type SimplePlaylist struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Owner         PublicUser `json:"owner"`
	Public        bool       `json:"public"`
	Collaborative bool       `json:"collaborative"`
	SnapshotID    string     `json:"snapshot_id"`
	Images        []Image    `json:"images"`
	URI           string     `json:"uri"`
	Tracks        struct {
		Href  string `json:"href"`
		Total int    `json:"total"`
	} `json:"tracks"`
}

// Playlist is a full playlist object including its first page of tracks.
type Playlist struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Owner         PublicUser        `json:"owner"`
	Public        bool              `json:"public"`
	Collaborative bool              `json:"collaborative"`
	SnapshotID    string            `json:"snapshot_id"`
	Followers     Followers         `json:"followers"`
	Images        []Image           `json:"images"`
	URI           string            `json:"uri"`
	Tracks        PlaylistTrackPage `json:"tracks"`
}

// PlaylistTrack is a track within a playlist context.
type PlaylistTrack struct {
	AddedAt string     `json:"added_at"`
	AddedBy PublicUser `json:"added_by"`
	IsLocal bool       `json:"is_local"`
	Track   Track      `json:"track"`
}

// PlaylistTrackPage is a paginated list of playlist tracks.
type PlaylistTrackPage struct {
	page
	Items []PlaylistTrack `json:"items"`
}

// SimplePlaylistPage is a paginated list of simplified playlists.
type SimplePlaylistPage struct {
	page
	Items []SimplePlaylist `json:"items"`
}

// Device is a playback device.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent int    `json:"volume_percent"`
}

// PlaybackContext describes what container playback came from.
type PlaybackContext struct {
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
	Href         string       `json:"href"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// CurrentlyPlaying is the user's playback state. Item is nil when nothing is
// playing or the track is not available in the client's market.
type CurrentlyPlaying struct {
	Timestamp  int64            `json:"timestamp"`
	ProgressMS int              `json:"progress_ms"`
	IsPlaying  bool             `json:"is_playing"`
	Item       *Track           `json:"item"`
	Context    *PlaybackContext `json:"context"`
}

// PlayHistory is one entry of the user's recently played stream.
type PlayHistory struct {
	Track    Track            `json:"track"`
	PlayedAt string           `json:"played_at"`
	Context  *PlaybackContext `json:"context"`
}

// PlayHistoryPage is a cursor-paginated list of play history entries.
type PlayHistoryPage struct {
	Items   []PlayHistory `json:"items"`
	Cursors Cursors       `json:"cursors"`
	Limit   int           `json:"limit"`
	Next    *string       `json:"next"`
}

// SearchResult holds the per-kind pages of a search. Only the requested kinds
// are populated.
type SearchResult struct {
	Artists   *ArtistPage         `json:"artists"`
	Albums    *SimpleAlbumPage    `json:"albums"`
	Tracks    *TrackPage          `json:"tracks"`
	Playlists *SimplePlaylistPage `json:"playlists"`
}
