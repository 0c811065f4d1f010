package harmonia

import (
	"context"
	"fmt"
)

// GetPlaylist retrieves a playlist by ID, including its first page of
// tracks.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	var playlist Playlist
	if err := c.get(ctx, "/playlists/"+playlistID, nil, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylistTracks retrieves a playlist's tracks with pagination.
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistID string, limit, offset int) (*PlaylistTrackPage, error) {
	var tracks PlaylistTrackPage
	if err := c.get(ctx, fmt.Sprintf("/playlists/%s/tracks", playlistID), pageQuery(limit, offset), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}

// CurrentUserPlaylists retrieves the authorized user's playlists with
// pagination. Requires the playlist-read-private scope for private
// playlists.
func (c *Client) CurrentUserPlaylists(ctx context.Context, limit, offset int) (*SimplePlaylistPage, error) {
	var playlists SimplePlaylistPage
	if err := c.get(ctx, "/me/playlists", pageQuery(limit, offset), &playlists); err != nil {
		return nil, err
	}
	return &playlists, nil
}
