package harmonia

import (
	"context"
	"fmt"
	"net/url"
)

// GetAlbum retrieves a single album by ID.
func (c *Client) GetAlbum(ctx context.Context, albumID string) (*Album, error) {
	var album Album
	if err := c.get(ctx, "/albums/"+albumID, nil, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetAlbums retrieves multiple albums by their IDs (up to 20).
func (c *Client) GetAlbums(ctx context.Context, albumIDs []string) ([]Album, error) {
	joined, err := ids(albumIDs, 20)
	if err != nil {
		return nil, err
	}

	var response struct {
		Albums []Album `json:"albums"`
	}
	if err := c.get(ctx, "/albums", url.Values{"ids": {joined}}, &response); err != nil {
		return nil, err
	}
	return response.Albums, nil
}

// GetAlbumTracks retrieves an album's tracks with pagination.
func (c *Client) GetAlbumTracks(ctx context.Context, albumID string, limit, offset int) (*SimpleTrackPage, error) {
	var tracks SimpleTrackPage
	if err := c.get(ctx, fmt.Sprintf("/albums/%s/tracks", albumID), pageQuery(limit, offset), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}
