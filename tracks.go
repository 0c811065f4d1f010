package harmonia

import (
	"context"
	"net/url"
)

// GetTrack retrieves a single track by ID.
func (c *Client) GetTrack(ctx context.Context, trackID string) (*Track, error) {
	var track Track
	if err := c.get(ctx, "/tracks/"+trackID, nil, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// GetTracks retrieves multiple tracks by their IDs (up to 50).
func (c *Client) GetTracks(ctx context.Context, trackIDs []string) ([]Track, error) {
	joined, err := ids(trackIDs, 50)
	if err != nil {
		return nil, err
	}

	var response struct {
		Tracks []Track `json:"tracks"`
	}
	if err := c.get(ctx, "/tracks", url.Values{"ids": {joined}}, &response); err != nil {
		return nil, err
	}
	return response.Tracks, nil
}

// GetSavedTracks retrieves the user's library tracks with pagination.
// Requires the user-library-read scope.
func (c *Client) GetSavedTracks(ctx context.Context, limit, offset int) (*SavedTrackPage, error) {
	var tracks SavedTrackPage
	if err := c.get(ctx, "/me/tracks", pageQuery(limit, offset), &tracks); err != nil {
		return nil, err
	}
	return &tracks, nil
}
