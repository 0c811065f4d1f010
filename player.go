package harmonia

import (
	"context"
	"net/url"
	"strconv"
)

// GetCurrentlyPlaying retrieves the user's current playback. Returns nil
// when nothing is playing (the endpoint answers 204 with an empty body).
// Requires the user-read-currently-playing scope.
func (c *Client) GetCurrentlyPlaying(ctx context.Context) (*CurrentlyPlaying, error) {
	body, err := c.exec(ctx, apiRequest{method: "GET", path: "/me/player/currently-playing"})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	var playing CurrentlyPlaying
	if err := decodeInto(body, &playing); err != nil {
		return nil, err
	}
	return &playing, nil
}

// GetRecentlyPlayed retrieves the user's play history, newest first.
// Requires the user-read-recently-played scope.
func (c *Client) GetRecentlyPlayed(ctx context.Context, limit int) (*PlayHistoryPage, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	var history PlayHistoryPage
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/me/player/recently-played", query, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
