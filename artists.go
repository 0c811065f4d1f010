package harmonia

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetArtist retrieves a single artist by ID.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*Artist, error) {
	var artist Artist
	if err := c.get(ctx, "/artists/"+artistID, nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetArtists retrieves multiple artists by their IDs (up to 50).
func (c *Client) GetArtists(ctx context.Context, artistIDs []string) ([]Artist, error) {
	joined, err := ids(artistIDs, 50)
	if err != nil {
		return nil, err
	}

	var response struct {
		Artists []Artist `json:"artists"`
	}
	if err := c.get(ctx, "/artists", url.Values{"ids": {joined}}, &response); err != nil {
		return nil, err
	}
	return response.Artists, nil
}

// GetArtistAlbums retrieves an artist's albums with pagination. groups
// filters by album_type values (album, single, appears_on, compilation);
// empty means all.
func (c *Client) GetArtistAlbums(ctx context.Context, artistID string, groups []string, limit, offset int) (*SimpleAlbumPage, error) {
	query := pageQuery(limit, offset)
	if len(groups) > 0 {
		query.Set("include_groups", strings.Join(groups, ","))
	}

	var albums SimpleAlbumPage
	if err := c.get(ctx, fmt.Sprintf("/artists/%s/albums", artistID), query, &albums); err != nil {
		return nil, err
	}
	return &albums, nil
}

// GetArtistTopTracks retrieves an artist's top tracks for a market, e.g.
// "US".
func (c *Client) GetArtistTopTracks(ctx context.Context, artistID, market string) ([]Track, error) {
	var response struct {
		Tracks []Track `json:"tracks"`
	}
	query := url.Values{"market": {market}}
	if err := c.get(ctx, fmt.Sprintf("/artists/%s/top-tracks", artistID), query, &response); err != nil {
		return nil, err
	}
	return response.Tracks, nil
}

// GetRelatedArtists retrieves artists similar to the given artist.
func (c *Client) GetRelatedArtists(ctx context.Context, artistID string) ([]Artist, error) {
	var response struct {
		Artists []Artist `json:"artists"`
	}
	if err := c.get(ctx, fmt.Sprintf("/artists/%s/related-artists", artistID), nil, &response); err != nil {
		return nil, err
	}
	return response.Artists, nil
}
