package harmonia

import (
	"context"
	"fmt"
	"strings"
)

// SearchKind selects which object types a search returns.
type SearchKind string

const (
	SearchArtists   SearchKind = "artist"
	SearchAlbums    SearchKind = "album"
	SearchTracks    SearchKind = "track"
	SearchPlaylists SearchKind = "playlist"
)

// Search runs a query against the search endpoint for the given kinds.
func (c *Client) Search(ctx context.Context, query string, kinds []SearchKind, limit, offset int) (*SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no search kinds provided")
	}

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}

	q := pageQuery(limit, offset)
	q.Set("q", query)
	q.Set("type", strings.Join(parts, ","))

	var result SearchResult
	if err := c.get(ctx, "/search", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
