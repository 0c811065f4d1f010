package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/harmonia-dev/harmonia"
	"github.com/harmonia-dev/harmonia/internal/shared"
	"github.com/urfave/cli/v3"
)

// Profile shows the authorized user's profile.
func (r *Runner) Profile(ctx context.Context, cmd *cli.Command) error {
	client, err := r.userClient()
	if err != nil {
		return err
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	name := user.DisplayName
	if name == "" {
		name = user.ID
	}
	r.writePlain("%s\n", r.styles.Title(name))
	r.writePlain("ID: %s\n", user.ID)
	if user.Email != "" {
		r.writePlain("Email: %s\n", user.Email)
	}
	if user.Country != "" {
		r.writePlain("Country: %s\n", user.Country)
	}
	if user.Product != "" {
		r.writePlain("Plan: %s\n", user.Product)
	}
	r.writePlain("Followers: %d\n", user.Followers.Total)

	return nil
}

// Playlists lists the authorized user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	client, err := r.userClient()
	if err != nil {
		return err
	}

	page, err := client.CurrentUserPlaylists(ctx, cmd.Int("limit"), cmd.Int("offset"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n\n", r.styles.Title(fmt.Sprintf("Playlists (%d total)", page.Total)))
	for i, p := range page.Items {
		r.writePlain("%d. %s %s\n", page.Offset+i+1, p.Name, r.styles.Faint(p.ID))
		if p.Description != "" {
			r.writePlain("   %s\n", p.Description)
		}
		visibility := "Private"
		if p.Public {
			visibility = "Public"
		}
		r.writePlain("   Tracks: %d · %s\n", p.Tracks.Total, visibility)
	}

	return nil
}

// Artist looks up an artist, optionally with their top tracks.
func (r *Runner) Artist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	client, err := r.apiClient()
	if err != nil {
		return err
	}

	artist, err := client.GetArtist(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(artist, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", r.styles.Title(artist.Name))
	if len(artist.Genres) > 0 {
		r.writePlain("Genres: %s\n", strings.Join(artist.Genres, ", "))
	}
	r.writePlain("Followers: %d\n", artist.Followers.Total)
	r.writePlain("Popularity: %d\n", artist.Popularity)

	if cmd.Bool("top-tracks") {
		tracks, err := client.GetArtistTopTracks(ctx, id, cmd.String("market"))
		if err != nil {
			return err
		}
		r.writePlain("\n%s\n", r.styles.Title("Top Tracks"))
		for i, t := range tracks {
			r.writePlain("%2d. %s %s\n", i+1, t.Name, r.styles.Faint(formatDuration(t.DurationMS)))
		}
	}

	return nil
}

// Album looks up an album, optionally with its track listing.
func (r *Runner) Album(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: album id", shared.ErrMissingArgument)
	}

	client, err := r.apiClient()
	if err != nil {
		return err
	}

	album, err := client.GetAlbum(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(album, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", r.styles.Title(album.Name))
	r.writePlain("Artist: %s\n", artistNames(album.Artists))
	r.writePlain("Released: %s\n", album.ReleaseDate)
	if album.Label != "" {
		r.writePlain("Label: %s\n", album.Label)
	}
	r.writePlain("Tracks: %d\n", album.TotalTracks)

	if cmd.Bool("tracks") {
		r.writePlain("\n")
		for _, t := range album.Tracks.Items {
			r.writePlain("%2d. %s %s\n", t.TrackNumber, t.Name, r.styles.Faint(formatDuration(t.DurationMS)))
		}
	}

	return nil
}

// Track looks up a single track.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	client, err := r.apiClient()
	if err != nil {
		return err
	}

	track, err := client.GetTrack(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", r.styles.Title(track.Name))
	r.writePlain("Artist: %s\n", artistNames(track.Artists))
	r.writePlain("Album: %s\n", track.Album.Name)
	r.writePlain("Length: %s\n", formatDuration(track.DurationMS))
	if track.ExternalIDs.ISRC != "" {
		r.writePlain("ISRC: %s\n", track.ExternalIDs.ISRC)
	}

	return nil
}

// Search queries the catalog for the requested result types.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	kinds, err := parseSearchKinds(cmd.String("type"))
	if err != nil {
		return err
	}

	client, err := r.apiClient()
	if err != nil {
		return err
	}

	result, err := client.Search(ctx, query, kinds, cmd.Int("limit"), 0)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if result.Artists != nil {
		r.writePlain("%s\n", r.styles.Title("Artists"))
		for _, a := range result.Artists.Items {
			r.writePlain("  %s %s\n", a.Name, r.styles.Faint(a.ID))
		}
	}
	if result.Albums != nil {
		r.writePlain("%s\n", r.styles.Title("Albums"))
		for _, a := range result.Albums.Items {
			r.writePlain("  %s — %s %s\n", artistNames(a.Artists), a.Name, r.styles.Faint(a.ID))
		}
	}
	if result.Tracks != nil {
		r.writePlain("%s\n", r.styles.Title("Tracks"))
		for _, t := range result.Tracks.Items {
			r.writePlain("  %s — %s %s\n", artistNames(t.Artists), t.Name, r.styles.Faint(t.ID))
		}
	}
	if result.Playlists != nil {
		r.writePlain("%s\n", r.styles.Title("Playlists"))
		for _, p := range result.Playlists.Items {
			r.writePlain("  %s (%d tracks) %s\n", p.Name, p.Tracks.Total, r.styles.Faint(p.ID))
		}
	}

	return nil
}

// Playing shows the user's current playback state.
func (r *Runner) Playing(ctx context.Context, cmd *cli.Command) error {
	client, err := r.userClient()
	if err != nil {
		return err
	}

	playing, err := client.GetCurrentlyPlaying(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playing, cmd.Bool("pretty"))
	}

	if playing == nil || playing.Item == nil {
		r.writePlain("%s\n", r.styles.Faint("Nothing is playing."))
		return nil
	}

	track := playing.Item
	state := "▶"
	if !playing.IsPlaying {
		state = "⏸"
	}
	r.writePlain("%s %s\n", state, r.styles.Title(track.Name))
	r.writePlain("Artist: %s\n", artistNames(track.Artists))
	r.writePlain("Album: %s\n", track.Album.Name)
	r.writePlain("Position: %s / %s\n", formatDuration(playing.ProgressMS), formatDuration(track.DurationMS))

	return nil
}

// Recent lists the user's recently played tracks.
func (r *Runner) Recent(ctx context.Context, cmd *cli.Command) error {
	client, err := r.userClient()
	if err != nil {
		return err
	}

	history, err := client.GetRecentlyPlayed(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(history, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n\n", r.styles.Title("Recently Played"))
	for i, entry := range history.Items {
		r.writePlain("%2d. %s — %s %s\n", i+1, artistNames(entry.Track.Artists), entry.Track.Name, r.styles.Faint(entry.PlayedAt))
	}

	return nil
}

func artistNames(artists []harmonia.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

func parseSearchKinds(value string) ([]harmonia.SearchKind, error) {
	var kinds []harmonia.SearchKind
	for _, part := range strings.Split(value, ",") {
		switch strings.TrimSpace(part) {
		case "artist":
			kinds = append(kinds, harmonia.SearchArtists)
		case "album":
			kinds = append(kinds, harmonia.SearchAlbums)
		case "track":
			kinds = append(kinds, harmonia.SearchTracks)
		case "playlist":
			kinds = append(kinds, harmonia.SearchPlaylists)
		case "":
		default:
			return nil, fmt.Errorf("%w: unknown search type %q", shared.ErrMissingArgument, part)
		}
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: search type", shared.ErrMissingArgument)
	}
	return kinds, nil
}
