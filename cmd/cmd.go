// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

// loginCommand runs the browser-based authorization flow
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authorize with Spotify using OAuth2",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show-dialog",
				Usage: "Force the approval prompt even if already approved",
			},
		},
		Action: r.Login,
	}
}

// logoutCommand discards the stored authorization
func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Discard the stored authorization",
		Action: r.Logout,
	}
}

// profileCommand shows the authorized user's profile
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "profile",
		Aliases: []string{"me"},
		Usage:   "Show the authorized user's profile",
		Flags:   jsonFlags(),
		Action:  r.Profile,
	}
}

// playlistsCommand lists the authorized user's playlists
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlists",
		Usage: "List your playlists",
		Flags: append(jsonFlags(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of playlists to return",
				Value: 20,
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Index of the first playlist to return",
			},
		),
		Action: r.Playlists,
	}
}

// artistCommand looks up a single artist
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artist",
		Usage: "Look up an artist by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: append(jsonFlags(),
			&cli.BoolFlag{
				Name:  "top-tracks",
				Usage: "Include the artist's top tracks",
			},
			&cli.StringFlag{
				Name:  "market",
				Usage: "Market for top tracks (ISO 3166-1 alpha-2)",
				Value: "US",
			},
		),
		Action: r.Artist,
	}
}

// albumCommand looks up a single album
func albumCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "album",
		Usage: "Look up an album by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: append(jsonFlags(),
			&cli.BoolFlag{
				Name:  "tracks",
				Usage: "Include the album's track listing",
				Value: true,
			},
		),
		Action: r.Album,
	}
}

// trackCommand looks up a single track
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Look up a track by ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags:  jsonFlags(),
		Action: r.Track,
	}
}

// searchCommand searches the catalog
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: append(jsonFlags(),
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Comma-separated result types (artist, album, track, playlist)",
				Value:   "track",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results per type",
				Value: 10,
			},
		),
		Action: r.Search,
	}
}

// playingCommand shows the user's current playback
func playingCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playing",
		Aliases: []string{"now"},
		Usage:   "Show what is currently playing",
		Flags:   jsonFlags(),
		Action:  r.Playing,
	}
}

// recentCommand lists the user's recently played tracks
func recentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "List recently played tracks",
		Flags: append(jsonFlags(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to return",
				Value: 20,
			},
		),
		Action: r.Recent,
	}
}
