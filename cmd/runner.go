package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harmonia-dev/harmonia"
	"github.com/harmonia-dev/harmonia/auth"
	"github.com/harmonia-dev/harmonia/internal/repositories"
	"github.com/harmonia-dev/harmonia/internal/shared"
	"github.com/harmonia-dev/harmonia/internal/ui"
	"github.com/urfave/cli/v3"
)

// loginScopes are requested during `harmonia login`. They cover the profile,
// playback, and library commands.
var loginScopes = []auth.Scope{
	auth.ScopeUserReadPrivate,
	auth.ScopeUserReadEmail,
	auth.ScopeUserReadPlaybackState,
	auth.ScopeUserReadCurrentlyPlaying,
	auth.ScopeUserReadRecentlyPlayed,
	auth.ScopePlaylistReadPrivate,
	auth.ScopeUserLibraryRead,
}

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	repo   *repositories.TokenRepository
	client *harmonia.Client
	logger *log.Logger
	output io.Writer
	styles *ui.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Repo   *repositories.TokenRepository
	Client *harmonia.Client
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		repo:   opts.Repo,
		client: opts.Client,
		logger: opts.Logger,
		output: opts.Output,
		styles: ui.DefaultPalette(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		loginCommand, logoutCommand, profileCommand, playlistsCommand,
		artistCommand, albumCommand, trackCommand, searchCommand,
		playingCommand, recentCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// apiClient lazily builds the API client. A stored refresh token upgrades it
// to the user's grant; otherwise the app's own client credentials are used,
// which is enough for catalog lookups.
func (r *Runner) apiClient() (*harmonia.Client, error) {
	if r.client != nil {
		return r.client, nil
	}

	creds := r.config.Credentials
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client_id and client_secret must be set in config.toml", shared.ErrMissingCredentials)
	}

	var authorizer auth.Authorizer
	if r.repo != nil {
		if stored, err := r.repo.Load(creds.ClientID); err == nil && stored.RefreshToken != "" {
			authorizer = auth.NewAuthorizationCode(creds.ClientID, creds.ClientSecret, stored.RefreshToken)
		}
	}
	if authorizer == nil {
		authorizer = auth.NewClientCredentials(creds.ClientID, creds.ClientSecret)
	}

	r.client = harmonia.New(authorizer, harmonia.WithLogger(r.logger))
	return r.client, nil
}

// userClient is apiClient restricted to commands that need the user's grant.
func (r *Runner) userClient() (*harmonia.Client, error) {
	if r.client != nil {
		return r.client, nil
	}
	if r.repo == nil {
		return nil, fmt.Errorf("%w: token storage unavailable", shared.ErrNotAuthenticated)
	}

	creds := r.config.Credentials
	stored, err := r.repo.Load(creds.ClientID)
	if err != nil || stored.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no stored authorization for this client", shared.ErrNotAuthenticated)
	}

	authorizer := auth.NewAuthorizationCode(creds.ClientID, creds.ClientSecret, stored.RefreshToken)
	r.client = harmonia.New(authorizer, harmonia.WithLogger(r.logger))
	return r.client, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// formatDuration renders a track length in m:ss.
func formatDuration(ms int) string {
	seconds := ms / 1000
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
