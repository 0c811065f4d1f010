package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/harmonia-dev/harmonia"
	"github.com/harmonia-dev/harmonia/internal/shared"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.styles == nil {
				t.Error("expected styles to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("register returns all commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}
		for _, want := range []string{"login", "logout", "profile", "playlists", "artist", "album", "track", "search", "playing", "recent"} {
			if !names[want] {
				t.Errorf("expected %q command to be registered", want)
			}
		}
	})

	t.Run("apiClient requires credentials", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Credentials.ClientID = ""
		config.Credentials.ClientSecret = ""
		runner := NewRunner(RunnerOpts{Config: config})

		if _, err := runner.apiClient(); !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("userClient requires stored authorization", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if _, err := runner.userClient(); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("compact", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"name": "test"}, false); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}
			if got := output.String(); got != "{\"name\":\"test\"}\n" {
				t.Errorf("unexpected output %q", got)
			}
		})

		t.Run("pretty", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"name": "test"}, true); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}
			if !strings.Contains(output.String(), "  \"name\": \"test\"") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})
	})
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{0, "0:00"},
		{1000, "0:01"},
		{59999, "0:59"},
		{60000, "1:00"},
		{213000, "3:33"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.ms); got != tc.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestParseSearchKinds(t *testing.T) {
	t.Run("single type", func(t *testing.T) {
		kinds, err := parseSearchKinds("track")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kinds) != 1 || kinds[0] != harmonia.SearchTracks {
			t.Errorf("unexpected kinds %v", kinds)
		}
	})

	t.Run("multiple types with spaces", func(t *testing.T) {
		kinds, err := parseSearchKinds("artist, album")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kinds) != 2 || kinds[0] != harmonia.SearchArtists || kinds[1] != harmonia.SearchAlbums {
			t.Errorf("unexpected kinds %v", kinds)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := parseSearchKinds("podcast"); err == nil {
			t.Error("expected error for unknown type")
		}
	})

	t.Run("empty value", func(t *testing.T) {
		if _, err := parseSearchKinds(""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestArtistNames(t *testing.T) {
	artists := []harmonia.SimpleArtist{{Name: "First"}, {Name: "Second"}}
	if got := artistNames(artists); got != "First, Second" {
		t.Errorf("unexpected names %q", got)
	}
}
