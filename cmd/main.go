package main

import (
	"context"
	"errors"
	"os"

	"github.com/harmonia-dev/harmonia/internal/repositories"
	"github.com/harmonia-dev/harmonia/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var repo *repositories.TokenRepository
	if db, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if repo, err = repositories.NewTokenRepository(db); err != nil {
			logger.Warnf("token storage unavailable: %v", err)
		}
	} else {
		logger.Warnf("failed to open token database: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Repo:   repo,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "harmonia",
		Usage:    "Browse the Spotify catalog and your listening history",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error(err)
			logger.Info("run `harmonia login` first")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
