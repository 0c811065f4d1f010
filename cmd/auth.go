package main

import (
	"context"
	"fmt"
	"time"

	"github.com/harmonia-dev/harmonia/auth"
	"github.com/harmonia-dev/harmonia/internal/repositories"
	"github.com/harmonia-dev/harmonia/internal/server"
	"github.com/harmonia-dev/harmonia/internal/shared"
	"github.com/urfave/cli/v3"
)

const loginTimeout = 2 * time.Minute

// Login performs the OAuth2 authorization code flow.
//
// Starts a local HTTP server, opens the browser for user authorization, and
// stores the resulting refresh token.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	creds := r.config.Credentials
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return fmt.Errorf("%w: client_id and client_secret must be set in config.toml", shared.ErrMissingCredentials)
	}
	if r.repo == nil {
		return fmt.Errorf("%w: token storage unavailable", shared.ErrMissingConfig)
	}

	state := auth.GenerateState()
	authURL := auth.AuthorizationURL(creds.ClientID, creds.RedirectURI, state, loginScopes, cmd.Bool("show-dialog"))

	oauthConfig := auth.OAuthConfig(creds.ClientID, creds.ClientSecret, creds.RedirectURI, loginScopes)
	handler := server.NewOAuthHandler(oauthConfig, state)
	srv, err := server.NewCallbackServer(r.config.Server.Host, r.config.Server.Port, creds.RedirectURI, handler)
	if err != nil {
		return fmt.Errorf("failed to create callback server: %w", err)
	}

	r.logger.Infof("starting OAuth callback server at %s:%d", r.config.Server.Host, r.config.Server.Port)
	if err := srv.Start(); err != nil {
		return err
	}

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlain("%s\n", r.styles.Warn("⚠ Could not open browser automatically."))
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (%v timeout)...\n", loginTimeout)

	waitCtx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()
	result, err := srv.Wait(waitCtx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	token := result.Token
	if token == nil || token.RefreshToken == "" {
		return fmt.Errorf("%w: no refresh token in response", shared.ErrAuthFailed)
	}

	cred := repositories.StoredCredential{
		ClientID:     creds.ClientID,
		RefreshToken: token.RefreshToken,
	}
	if token.AccessToken != "" && !token.Expiry.IsZero() {
		cred.Token = &auth.AccessToken{Value: token.AccessToken, ExpiresAt: token.Expiry}
	}
	if err := r.repo.Save(cred); err != nil {
		return fmt.Errorf("failed to store authorization: %w", err)
	}

	// Drop any cached client-credentials client so the next command picks up
	// the user's grant.
	r.client = nil

	r.writePlain("%s Authorization successful\n", r.styles.OK("✓"))
	r.writePlain("%s\n", r.styles.Faint("You can now use: harmonia playing"))

	return nil
}

// Logout removes the stored authorization for the configured client.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	if r.repo == nil {
		return fmt.Errorf("%w: token storage unavailable", shared.ErrMissingConfig)
	}

	if err := r.repo.Delete(r.config.Credentials.ClientID); err != nil {
		return fmt.Errorf("failed to remove authorization: %w", err)
	}
	r.client = nil

	r.writePlain("%s Stored authorization removed\n", r.styles.OK("✓"))
	return nil
}
