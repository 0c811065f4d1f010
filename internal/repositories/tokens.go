package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harmonia-dev/harmonia/auth"
	"github.com/harmonia-dev/harmonia/internal/shared"
)

const credentialsSchema = `
	CREATE TABLE IF NOT EXISTS credentials (
		client_id     TEXT PRIMARY KEY,
		refresh_token TEXT NOT NULL DEFAULT '',
		access_token  TEXT NOT NULL DEFAULT '',
		expires_at    TIMESTAMP,
		scopes        TEXT NOT NULL DEFAULT '',
		updated_at    TIMESTAMP NOT NULL
	)
`

// StoredCredential is one persisted credential row: the refresh token that
// survives restarts plus the last minted access token.
type StoredCredential struct {
	ClientID     string
	RefreshToken string
	Token        *auth.AccessToken
	UpdatedAt    time.Time
}

// TokenRepository persists refresh tokens per client id so a completed login
// survives process restarts.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a repository and ensures its schema exists.
func NewTokenRepository(db *sql.DB) (*TokenRepository, error) {
	if _, err := db.Exec(credentialsSchema); err != nil {
		return nil, fmt.Errorf("failed to create credentials table: %w", err)
	}
	return &TokenRepository{db: db}, nil
}

// Save upserts the credential row for a client id.
func (r *TokenRepository) Save(cred StoredCredential) error {
	if cred.ClientID == "" {
		return fmt.Errorf("%w: client id", shared.ErrMissingArgument)
	}

	var accessToken, scopes string
	var expiresAt any
	if cred.Token != nil {
		accessToken = cred.Token.Value
		scopes = strings.Join(cred.Token.Scopes, " ")
		expiresAt = cred.Token.ExpiresAt
	}

	query := `
		INSERT INTO credentials (client_id, refresh_token, access_token, expires_at, scopes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			refresh_token = excluded.refresh_token,
			access_token = excluded.access_token,
			expires_at = excluded.expires_at,
			scopes = excluded.scopes,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, cred.ClientID, cred.RefreshToken, accessToken, expiresAt, scopes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Load retrieves the credential row for a client id. Returns
// [shared.ErrTokenNotFound] when no login was stored.
func (r *TokenRepository) Load(clientID string) (*StoredCredential, error) {
	query := `
		SELECT client_id, refresh_token, access_token, expires_at, scopes, updated_at
		FROM credentials
		WHERE client_id = ?
	`

	var (
		cred        StoredCredential
		accessToken string
		expiresAt   sql.NullTime
		scopes      string
	)
	row := r.db.QueryRow(query, clientID)
	err := row.Scan(&cred.ClientID, &cred.RefreshToken, &accessToken, &expiresAt, &scopes, &cred.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w for client %s", shared.ErrTokenNotFound, clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	if accessToken != "" && expiresAt.Valid {
		cred.Token = &auth.AccessToken{
			Value:     accessToken,
			ExpiresAt: expiresAt.Time,
			Scopes:    strings.Fields(scopes),
		}
	}
	return &cred, nil
}

// Delete removes the credential row for a client id. Deleting a missing row
// is not an error.
func (r *TokenRepository) Delete(clientID string) error {
	if _, err := r.db.Exec(`DELETE FROM credentials WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
