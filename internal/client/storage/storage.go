// Package storage defines the client-local persistence interfaces: session
// tokens, company settings and the backup blob all live in one local
// key-value file, never on the server.
package storage

import (
	"context"
	"time"

	"github.com/aurimasv/vitrina/internal/models"
)

// AuthData is the cached session of the CLI.
type AuthData struct {
	Username     string    `json:"username"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AuthStorage persists the session token pair.
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the session
	// Returns ErrAuthNotFound if not logged in
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the session
	DeleteAuth(ctx context.Context) error
}

// SettingsStorage persists the company letterhead settings.
type SettingsStorage interface {
	// SaveSettings stores the settings, replacing any previous ones
	SaveSettings(ctx context.Context, settings *models.CompanySettings) error

	// GetSettings retrieves the settings
	// Returns ErrSettingsNotFound when never saved
	GetSettings(ctx context.Context) (*models.CompanySettings, error)
}

// BackupStorage persists the opaque backup blob.
type BackupStorage interface {
	// SaveBackup stores the serialized snapshot
	SaveBackup(ctx context.Context, data []byte) error

	// GetBackup retrieves the serialized snapshot
	// Returns ErrNoBackup when nothing is stored
	GetBackup(ctx context.Context) ([]byte, error)

	// DeleteBackup removes the stored snapshot
	DeleteBackup(ctx context.Context) error
}
