package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurimasv/vitrina/internal/client/storage"
	"github.com/aurimasv/vitrina/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	ctx := context.Background()

	s, err := New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage_AuthRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	// nothing stored yet
	_, err := s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	auth := &storage.AuthData{
		Username:     "ann",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveAuth(ctx, auth))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	// saving again replaces the session
	auth2 := &storage.AuthData{Username: "ann", AccessToken: "rotated"}
	require.NoError(t, s.SaveAuth(ctx, auth2))

	got, err = s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.AccessToken)

	require.NoError(t, s.DeleteAuth(ctx))
	_, err = s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestStorage_DeleteAuth_Empty(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	// deleting a missing session is not an error
	assert.NoError(t, s.DeleteAuth(ctx))
}

func TestStorage_SettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetSettings(ctx)
	assert.ErrorIs(t, err, storage.ErrSettingsNotFound)

	settings := &models.CompanySettings{
		Name:            "Shiny Windows Ltd",
		Address:         "Gedimino pr. 1, Vilnius",
		BankName:        "Swedbank",
		BankAccount:     "LT12 1000 0111 0100 1000",
		DefaultLanguage: "lt",
		DefaultService:  "Langų valymas",
	}
	require.NoError(t, s.SaveSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestStorage_BackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetBackup(ctx)
	assert.ErrorIs(t, err, storage.ErrNoBackup)

	blob := []byte(`{"clients":[],"jobs":[],"lastSaved":"2026-08-31T10:00:00Z"}`)
	require.NoError(t, s.SaveBackup(ctx, blob))

	got, err := s.GetBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, blob, got)

	require.NoError(t, s.DeleteBackup(ctx))
	_, err = s.GetBackup(ctx)
	assert.ErrorIs(t, err, storage.ErrNoBackup)
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{Username: "ann"}))
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ann", got.Username)
}
