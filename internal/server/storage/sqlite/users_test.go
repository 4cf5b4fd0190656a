package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

func createTestUser(t *testing.T, ctx context.Context, s *Storage, username string) *models.User {
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, user))
	return user
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "ann")

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Nil(t, got.LastLogin)
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	createTestUser(t, ctx, s, "duplicate")

	err := s.CreateUser(ctx, &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "otherhash",
		CreatedAt:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "findme")

	tests := []struct {
		wantError error
		name      string
		username  string
	}{
		{
			name:      "get existing user",
			username:  "findme",
			wantError: nil,
		},
		{
			name:      "get non-existent user",
			username:  "notfound",
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, got.ID)
			}
		})
	}
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := createTestUser(t, ctx, s, "logintest")

	loginTime := time.Now().UTC()
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginTime))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, loginTime, *got.LastLogin, time.Second)

	err = s.UpdateLastLogin(ctx, "nonexistent", loginTime)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
