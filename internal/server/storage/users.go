package storage

import (
	"context"
	"time"

	"github.com/aurimasv/vitrina/internal/models"
)

// UserStore defines the interface for account persistence.
type UserStore interface {
	// CreateUser creates a new user
	// Returns ErrUserAlreadyExists if the username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username
	// Returns ErrUserNotFound if the user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID
	// Returns ErrUserNotFound if the user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}

// TokenStore defines the interface for refresh token persistence.
type TokenStore interface {
	// SaveRefreshToken stores a refresh token
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves a refresh token
	// Returns ErrTokenNotFound if the token doesn't exist
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)

	// DeleteRefreshToken removes one refresh token
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteUserTokens removes all tokens of a user, returning how many
	DeleteUserTokens(ctx context.Context, userID string) (int, error)
}
