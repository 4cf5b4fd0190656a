package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aurimasv/vitrina/internal/client/storage"
)

// ensureAuth loads the stored session and attaches its access token to the
// API client. An expired access token is transparently refreshed and the
// rotated pair saved back.
func (c *Cli) ensureAuth(ctx context.Context) (*storage.AuthData, error) {
	auth, err := c.authStore.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, fmt.Errorf("not authenticated, run 'vitrina login' first")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if time.Now().After(auth.ExpiresAt) {
		tokens, err := c.apiClient.Refresh(ctx, auth.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("session expired, run 'vitrina login' again: %w", err)
		}

		auth.AccessToken = tokens.AccessToken
		auth.RefreshToken = tokens.RefreshToken
		auth.ExpiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn) * time.Second)

		if err := c.authStore.SaveAuth(ctx, auth); err != nil {
			return nil, fmt.Errorf("failed to save refreshed session: %w", err)
		}
	}

	c.apiClient.SetAccessToken(auth.AccessToken)
	return auth, nil
}
