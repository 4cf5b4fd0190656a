package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	// revoke server side first, then drop the local session either way
	if err := c.apiClient.Logout(ctx); err != nil {
		fmt.Printf("Warning: server logout failed: %v\n", err)
	}

	if err := c.authStore.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
