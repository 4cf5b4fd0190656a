package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aurimasv/vitrina/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	auth, err := c.authStore.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		fmt.Println("Session:  not logged in")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		fmt.Printf("Session:  logged in as %s\n", auth.Username)
		if time.Now().After(auth.ExpiresAt) {
			fmt.Println("Token:    expired (will refresh on next command)")
		} else {
			fmt.Printf("Token:    valid until %s\n", auth.ExpiresAt.Local().Format(time.RFC1123))
		}
	}

	health, err := c.apiClient.Health(ctx)
	if err != nil {
		fmt.Printf("Server:   unreachable (%v)\n", err)
		return nil
	}
	fmt.Printf("Server:   %s", health.Status)
	if health.Version != "" {
		fmt.Printf(" (version %s)", health.Version)
	}
	fmt.Println()

	dbStatus, err := c.apiClient.DBStatus(ctx)
	if err != nil {
		fmt.Printf("Database: status check failed (%v)\n", err)
		return nil
	}
	fmt.Printf("Database: %s", dbStatus.Connection.Status)
	if dbStatus.Connection.Error != "" {
		fmt.Printf(" (%s)", dbStatus.Connection.Error)
	}
	fmt.Println()
	if !dbStatus.Configuration.IsValid {
		fmt.Printf("Config:   %s\n", dbStatus.Configuration.Message)
	}

	return nil
}
