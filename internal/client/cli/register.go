package cli

import (
	"context"
	"fmt"

	"github.com/aurimasv/vitrina/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("User ID: %s\n", resp.UserID)
	fmt.Println()
	fmt.Println("Run 'vitrina login' to start a session.")

	return nil
}
