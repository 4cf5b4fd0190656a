package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	clientapi "github.com/aurimasv/vitrina/internal/client/api"
	"github.com/aurimasv/vitrina/internal/view"
	"github.com/aurimasv/vitrina/pkg/api"
)

func (c *Cli) runClients(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	search := fs.String("search", "", "match against name, email, phone and notes")
	rating := fs.Int("rating", 0, "minimum rating (1-5)")
	sortBy := fs.String("sort", "", "sort key: name, rating, price, date")
	order := fs.String("order", "", "sort order: asc, desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	clients, err := c.apiClient.ListClients(ctx, clientapi.ListParams{
		Search:    *search,
		MinRating: *rating,
		SortBy:    *sortBy,
		SortOrder: *order,
	})
	if err != nil {
		return err
	}

	if len(clients) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	now := time.Now()
	fmt.Printf("Clients (%d):\n\n", len(clients))
	for _, cl := range clients {
		fmt.Printf("• %s  %s  [%s]\n", cl.Name, stars(cl.Rating), cl.ID)
		if cl.Phone != "" {
			fmt.Printf("  Phone:    %s\n", cl.Phone)
		}
		if cl.Email != "" {
			fmt.Printf("  Email:    %s\n", cl.Email)
		}
		if cl.Address != "" {
			fmt.Printf("  Address:  %s\n", cl.Address)
		}

		var lastDate *time.Time
		if cl.LastJob != nil {
			lastDate = &cl.LastJob.Date
			fmt.Printf("  Last job: %s (%.2f EUR)\n", cl.LastJob.Date.Format("2006-01-02"), cl.LastJob.Price)
		}
		fmt.Printf("  Due:      %s\n", view.FreshnessOf(lastDate, now))

		if cl.Notes != "" {
			fmt.Printf("  Notes:    %s\n", cl.Notes)
		}
		fmt.Println()
	}

	return nil
}

func (c *Cli) runAddClient(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: vitrina add-client <name> [flags]")
	}
	name := args[0]

	fs := flag.NewFlagSet("add-client", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "street address")
	notes := fs.String("notes", "", "free-form notes")
	rating := fs.Int("rating", 0, "rating (0-5)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	created, err := c.apiClient.CreateClient(ctx, api.ClientRequest{
		Name:    name,
		Email:   *email,
		Phone:   *phone,
		Address: *address,
		Notes:   *notes,
		Rating:  *rating,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Client created: %s [%s]\n", created.Name, created.ID)
	return nil
}

func (c *Cli) runEditClient(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: vitrina edit-client <id> [flags]")
	}
	id := args[0]

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	// start from the stored record so unset flags keep their value
	current, err := c.apiClient.GetClient(ctx, id)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("edit-client", flag.ContinueOnError)
	name := fs.String("name", current.Name, "client name")
	email := fs.String("email", current.Email, "email address")
	phone := fs.String("phone", current.Phone, "phone number")
	address := fs.String("address", current.Address, "street address")
	notes := fs.String("notes", current.Notes, "free-form notes")
	rating := fs.Int("rating", current.Rating, "rating (0-5)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	updated, err := c.apiClient.UpdateClient(ctx, id, api.ClientRequest{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Address: *address,
		Notes:   *notes,
		Rating:  *rating,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Client updated: %s [%s]\n", updated.Name, updated.ID)
	return nil
}

func (c *Cli) runDeleteClient(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vitrina rm-client <id>")
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteClient(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("✓ Client deleted (including all its jobs).")
	return nil
}

func stars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
