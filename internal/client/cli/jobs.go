package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/aurimasv/vitrina/pkg/api"
)

func (c *Cli) runJobs(ctx context.Context, args []string) error {
	var clientID string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		clientID = args[0]
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	jobs, err := c.apiClient.ListJobs(ctx, clientID)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs found.")
		return nil
	}

	fmt.Printf("Jobs (%d):\n\n", len(jobs))
	for _, j := range jobs {
		date := j.Date
		if t, err := time.Parse(time.RFC3339, j.Date); err == nil {
			date = t.Local().Format("2006-01-02")
		}
		fmt.Printf("• %s  %s  %.2f EUR  %s  [%s]\n", date, j.Client.Name, j.Price, j.Status, j.ID)
		if j.Notes != "" {
			fmt.Printf("  Notes: %s\n", j.Notes)
		}
	}

	return nil
}

func (c *Cli) runAddJob(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: vitrina add-job <client-id> [flags]")
	}
	clientID := args[0]

	fs := flag.NewFlagSet("add-job", flag.ContinueOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "job date (YYYY-MM-DD)")
	price := fs.Float64("price", 0, "price in EUR")
	notes := fs.String("notes", "", "free-form notes")
	status := fs.String("status", "", "completed, scheduled or cancelled")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	p := *price
	created, err := c.apiClient.CreateJob(ctx, api.JobRequest{
		ClientID: clientID,
		Date:     *date,
		Price:    &p,
		Notes:    *notes,
		Status:   *status,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Job recorded for %s on %s [%s]\n", created.Client.Name, *date, created.ID)
	return nil
}

func (c *Cli) runDeleteJob(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vitrina rm-job <id>")
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteJob(ctx, args[0]); err != nil {
		return err
	}

	fmt.Println("✓ Job deleted.")
	return nil
}
