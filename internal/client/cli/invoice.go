package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/aurimasv/vitrina/internal/invoice"
)

func (c *Cli) runInvoice(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: vitrina invoice <client-id> [flags]")
	}
	clientID := args[0]

	fs := flag.NewFlagSet("invoice", flag.ContinueOnError)
	jobID := fs.String("job", "", "id of the job to invoice (defaults to the most recent)")
	desc := fs.String("desc", "", "service description (defaults to the settings default)")
	notes := fs.String("notes", "", "notes printed on the invoice")
	due := fs.String("due", "", "payment due date printed on the invoice")
	lang := fs.String("lang", "", "invoice language: en or lt (defaults to the settings default)")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if _, err := c.ensureAuth(ctx); err != nil {
		return err
	}

	client, err := c.apiClient.GetClient(ctx, clientID)
	if err != nil {
		return err
	}

	settings, err := c.settingsSvc.Get(ctx)
	if err != nil {
		return err
	}

	language := *lang
	if language == "" {
		language = settings.DefaultLanguage
	}

	selected := *jobID
	if selected == "" && len(client.Jobs) > 0 {
		// jobs come back newest first
		selected = client.Jobs[0].ID
	}

	composer := invoice.NewComposer(nil)
	path, err := composer.Generate(invoice.Request{
		Client:      *client,
		JobID:       selected,
		Description: *desc,
		Notes:       *notes,
		PaymentDue:  *due,
		Lang:        invoice.Language(language),
		Settings:    *settings,
	}, *out)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Invoice written to %s\n", path)
	return nil
}
