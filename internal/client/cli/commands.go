package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "clients":
		err = c.runClients(ctx, args)
	case "add-client":
		err = c.runAddClient(ctx, args)
	case "edit-client":
		err = c.runEditClient(ctx, args)
	case "rm-client":
		err = c.runDeleteClient(ctx, args)
	case "jobs":
		err = c.runJobs(ctx, args)
	case "add-job":
		err = c.runAddJob(ctx, args)
	case "rm-job":
		err = c.runDeleteJob(ctx, args)
	case "calendar":
		err = c.runCalendar(ctx, args)
	case "invoice":
		err = c.runInvoice(ctx, args)
	case "backup":
		err = c.runBackup(ctx, args)
	case "settings":
		err = c.runSettings(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
