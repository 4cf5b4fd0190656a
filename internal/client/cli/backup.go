package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	clientapi "github.com/aurimasv/vitrina/internal/client/api"
	"github.com/aurimasv/vitrina/internal/client/backup"
	"github.com/aurimasv/vitrina/internal/client/storage"
	"github.com/aurimasv/vitrina/internal/models"
)

func (c *Cli) runBackup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: vitrina backup save|load|export|import|clear|info")
	}

	switch args[0] {
	case "save":
		return c.runBackupSave(ctx)
	case "load":
		return c.runBackupLoad(ctx)
	case "export":
		return c.runBackupExport(ctx, args[1:])
	case "import":
		return c.runBackupImport(ctx, args[1:])
	case "clear":
		return c.runBackupClear(ctx)
	case "info":
		return c.runBackupInfo(ctx)
	default:
		return fmt.Errorf("unknown backup subcommand: %s", args[0])
	}
}

func (c *Cli) runBackupSave(ctx context.Context) error {
	clients, jobs, err := c.fetchDataset(ctx)
	if err != nil {
		return err
	}

	if err := c.backupSvc.Save(ctx, clients, jobs); err != nil {
		if errors.Is(err, backup.ErrQuotaExceeded) {
			return fmt.Errorf("dataset no longer fits the local backup quota: %w", err)
		}
		return err
	}

	fmt.Printf("✓ Backup saved: %d clients, %d jobs.\n", len(clients), len(jobs))
	return nil
}

func (c *Cli) runBackupLoad(ctx context.Context) error {
	clients, jobs, err := c.backupSvc.Load(ctx)
	if errors.Is(err, storage.ErrNoBackup) {
		return fmt.Errorf("no local backup, run 'vitrina backup save' first")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Backup contains %d clients and %d jobs:\n\n", len(clients), len(jobs))
	for _, cl := range clients {
		fmt.Printf("• %s  %s  [%s]\n", cl.Name, stars(cl.Rating), cl.ID)
	}
	return nil
}

func (c *Cli) runBackupExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("backup export", flag.ContinueOnError)
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clients, jobs, err := c.fetchDataset(ctx)
	if err != nil {
		return err
	}

	data, filename, err := c.backupSvc.Export(clients, jobs)
	if err != nil {
		return err
	}

	path := filepath.Join(*out, filename)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Exported %d clients and %d jobs to %s\n", len(clients), len(jobs), path)
	return nil
}

func (c *Cli) runBackupImport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vitrina backup import <file>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	snap, err := c.backupSvc.Import(data)
	if err != nil {
		return err
	}

	if err := c.backupSvc.Save(ctx, snap.Clients, snap.Jobs); err != nil {
		return err
	}

	fmt.Printf("✓ Imported backup from %s: %d clients, %d jobs.\n",
		snap.BackupDate.Local().Format("2006-01-02"), len(snap.Clients), len(snap.Jobs))
	return nil
}

func (c *Cli) runBackupClear(ctx context.Context) error {
	if err := c.backupSvc.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Local backup removed.")
	return nil
}

func (c *Cli) runBackupInfo(ctx context.Context) error {
	info, err := c.backupSvc.Info(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Storage used: %.1f KB of %.1f MB\n",
		float64(info.Used)/1024, float64(info.Total)/(1024*1024))
	if info.LastSaved != nil {
		fmt.Printf("Last saved:   %s\n", info.LastSaved.Local().Format(time.RFC1123))
	} else {
		fmt.Println("Last saved:   never")
	}
	return nil
}

// fetchDataset pulls the full dataset from the server, with jobs split out of
// the client records the way the backup format stores them.
func (c *Cli) fetchDataset(ctx context.Context) ([]models.Client, []models.Job, error) {
	if _, err := c.ensureAuth(ctx); err != nil {
		return nil, nil, err
	}

	listed, err := c.apiClient.ListClients(ctx, clientapi.ListParams{})
	if err != nil {
		return nil, nil, err
	}

	clients := make([]models.Client, 0, len(listed))
	var jobs []models.Job
	for _, cl := range listed {
		jobs = append(jobs, cl.Jobs...)
		record := cl.Client
		record.Jobs = nil
		clients = append(clients, record)
	}

	return clients, jobs, nil
}
