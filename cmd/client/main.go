package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aurimasv/vitrina/internal/client/api"
	"github.com/aurimasv/vitrina/internal/client/backup"
	"github.com/aurimasv/vitrina/internal/client/cli"
	"github.com/aurimasv/vitrina/internal/client/settings"
	"github.com/aurimasv/vitrina/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		os.Exit(1)
	}

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	settingsSvc := settings.NewService(boltStorage)
	backupSvc := backup.NewService(boltStorage, nil)

	app := cli.New(apiClient, boltStorage, settingsSvc, backupSvc)
	app.Run(ctx, command, args[1:])
}

func defaultServerURL() string {
	if url := os.Getenv("VITRINA_SERVER"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vitrina-client.db"
	}
	return filepath.Join(home, ".vitrina", "client.db")
}

func printVersion() {
	fmt.Printf("Vitrina Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
