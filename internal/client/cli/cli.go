// Package cli implements the command-line interface of the client binary.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/aurimasv/vitrina/internal/client/api"
	"github.com/aurimasv/vitrina/internal/client/backup"
	"github.com/aurimasv/vitrina/internal/client/settings"
	"github.com/aurimasv/vitrina/internal/client/storage"
)

type Cli struct {
	apiClient   *api.Client
	authStore   storage.AuthStorage
	settingsSvc *settings.Service
	backupSvc   *backup.Service
}

func New(apiClient *api.Client, authStore storage.AuthStorage, settingsSvc *settings.Service, backupSvc *backup.Service) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authStore:   authStore,
		settingsSvc: settingsSvc,
		backupSvc:   backupSvc,
	}
}

func PrintUsage() {
	fmt.Println("Vitrina Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vitrina [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: ~/.vitrina/client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                  Register new user")
	fmt.Println("  login                     Login to server")
	fmt.Println("  logout                    Logout from server")
	fmt.Println("  status                    Show session and server status")
	fmt.Println("  clients                   List clients (-search, -rating, -sort, -order)")
	fmt.Println("  add-client <name>         Add a client (-email, -phone, -address, -notes, -rating)")
	fmt.Println("  edit-client <id>          Update client fields (-name, -email, -phone, -address, -notes, -rating)")
	fmt.Println("  rm-client <id>            Delete a client and all its jobs")
	fmt.Println("  jobs [client-id]          List jobs, optionally for one client")
	fmt.Println("  add-job <client-id>       Record a job (-date, -price, -notes, -status)")
	fmt.Println("  rm-job <id>               Delete a job")
	fmt.Println("  calendar [YYYY-MM]        Show the month calendar of jobs")
	fmt.Println("  invoice <client-id>       Generate a PDF invoice (-job, -desc, -notes, -due, -lang, -out)")
	fmt.Println("  backup <subcommand>       save | load | export | import | clear | info")
	fmt.Println("  settings <subcommand>     show | set")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  vitrina register")
	fmt.Println("  vitrina login")
	fmt.Println("  vitrina clients -search ann -rating 3 -sort price -order desc")
	fmt.Println("  vitrina add-client \"Ann Cleaner\" -phone \"+370 600 12345\" -rating 5")
	fmt.Println("  vitrina add-job b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 -date 2026-08-15 -price 45")
	fmt.Println("  vitrina calendar 2026-08")
	fmt.Println("  vitrina invoice b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 -job <job-id> -lang lt")
	fmt.Println("  vitrina backup export -out ./backups")
	fmt.Println("  vitrina settings set -name \"Shiny Windows Ltd\" -bank-account LT12...")
}

// readInput reads one trimmed line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
