package storage

import (
	"context"

	"github.com/aurimasv/vitrina/internal/models"
)

// ClientStore defines the interface for client persistence.
// Clients are always loaded with their jobs eagerly attached,
// jobs ordered by date descending.
type ClientStore interface {
	// CreateClient creates a new client
	CreateClient(ctx context.Context, client *models.Client) error

	// GetClient retrieves one client with its jobs
	// Returns ErrClientNotFound if the client doesn't exist
	GetClient(ctx context.Context, id string) (*models.Client, error)

	// ListClients retrieves all clients with their jobs,
	// newest client first
	ListClients(ctx context.Context) ([]models.Client, error)

	// UpdateClient updates the client's own fields (not its jobs)
	// Returns ErrClientNotFound if the client doesn't exist
	UpdateClient(ctx context.Context, client *models.Client) error

	// DeleteClient deletes the client and, by cascade, all its jobs
	// Returns ErrClientNotFound if the client doesn't exist
	DeleteClient(ctx context.Context, id string) error
}
