package storage

import (
	"context"

	"github.com/aurimasv/vitrina/internal/models"
)

// JobWithClient is a job joined with the identifying fields of its client,
// the shape the jobs listing returns.
type JobWithClient struct {
	models.Job
	ClientName   string `json:"clientName"`
	ClientRating int    `json:"clientRating"`
}

// JobStore defines the interface for job persistence.
type JobStore interface {
	// CreateJob creates a new job for an existing client
	// Returns ErrClientNotFound if the client doesn't exist
	CreateJob(ctx context.Context, job *models.Job) error

	// GetJob retrieves one job
	// Returns ErrJobNotFound if the job doesn't exist
	GetJob(ctx context.Context, id string) (*models.Job, error)

	// ListJobs retrieves jobs joined with their client, newest first.
	// An empty clientID lists jobs of all clients.
	ListJobs(ctx context.Context, clientID string) ([]JobWithClient, error)

	// DeleteJob deletes one job
	// Returns ErrJobNotFound if the job doesn't exist
	DeleteJob(ctx context.Context, id string) error
}
