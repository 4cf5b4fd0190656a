package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

// CreateJob creates a new job after verifying the parent client exists.
// The existence check is explicit rather than relying on the FK error so the
// caller gets a clean ErrClientNotFound.
func (s *Storage) CreateJob(ctx context.Context, job *models.Job) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE id = ?)`, job.ClientID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return storage.ErrClientNotFound
	}

	query := `
		INSERT INTO jobs (id, client_id, date, price, notes, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		job.ID,
		job.ClientID,
		job.Date,
		job.Price,
		job.Notes,
		job.Status,
		job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

// GetJob retrieves one job
func (s *Storage) GetJob(ctx context.Context, id string) (*models.Job, error) {
	query := `
		SELECT id, client_id, date, price, notes, status, created_at
		FROM jobs
		WHERE id = ?
	`

	job := &models.Job{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.ClientID,
		&job.Date,
		&job.Price,
		&job.Notes,
		&job.Status,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return job, nil
}

// ListJobs retrieves jobs joined with their client, newest first
func (s *Storage) ListJobs(ctx context.Context, clientID string) ([]storage.JobWithClient, error) {
	query := `
		SELECT j.id, j.client_id, j.date, j.price, j.notes, j.status, j.created_at,
		       c.name, c.rating
		FROM jobs j
		JOIN clients c ON c.id = j.client_id
	`
	var args []any
	if clientID != "" {
		query += ` WHERE j.client_id = ?`
		args = append(args, clientID)
	}
	query += ` ORDER BY j.date DESC, j.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []storage.JobWithClient{}
	for rows.Next() {
		var j storage.JobWithClient
		if err := rows.Scan(
			&j.ID, &j.ClientID, &j.Date, &j.Price, &j.Notes, &j.Status, &j.CreatedAt,
			&j.ClientName, &j.ClientRating,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// DeleteJob deletes one job
func (s *Storage) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrJobNotFound
	}

	return nil
}
