package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

// CreateClient creates a new client
func (s *Storage) CreateClient(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (id, name, email, phone, address, notes, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Notes,
		client.Rating,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}

	return nil
}

// GetClient retrieves one client with its jobs eagerly loaded
func (s *Storage) GetClient(ctx context.Context, id string) (*models.Client, error) {
	query := `
		SELECT id, name, email, phone, address, notes, rating, created_at, updated_at
		FROM clients
		WHERE id = ?
	`

	client := &models.Client{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.Notes,
		&client.Rating,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	jobs, err := s.jobsForClients(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	client.Jobs = jobs[id]
	if client.Jobs == nil {
		client.Jobs = []models.Job{}
	}

	return client, nil
}

// ListClients retrieves all clients with their jobs, newest client first
func (s *Storage) ListClients(ctx context.Context) ([]models.Client, error) {
	query := `
		SELECT id, name, email, phone, address, notes, rating, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	var ids []string
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.Notes, &c.Rating, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	jobsByClient, err := s.jobsForClients(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].Jobs = jobsByClient[clients[i].ID]
		if clients[i].Jobs == nil {
			clients[i].Jobs = []models.Job{}
		}
	}

	return clients, nil
}

// UpdateClient updates the client's own fields
func (s *Storage) UpdateClient(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = ?, email = ?, phone = ?, address = ?, notes = ?, rating = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Notes,
		client.Rating,
		client.UpdatedAt,
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrClientNotFound
	}

	return nil
}

// DeleteClient deletes the client; its jobs go with it via the FK cascade
func (s *Storage) DeleteClient(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrClientNotFound
	}

	return nil
}

// jobsForClients loads the jobs of the given clients in one query, bucketed
// by client id, date descending with created_at as secondary key so last-job
// ties resolve the same way on every call.
func (s *Storage) jobsForClients(ctx context.Context, clientIDs []string) (map[string][]models.Job, error) {
	byClient := make(map[string][]models.Job)
	if len(clientIDs) == 0 {
		return byClient, nil
	}

	placeholders := strings.Repeat("?,", len(clientIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`
		SELECT id, client_id, date, price, notes, status, created_at
		FROM jobs
		WHERE client_id IN (%s)
		ORDER BY date DESC, created_at DESC
	`, placeholders)

	args := make([]any, len(clientIDs))
	for i, id := range clientIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.ClientID, &j.Date, &j.Price, &j.Notes, &j.Status, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		byClient[j.ClientID] = append(byClient[j.ClientID], j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return byClient, nil
}
