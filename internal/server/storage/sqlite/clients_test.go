package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestClient(t *testing.T, ctx context.Context, s *Storage, name string, rating int) *models.Client {
	now := time.Now().UTC()
	client := &models.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     name + "@example.com",
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.CreateClient(ctx, client))
	return client
}

func createTestJob(t *testing.T, ctx context.Context, s *Storage, clientID string, date time.Time, price float64) *models.Job {
	job := &models.Job{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Date:      date,
		Price:     price,
		Status:    models.StatusCompleted,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateJob(ctx, job))
	return job
}

func TestClientStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now().UTC().Truncate(time.Second)
	client := &models.Client{
		ID:        uuid.New().String(),
		Name:      "Ann Cleaner",
		Email:     "ann@example.com",
		Phone:     "+370 600 11111",
		Address:   "Gedimino pr. 1",
		Notes:     "third floor",
		Rating:    5,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.CreateClient(ctx, client))

	got, err := s.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
	assert.Equal(t, client.Name, got.Name)
	assert.Equal(t, client.Email, got.Email)
	assert.Equal(t, client.Phone, got.Phone)
	assert.Equal(t, client.Address, got.Address)
	assert.Equal(t, client.Notes, got.Notes)
	assert.Equal(t, client.Rating, got.Rating)

	// jobs load as an empty slice, not nil
	require.NotNil(t, got.Jobs)
	assert.Empty(t, got.Jobs)
}

func TestClientStorage_GetClient_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	got, err := s.GetClient(ctx, "nonexistent")
	assert.ErrorIs(t, err, storage.ErrClientNotFound)
	assert.Nil(t, got)
}

func TestClientStorage_GetClient_JobsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	client := createTestClient(t, ctx, s, "Ann", 5)
	old := createTestJob(t, ctx, s, client.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 30)
	recent := createTestJob(t, ctx, s, client.ID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 45)

	got, err := s.GetClient(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, got.Jobs, 2)
	assert.Equal(t, recent.ID, got.Jobs[0].ID)
	assert.Equal(t, old.ID, got.Jobs[1].ID)
}

func TestClientStorage_ListClients(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// empty list is fine
	clients, err := s.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	c1 := createTestClient(t, ctx, s, "Ann", 5)
	c2 := createTestClient(t, ctx, s, "Bob", 3)
	createTestJob(t, ctx, s, c1.ID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 45)

	clients, err = s.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	byID := map[string]models.Client{}
	for _, c := range clients {
		byID[c.ID] = c
	}
	assert.Len(t, byID[c1.ID].Jobs, 1)
	require.NotNil(t, byID[c2.ID].Jobs)
	assert.Empty(t, byID[c2.ID].Jobs)
}

func TestClientStorage_UpdateClient(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	client := createTestClient(t, ctx, s, "Ann", 5)

	tests := []struct {
		wantError error
		name      string
		update    *models.Client
	}{
		{
			name: "update existing client",
			update: &models.Client{
				ID:        client.ID,
				Name:      "Ann Updated",
				Rating:    4,
				UpdatedAt: time.Now().UTC(),
			},
			wantError: nil,
		},
		{
			name: "update non-existent client",
			update: &models.Client{
				ID:        "nonexistent",
				Name:      "Ghost",
				UpdatedAt: time.Now().UTC(),
			},
			wantError: storage.ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.UpdateClient(ctx, tt.update)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)

				got, err := s.GetClient(ctx, tt.update.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.update.Name, got.Name)
				assert.Equal(t, tt.update.Rating, got.Rating)
			}
		})
	}
}

func TestClientStorage_DeleteClient_CascadesToJobs(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	client := createTestClient(t, ctx, s, "Ann", 5)
	job := createTestJob(t, ctx, s, client.ID, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 45)

	require.NoError(t, s.DeleteClient(ctx, client.ID))

	_, err := s.GetClient(ctx, client.ID)
	assert.ErrorIs(t, err, storage.ErrClientNotFound)

	// the cascade removed the job too
	_, err = s.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, storage.ErrJobNotFound)
}

func TestClientStorage_DeleteClient_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.DeleteClient(ctx, "nonexistent")
	assert.ErrorIs(t, err, storage.ErrClientNotFound)
}
