package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockClientStore is an in-memory ClientStore preserving insertion order.
type mockClientStore struct {
	listErr error
	clients []*models.Client
}

func (m *mockClientStore) CreateClient(_ context.Context, client *models.Client) error {
	m.clients = append(m.clients, client)
	return nil
}

func (m *mockClientStore) GetClient(_ context.Context, id string) (*models.Client, error) {
	for _, c := range m.clients {
		if c.ID == id {
			cp := *c
			if cp.Jobs == nil {
				cp.Jobs = []models.Job{}
			}
			return &cp, nil
		}
	}
	return nil, storage.ErrClientNotFound
}

func (m *mockClientStore) ListClients(_ context.Context) ([]models.Client, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Client, len(m.clients))
	for i, c := range m.clients {
		out[i] = *c
		if out[i].Jobs == nil {
			out[i].Jobs = []models.Job{}
		}
	}
	return out, nil
}

func (m *mockClientStore) UpdateClient(_ context.Context, client *models.Client) error {
	for i, c := range m.clients {
		if c.ID == client.ID {
			client.CreatedAt = c.CreatedAt
			client.Jobs = c.Jobs
			m.clients[i] = client
			return nil
		}
	}
	return storage.ErrClientNotFound
}

func (m *mockClientStore) DeleteClient(_ context.Context, id string) error {
	for i, c := range m.clients {
		if c.ID == id {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return nil
		}
	}
	return storage.ErrClientNotFound
}

// mockJobStore is an in-memory JobStore joined against a client store.
type mockJobStore struct {
	clients *mockClientStore
	jobs    []*models.Job
}

func (m *mockJobStore) CreateJob(ctx context.Context, job *models.Job) error {
	if _, err := m.clients.GetClient(ctx, job.ClientID); err != nil {
		return err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *mockJobStore) GetJob(_ context.Context, id string) (*models.Job, error) {
	for _, j := range m.jobs {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, storage.ErrJobNotFound
}

func (m *mockJobStore) ListJobs(ctx context.Context, clientID string) ([]storage.JobWithClient, error) {
	out := []storage.JobWithClient{}
	for _, j := range m.jobs {
		if clientID != "" && j.ClientID != clientID {
			continue
		}
		client, err := m.clients.GetClient(ctx, j.ClientID)
		if err != nil {
			continue
		}
		out = append(out, storage.JobWithClient{
			Job:          *j,
			ClientName:   client.Name,
			ClientRating: client.Rating,
		})
	}
	return out, nil
}

func (m *mockJobStore) DeleteJob(_ context.Context, id string) error {
	for i, j := range m.jobs {
		if j.ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return storage.ErrJobNotFound
}

// mockUserStore is an in-memory UserStore.
type mockUserStore struct {
	users []*models.User
}

func (m *mockUserStore) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return storage.ErrUserAlreadyExists
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStore) UpdateLastLogin(_ context.Context, userID string, lastLogin time.Time) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.LastLogin = &lastLogin
			return nil
		}
	}
	return storage.ErrUserNotFound
}

// mockTokenStore is an in-memory TokenStore.
type mockTokenStore struct {
	tokens map[string]*models.RefreshToken
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStore) SaveRefreshToken(_ context.Context, token *models.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenStore) GetRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	if t, ok := m.tokens[token]; ok {
		return t, nil
	}
	return nil, storage.ErrTokenNotFound
}

func (m *mockTokenStore) DeleteRefreshToken(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenStore) DeleteUserTokens(_ context.Context, userID string) (int, error) {
	count := 0
	for k, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, k)
			count++
		}
	}
	return count, nil
}
