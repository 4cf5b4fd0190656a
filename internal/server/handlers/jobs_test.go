package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurimasv/vitrina/pkg/api"
)

func setupJobsRouter(clients *mockClientStore) (*chi.Mux, *mockJobStore) {
	jobStore := &mockJobStore{clients: clients}
	h := NewJobsHandler(testLogger(), jobStore)

	r := chi.NewRouter()
	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Delete("/jobs/{id}", h.Delete)
	return r, jobStore
}

func TestJobsHandler_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{
			name:     "valid job with calendar date",
			body:     `{"clientId":"c1","date":"2026-08-15","price":45}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "valid job with iso timestamp",
			body:     `{"clientId":"c1","date":"2026-08-15T10:00:00Z","price":45,"status":"scheduled"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "zero price is allowed",
			body:     `{"clientId":"c1","date":"2026-08-15","price":0}`,
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing client id",
			body:      `{"date":"2026-08-15","price":45}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Client ID, date, and price are required",
		},
		{
			name:      "missing date",
			body:      `{"clientId":"c1","price":45}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Client ID, date, and price are required",
		},
		{
			name:      "missing price",
			body:      `{"clientId":"c1","date":"2026-08-15"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "Client ID, date, and price are required",
		},
		{
			name:      "unparseable date",
			body:      `{"clientId":"c1","date":"15.08.2026","price":45}`,
			wantCode:  http.StatusBadRequest,
			wantError: "date must be an ISO timestamp or YYYY-MM-DD",
		},
		{
			name:      "negative price",
			body:      `{"clientId":"c1","date":"2026-08-15","price":-5}`,
			wantCode:  http.StatusBadRequest,
			wantError: "price must not be negative",
		},
		{
			name:      "unknown status",
			body:      `{"clientId":"c1","date":"2026-08-15","price":45,"status":"paused"}`,
			wantCode:  http.StatusBadRequest,
			wantError: `unknown status "paused"`,
		},
		{
			name:      "unknown client",
			body:      `{"clientId":"ghost","date":"2026-08-15","price":45}`,
			wantCode:  http.StatusNotFound,
			wantError: "Client not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients := &mockClientStore{}
			seedClients(clients)
			router, jobStore := setupJobsRouter(clients)

			req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusCreated {
				var got api.JobResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, "c1", got.ClientID)
				// the response carries the joined client summary
				assert.Equal(t, "Ann Cleaner", got.Client.Name)
				assert.Equal(t, 5, got.Client.Rating)
				assert.Len(t, jobStore.jobs, 1)
			} else {
				var errResp api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tt.wantError, errResp.Error)
				assert.Empty(t, jobStore.jobs)
			}
		})
	}
}

func TestJobsHandler_Create_DefaultsToCompleted(t *testing.T) {
	clients := &mockClientStore{}
	seedClients(clients)
	router, _ := setupJobsRouter(clients)

	body := `{"clientId":"c1","date":"2026-08-15","price":45}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got api.JobResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "completed", got.Status)
}

func TestJobsHandler_List(t *testing.T) {
	clients := &mockClientStore{}
	seedClients(clients)
	router, jobStore := setupJobsRouter(clients)

	for _, body := range []string{
		`{"clientId":"c1","date":"2026-08-15","price":45}`,
		`{"clientId":"c2","date":"2026-07-01","price":60}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	require.Len(t, jobStore.jobs, 2)

	t.Run("all jobs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []api.JobResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("filtered by client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs?clientId=c2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []api.JobResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "Bob Windows", got[0].Client.Name)
	})
}

func TestJobsHandler_Delete(t *testing.T) {
	clients := &mockClientStore{}
	seedClients(clients)
	router, jobStore := setupJobsRouter(clients)

	req := httptest.NewRequest(http.MethodPost, "/jobs",
		bytes.NewBufferString(`{"clientId":"c1","date":"2026-08-15","price":45}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	jobID := jobStore.jobs[0].ID

	req = httptest.NewRequest(http.MethodDelete, "/jobs/"+jobID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, jobStore.jobs)

	req = httptest.NewRequest(http.MethodDelete, "/jobs/"+jobID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Job not found", errResp.Error)
}
