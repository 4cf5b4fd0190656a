package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/server/storage"
	"github.com/aurimasv/vitrina/pkg/api"
)

// JobsHandler serves job creation, listing and deletion.
type JobsHandler struct {
	logger *slog.Logger
	jobs   storage.JobStore
}

func NewJobsHandler(logger *slog.Logger, jobs storage.JobStore) *JobsHandler {
	return &JobsHandler{logger: logger, jobs: jobs}
}

// List handles GET /api/v1/jobs?clientId=
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := r.URL.Query().Get("clientId")

	jobs, err := h.jobs.ListJobs(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list jobs", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("fetch jobs", err), http.StatusInternalServerError)
		return
	}

	out := make([]api.JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = jobResponse(j)
	}
	sendJSON(h.logger, w, out, http.StatusOK)
}

// Create handles POST /api/v1/jobs. Creation fails with 404 when the client
// does not exist.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ClientID == "" || req.Date == "" || req.Price == nil {
		sendError(h.logger, w, "Client ID, date, and price are required", http.StatusBadRequest)
		return
	}

	date, err := parseJobDate(req.Date)
	if err != nil {
		sendError(h.logger, w, "date must be an ISO timestamp or YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	status := models.JobStatus(req.Status)
	if req.Status == "" {
		status = models.StatusCompleted
	}

	job := &models.Job{
		ID:        uuid.New().String(),
		ClientID:  req.ClientID,
		Date:      date,
		Price:     *req.Price,
		Notes:     req.Notes,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := job.Validate(); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.jobs.CreateJob(ctx, job); err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			sendError(h.logger, w, "Client not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create job", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("create job", err), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "job created",
		slog.String("job_id", job.ID),
		slog.String("client_id", job.ClientID))

	// Reload through the listing join so the response carries the client
	// summary like every other job payload.
	created, err := h.jobs.ListJobs(ctx, job.ClientID)
	if err == nil {
		for _, j := range created {
			if j.ID == job.ID {
				sendJSON(h.logger, w, jobResponse(j), http.StatusCreated)
				return
			}
		}
	}
	sendJSON(h.logger, w, job, http.StatusCreated)
}

// Delete handles DELETE /api/v1/jobs/{id}
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.jobs.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, storage.ErrJobNotFound) {
			sendError(h.logger, w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete job", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("delete job", err), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "job deleted", slog.String("job_id", id))
	sendJSON(h.logger, w, api.DeleteResponse{Success: true}, http.StatusOK)
}

// parseJobDate accepts a full timestamp or a bare calendar date.
func parseJobDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func jobResponse(j storage.JobWithClient) api.JobResponse {
	return api.JobResponse{
		ID:        j.ID,
		ClientID:  j.ClientID,
		Date:      j.Date.Format(time.RFC3339),
		Price:     j.Price,
		Notes:     j.Notes,
		Status:    string(j.Status),
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
		Client: api.JobClient{
			ID:     j.ClientID,
			Name:   j.ClientName,
			Rating: j.ClientRating,
		},
	}
}
