package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aurimasv/vitrina/internal/models"
	"github.com/aurimasv/vitrina/internal/query"
	"github.com/aurimasv/vitrina/internal/server/storage"
	"github.com/aurimasv/vitrina/internal/view"
	"github.com/aurimasv/vitrina/pkg/api"
)

// ClientsHandler serves the client CRUD routes and the filtered dashboard
// listing.
type ClientsHandler struct {
	logger  *slog.Logger
	clients storage.ClientStore
	engine  *query.Engine
}

// NewClientsHandler creates the handler. A nil engine gets the default
// English collation.
func NewClientsHandler(logger *slog.Logger, clients storage.ClientStore, engine *query.Engine) *ClientsHandler {
	if engine == nil {
		engine = query.Default()
	}
	return &ClientsHandler{logger: logger, clients: clients, engine: engine}
}

// List handles GET /api/v1/clients?search=&rating=&sortBy=&sortOrder=
// The full list is loaded with jobs, the derived last job attached, then the
// query engine filters and orders it.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := parseListParams(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	clients, err := h.clients.ListClients(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list clients", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("fetch clients", err), http.StatusInternalServerError)
		return
	}

	result := h.engine.Apply(view.WithLastJobs(clients), params)
	sendJSON(h.logger, w, result, http.StatusOK)
}

// Create handles POST /api/v1/clients
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		sendError(h.logger, w, "Name is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	client := &models.Client{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
		Jobs:      []models.Job{},
	}
	if err := client.Validate(); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.clients.CreateClient(ctx, client); err != nil {
		h.logger.ErrorContext(ctx, "failed to create client", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("create client", err), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "client created",
		slog.String("client_id", client.ID),
		slog.String("name", client.Name))

	sendJSON(h.logger, w, models.ClientWithLastJob{Client: *client}, http.StatusCreated)
}

// Get handles GET /api/v1/clients/{id}
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	client, err := h.clients.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			sendError(h.logger, w, "Client not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get client", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("fetch client", err), http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, models.ClientWithLastJob{
		Client:  *client,
		LastJob: view.DeriveLastJob(client.Jobs),
	}, http.StatusOK)
}

// Update handles PUT /api/v1/clients/{id}
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req api.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		sendError(h.logger, w, "Name is required", http.StatusBadRequest)
		return
	}

	client := &models.Client{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		Rating:    req.Rating,
		UpdatedAt: time.Now(),
	}
	if err := client.Validate(); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.clients.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			sendError(h.logger, w, "Client not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update client", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("update client", err), http.StatusInternalServerError)
		return
	}

	updated, err := h.clients.GetClient(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to reload client", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("fetch client", err), http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, models.ClientWithLastJob{
		Client:  *updated,
		LastJob: view.DeriveLastJob(updated.Jobs),
	}, http.StatusOK)
}

// Delete handles DELETE /api/v1/clients/{id}. All jobs of the client are
// cascade-deleted with it.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.clients.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, storage.ErrClientNotFound) {
			sendError(h.logger, w, "Client not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete client", slog.Any("error", err))
		sendError(h.logger, w, storageErrorMessage("delete client", err), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "client deleted", slog.String("client_id", id))
	sendJSON(h.logger, w, api.DeleteResponse{Success: true}, http.StatusOK)
}

// parseListParams validates the listing query string. Defaults: no search,
// no rating filter, name ascending.
func parseListParams(r *http.Request) (query.Params, error) {
	q := r.URL.Query()
	params := query.Params{
		Search:    q.Get("search"),
		SortBy:    query.SortByName,
		SortOrder: query.OrderAsc,
	}

	if rating := q.Get("rating"); rating != "" && rating != "all" {
		min, err := strconv.Atoi(rating)
		if err != nil {
			return params, errors.New("rating must be a number or \"all\"")
		}
		params.MinRating = &min
	}

	if sortBy := q.Get("sortBy"); sortBy != "" {
		params.SortBy = query.SortKey(sortBy)
		if !params.SortBy.Valid() {
			return params, errors.New("unknown sortBy key")
		}
	}

	if sortOrder := q.Get("sortOrder"); sortOrder != "" {
		params.SortOrder = query.SortOrder(sortOrder)
		if !params.SortOrder.Valid() {
			return params, errors.New("sortOrder must be asc or desc")
		}
	}

	return params, nil
}
