package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aurimasv/vitrina/internal/config"
	"github.com/aurimasv/vitrina/pkg/api"
)

// Pinger probes the live database connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler serves health and db-status checks.
type StatusHandler struct {
	logger  *slog.Logger
	cfg     config.Config
	db      Pinger
	version string
}

func NewStatusHandler(logger *slog.Logger, cfg config.Config, db Pinger, version string) *StatusHandler {
	return &StatusHandler{logger: logger, cfg: cfg, db: db, version: version}
}

// Health handles GET /api/v1/health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.HealthResponse{Status: "ok", Version: h.version}, http.StatusOK)
}

// DBStatus handles GET /api/v1/db-status. The configuration is checked
// first; only a valid configuration gets a live connection probe.
func (h *StatusHandler) DBStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	valid, message := h.cfg.CheckDatabase()
	resp := api.DBStatusResponse{
		Configuration: api.ConfigStatus{IsValid: valid, Message: message},
		Database: api.DatabaseInfo{
			Provider:     "SQLite",
			Path:         h.cfg.DatabasePath,
			IsConfigured: valid,
		},
		Connection: api.ConnectionStatus{Status: "not_tested"},
	}

	if valid && h.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := h.db.Ping(pingCtx); err != nil {
			h.logger.WarnContext(ctx, "database probe failed", slog.Any("error", err))
			resp.Connection = api.ConnectionStatus{
				Status: "failed",
				Error:  storageErrorMessage("connect to the database", err),
			}
		} else {
			resp.Connection.Status = "connected"
		}
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
