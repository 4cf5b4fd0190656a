package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aurimasv/vitrina/pkg/api"
)

// sendJSON writes data as a JSON response.
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes an error body in the `{"error": ...}` shape.
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

// storageErrorMessage turns a persistence failure into a human-readable
// classification. Raw driver errors never reach the response body.
func storageErrorMessage(op string, err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unable to open database"),
		strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "no such file"):
		return "Database connection failed. Check DATABASE_PATH and ensure the database file is accessible."
	case strings.Contains(msg, "constraint"),
		strings.Contains(msg, "no such table"):
		return "Database operation failed. Check the database configuration."
	default:
		return "Failed to " + op
	}
}
