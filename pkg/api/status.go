package api

// ConfigStatus reports whether the server's database configuration is usable.
type ConfigStatus struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// DatabaseInfo describes the configured database without leaking credentials.
type DatabaseInfo struct {
	Provider     string `json:"provider"`
	Path         string `json:"path"`
	IsConfigured bool   `json:"isConfigured"`
}

// ConnectionStatus is the result of a live connection probe.
type ConnectionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// DBStatusResponse is the body of GET /api/v1/db-status.
type DBStatusResponse struct {
	Configuration ConfigStatus     `json:"configuration"`
	Database      DatabaseInfo     `json:"database"`
	Connection    ConnectionStatus `json:"connection"`
}

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
