package models

import (
	"fmt"
	"time"
)

// JobStatus enumerates the lifecycle states of a service job.
type JobStatus string

const (
	StatusCompleted JobStatus = "completed"
	StatusScheduled JobStatus = "scheduled"
	StatusCancelled JobStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusScheduled, StatusCancelled:
		return true
	}
	return false
}

// Job is a single service event tied to exactly one client.
// Jobs are created and deleted but never updated in place.
type Job struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Date      time.Time `json:"date"`
	Price     float64   `json:"price"`
	Notes     string    `json:"notes,omitempty"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the invariants of a job record. Referential integrity of
// ClientID is enforced by storage, not here.
func (j *Job) Validate() error {
	if j.ClientID == "" {
		return fmt.Errorf("clientId is required")
	}
	if j.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if j.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if !j.Status.Valid() {
		return fmt.Errorf("unknown status %q", j.Status)
	}
	return nil
}
