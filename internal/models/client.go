package models

import (
	"fmt"
	"time"
)

// RatingMax is the upper bound of the client rating scale.
const RatingMax = 5

// Client is a customer record with contact details and a 0-5 rating.
// A client owns zero or more jobs; deleting the client deletes them all.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Jobs      []Job     `json:"jobs"`
}

// Validate checks the invariants a client record must hold before it is
// written to storage: non-empty name, rating within [0, RatingMax].
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Rating < 0 || c.Rating > RatingMax {
		return fmt.Errorf("rating must be between 0 and %d", RatingMax)
	}
	return nil
}

// LastJob is the derived most-recent job of a client. It is never persisted;
// only date and price are exposed.
type LastJob struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

/// ClientWithLastJob is the API shape of a client: the record itself plus the
// derived last job, nil when the client has no jobs yet.
type ClientWithLastJob struct {
	Client
	LastJob *LastJob `json:"lastJob,omitempty"`
}
