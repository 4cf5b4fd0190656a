// Package view computes the derived, non-persisted projections the dashboard
// shows: per-client last job, freshness color coding and the calendar
// grouping of jobs.
package view

import (
	"time"

	"github.com/aurimasv/vitrina/internal/models"
)

// DeriveLastJob returns the job with the maximum date, reduced to the fields
// the dashboard exposes. Returns nil when the client has no jobs. Ties are
// broken by position: the first of the equal-dated jobs wins, so the result
// is stable for a given storage order.
func DeriveLastJob(jobs []models.Job) *models.LastJob {
	var last *models.Job
	for i := range jobs {
		if last == nil || jobs[i].Date.After(last.Date) {
			last = &jobs[i]
		}
	}
	if last == nil {
		return nil
	}
	return &models.LastJob{Date: last.Date, Price: last.Price}
}

// WithLastJobs wraps every client with its derived last job.
func WithLastJobs(clients []models.Client) []models.ClientWithLastJob {
	out := make([]models.ClientWithLastJob, len(clients))
	for i, c := range clients {
		out[i] = models.ClientWithLastJob{Client: c, LastJob: DeriveLastJob(c.Jobs)}
	}
	return out
}

// Freshness classifies how long ago a client was last serviced.
type Freshness string

const (
	FreshnessUnknown Freshness = "unknown"
	FreshnessFresh   Freshness = "fresh"
	FreshnessDueSoon Freshness = "due soon"
	FreshnessOverdue Freshness = "overdue"
	FreshnessStale   Freshness = "stale"
)

// monthDays is the fixed month length used for freshness arithmetic.
const monthDays = 30

// FreshnessOf maps the elapsed time since the last job to a bucket. Months
// are fixed 30-day periods; each bucket is inclusive at its upper bound, so
// exactly 3.0 months is still fresh. A nil last-job date is unknown.
func FreshnessOf(lastJobDate *time.Time, now time.Time) Freshness {
	if lastJobDate == nil {
		return FreshnessUnknown
	}
	months := now.Sub(*lastJobDate).Hours() / (24 * monthDays)
	switch {
	case months <= 3:
		return FreshnessFresh
	case months <= 6:
		return FreshnessDueSoon
	case months <= 9:
		return FreshnessOverdue
	default:
		return FreshnessStale
	}
}
