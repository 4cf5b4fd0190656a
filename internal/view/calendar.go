package view

import (
	"time"

	"github.com/aurimasv/vitrina/internal/models"
)

// CalendarJob is a job tagged with the client it belongs to, the unit the
// calendar renders.
type CalendarJob struct {
	models.Job
	ClientName   string `json:"clientName"`
	ClientRating int    `json:"clientRating"`
}

// FlattenJobs collects every job of every client into one list, preserving
// client order and, within a client, job order.
func FlattenJobs(clients []models.ClientWithLastJob) []CalendarJob {
	var out []CalendarJob
	for _, c := range clients {
		for _, j := range c.Jobs {
			out = append(out, CalendarJob{
				Job:          j,
				ClientName:   c.Name,
				ClientRating: c.Rating,
			})
		}
	}
	return out
}

// DayKey is the local calendar day a job falls on, ignoring time of day.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// GroupByDay buckets jobs by local calendar day. Within a day the list keeps
// the insertion order of FlattenJobs; it is not time-sorted.
func GroupByDay(jobs []CalendarJob) map[string][]CalendarJob {
	byDay := make(map[string][]CalendarJob)
	for _, j := range jobs {
		key := DayKey(j.Date)
		byDay[key] = append(byDay[key], j)
	}
	return byDay
}

// MonthGrid lays out a month as a 7-wide grid: leading zero cells equal to
// the first-of-month weekday offset (Sunday = 0), then one cell per day.
// Blank cells are the zero time; check with IsZero.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]time.Time, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, time.Time{})
	}
	for d := 1; d <= daysInMonth; d++ {
		cells = append(cells, time.Date(year, month, d, 0, 0, 0, 0, time.Local))
	}
	return cells
}
