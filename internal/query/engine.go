// Package query filters and orders the client list for the dashboard.
// The engine is a pure function over its inputs: it never mutates the
// slice it is given and has no side effects.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aurimasv/vitrina/internal/models"
)

// SortKey selects the field the client list is ordered by.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
	SortByPrice  SortKey = "price"
	SortByDate   SortKey = "date"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByRating, SortByPrice, SortByDate:
		return true
	}
	return false
}

// SortOrder is the direction of the sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Params describes one query over the client list.
// A nil MinRating means no rating filter ("all").
type Params struct {
	Search    string
	MinRating *int
	SortBy    SortKey
	SortOrder SortOrder
}

// Engine applies search, rating filter and ordering to clients.
// Name ordering is locale-aware via the collator chosen at construction.
type Engine struct {
	collator *collate.Collator
}

// New creates an engine collating names for the given language.
func New(tag language.Tag) *Engine {
	return &Engine{collator: collate.New(tag)}
}

// Default returns an engine with English collation.
func Default() *Engine {
	return New(language.English)
}

// Apply returns the ordered subset of clients matching p. The input slice is
// left untouched.
func (e *Engine) Apply(clients []models.ClientWithLastJob, p Params) []models.ClientWithLastJob {
	out := make([]models.ClientWithLastJob, 0, len(clients))
	for _, c := range clients {
		if p.Search != "" && !matches(&c, p.Search) {
			continue
		}
		if p.MinRating != nil && c.Rating < *p.MinRating {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return e.compare(&out[i], &out[j], p) < 0
	})
	return out
}

// matches reports whether term occurs in any searchable field of c: name,
// email, notes and nested job notes are matched case-insensitively, the
// phone number as a plain substring.
func matches(c *models.ClientWithLastJob, term string) bool {
	folded := strings.ToLower(term)
	if strings.Contains(strings.ToLower(c.Name), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Email), folded) {
		return true
	}
	if c.Phone != "" && strings.Contains(c.Phone, term) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Notes), folded) {
		return true
	}
	for _, job := range c.Jobs {
		if job.Notes != "" && strings.Contains(strings.ToLower(job.Notes), folded) {
			return true
		}
	}
	return false
}

// compare orders a before b when negative. The primary key comparison is
// flipped for descending order; equal keys fall back to client id ascending
// so the result is deterministic for any input permutation.
func (e *Engine) compare(a, b *models.ClientWithLastJob, p Params) int {
	c := e.compareKey(a, b, p.SortBy)
	if p.SortOrder == OrderDesc {
		c = -c
	}
	if c == 0 {
		return strings.Compare(a.ID, b.ID)
	}
	return c
}

func (e *Engine) compareKey(a, b *models.ClientWithLastJob, key SortKey) int {
	switch key {
	case SortByRating:
		return a.Rating - b.Rating
	case SortByPrice:
		return compareFloat(lastJobPrice(a), lastJobPrice(b))
	case SortByDate:
		return compareInt64(lastJobEpochMs(a), lastJobEpochMs(b))
	default: // SortByName
		return e.collator.CompareString(a.Name, b.Name)
	}
}

// lastJobPrice treats a missing last job as price 0.
func lastJobPrice(c *models.ClientWithLastJob) float64 {
	if c.LastJob == nil {
		return 0
	}
	return c.LastJob.Price
}

// lastJobEpochMs treats a missing last job as epoch 0, so clients with no
// jobs sort as oldest.
func lastJobEpochMs(c *models.ClientWithLastJob) int64 {
	if c.LastJob == nil {
		return 0
	}
	return c.LastJob.Date.UnixMilli()
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
