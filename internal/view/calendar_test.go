package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurimasv/vitrina/internal/models"
)

func TestFlattenJobs(t *testing.T) {
	clients := []models.ClientWithLastJob{
		{
			Client: models.Client{
				ID: "c1", Name: "Ann", Rating: 5,
				Jobs: []models.Job{{ID: "j1"}, {ID: "j2"}},
			},
		},
		{
			Client: models.Client{ID: "c2", Name: "Bob", Rating: 2},
		},
		{
			Client: models.Client{
				ID: "c3", Name: "Cleo", Rating: 4,
				Jobs: []models.Job{{ID: "j3"}},
			},
		},
	}

	got := FlattenJobs(clients)
	require.Len(t, got, 3)

	assert.Equal(t, "j1", got[0].ID)
	assert.Equal(t, "Ann", got[0].ClientName)
	assert.Equal(t, 5, got[0].ClientRating)

	assert.Equal(t, "j2", got[1].ID)
	assert.Equal(t, "j3", got[2].ID)
	assert.Equal(t, "Cleo", got[2].ClientName)
}

func TestGroupByDay(t *testing.T) {
	morning := time.Date(2026, 8, 15, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 15, 18, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 8, 16, 9, 0, 0, 0, time.Local)

	jobs := []CalendarJob{
		{Job: models.Job{ID: "j1", Date: morning}},
		{Job: models.Job{ID: "j2", Date: nextDay}},
		{Job: models.Job{ID: "j3", Date: evening}},
	}

	byDay := GroupByDay(jobs)
	require.Len(t, byDay, 2)

	// time of day is ignored, insertion order is kept within a day
	require.Len(t, byDay["2026-08-15"], 2)
	assert.Equal(t, "j1", byDay["2026-08-15"][0].ID)
	assert.Equal(t, "j3", byDay["2026-08-15"][1].ID)

	require.Len(t, byDay["2026-08-16"], 1)
	assert.Equal(t, "j2", byDay["2026-08-16"][0].ID)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name       string
		month      time.Month
		year       int
		wantBlanks int
		wantDays   int
	}{
		{
			// 1 Feb 2026 is a Sunday, no leading blanks
			name:       "month starting on sunday",
			year:       2026,
			month:      time.February,
			wantBlanks: 0,
			wantDays:   28,
		},
		{
			// 1 Aug 2026 is a Saturday, maximum offset
			name:       "month starting on saturday",
			year:       2026,
			month:      time.August,
			wantBlanks: 6,
			wantDays:   31,
		},
		{
			// 1 Jun 2026 is a Monday
			name:       "month starting on monday",
			year:       2026,
			month:      time.June,
			wantBlanks: 1,
			wantDays:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := MonthGrid(tt.year, tt.month)
			require.Len(t, cells, tt.wantBlanks+tt.wantDays)

			for i := 0; i < tt.wantBlanks; i++ {
				assert.True(t, cells[i].IsZero(), "cell %d should be blank", i)
			}

			first := cells[tt.wantBlanks]
			assert.Equal(t, 1, first.Day())
			assert.Equal(t, tt.month, first.Month())

			last := cells[len(cells)-1]
			assert.Equal(t, tt.wantDays, last.Day())
		})
	}
}
