package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJob_Validate(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		job     Job
		wantErr bool
	}{
		{
			name: "valid completed job",
			job:  Job{ClientID: "c1", Date: date, Price: 45, Status: StatusCompleted},
		},
		{
			name: "free job is valid",
			job:  Job{ClientID: "c1", Date: date, Price: 0, Status: StatusScheduled},
		},
		{
			name:    "missing client id",
			job:     Job{Date: date, Price: 45, Status: StatusCompleted},
			wantErr: true,
		},
		{
			name:    "missing date",
			job:     Job{ClientID: "c1", Price: 45, Status: StatusCompleted},
			wantErr: true,
		},
		{
			name:    "negative price",
			job:     Job{ClientID: "c1", Date: date, Price: -1, Status: StatusCompleted},
			wantErr: true,
		},
		{
			name:    "unknown status",
			job:     Job{ClientID: "c1", Date: date, Price: 45, Status: "paused"},
			wantErr: true,
		},
		{
			name:    "empty status",
			job:     Job{ClientID: "c1", Date: date, Price: 45},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobStatus_Valid(t *testing.T) {
	for _, s := range []JobStatus{StatusCompleted, StatusScheduled, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, JobStatus("").Valid())
	assert.False(t, JobStatus("done").Valid())
}
