// Package backup manages the client-local snapshot of the dataset: saving it
// into the local store under a fixed quota, and exporting/importing it as a
// portable JSON file.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aurimasv/vitrina/internal/client/storage"
	"github.com/aurimasv/vitrina/internal/models"
)

// MaxStorageSize is the quota for the locally stored snapshot.
const MaxStorageSize = 5 * 1024 * 1024

// ErrQuotaExceeded indicates a snapshot would not fit under MaxStorageSize.
// Nothing is written when this is returned.
var ErrQuotaExceeded = errors.New("backup exceeds storage quota")

// Info describes the stored snapshot and quota usage.
type Info struct {
	Used      int64
	Total     int64
	LastSaved *time.Time
}

// Service persists and restores dataset snapshots.
type Service struct {
	store storage.BackupStorage
	now   func() time.Time
}

// snapshot is the locally stored form. Export and Import use
// models.BackupSnapshot instead, which is the portable file format.
type snapshot struct {
	Clients   []models.Client `json:"clients"`
	Jobs      []models.Job    `json:"jobs"`
	LastSaved time.Time       `json:"lastSaved"`
}

// NewService creates a backup service. now may be nil to use time.Now.
func NewService(store storage.BackupStorage, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Save stores a snapshot of the dataset in the local store. The size is
// checked against the quota before anything is written; on ErrQuotaExceeded
// the previously stored snapshot is left untouched.
func (s *Service) Save(ctx context.Context, clients []models.Client, jobs []models.Job) error {
	data, err := json.Marshal(snapshot{
		Clients:   clients,
		Jobs:      jobs,
		LastSaved: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	if int64(len(data)) > MaxStorageSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrQuotaExceeded, len(data), MaxStorageSize)
	}

	if err := s.store.SaveBackup(ctx, data); err != nil {
		return fmt.Errorf("failed to save backup: %w", err)
	}

	return nil
}

// Load returns the stored snapshot.
// Returns storage.ErrNoBackup when nothing was saved yet.
func (s *Service) Load(ctx context.Context) ([]models.Client, []models.Job, error) {
	data, err := s.store.GetBackup(ctx)
	if err != nil {
		return nil, nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal backup: %w", err)
	}

	return snap.Clients, snap.Jobs, nil
}

// Info reports quota usage and the time of the last save. A missing snapshot
// is not an error: Used is 0 and LastSaved is nil.
func (s *Service) Info(ctx context.Context) (Info, error) {
	info := Info{Total: MaxStorageSize}

	data, err := s.store.GetBackup(ctx)
	if errors.Is(err, storage.ErrNoBackup) {
		return info, nil
	}
	if err != nil {
		return Info{}, err
	}

	info.Used = int64(len(data))

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err == nil && !snap.LastSaved.IsZero() {
		t := snap.LastSaved
		info.LastSaved = &t
	}

	return info, nil
}

// Export serializes the dataset as a portable, indented JSON document and
// suggests a dated filename for it.
func (s *Service) Export(clients []models.Client, jobs []models.Job) ([]byte, string, error) {
	snap := models.BackupSnapshot{
		Clients:    clients,
		Jobs:       jobs,
		BackupDate: s.now().UTC(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal export: %w", err)
	}

	filename := fmt.Sprintf("vitrina-backup-%s.json", snap.BackupDate.Format("2006-01-02"))

	return data, filename, nil
}

// Import parses an exported JSON document. The document must carry all three
// top-level keys (clients, jobs, backupDate); anything else is rejected with
// a descriptive error and nothing is applied.
func (s *Service) Import(data []byte) (*models.BackupSnapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid backup file: %w", err)
	}

	for _, key := range []string{"clients", "jobs", "backupDate"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("invalid backup file: missing %q field", key)
		}
	}

	var snap models.BackupSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid backup file: %w", err)
	}

	return &snap, nil
}

// Clear removes the stored snapshot.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.DeleteBackup(ctx)
}
