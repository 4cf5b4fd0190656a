package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/aurimasv/vitrina/internal/client/storage"
	"github.com/aurimasv/vitrina/internal/models"
)

var keyCompanySettings = []byte("company")

// SaveSettings stores the settings, replacing any previous ones
func (s *Storage) SaveSettings(ctx context.Context, settings *models.CompanySettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSettings).Put(keyCompanySettings, data)
	})
}

// GetSettings retrieves the settings
func (s *Storage) GetSettings(ctx context.Context) (*models.CompanySettings, error) {
	var settings *models.CompanySettings

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSettings).Get(keyCompanySettings)
		if data == nil {
			return storage.ErrSettingsNotFound
		}
		settings = &models.CompanySettings{}
		if err := json.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}
