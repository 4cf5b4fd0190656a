// Package settings loads and saves the company letterhead configuration used
// on invoices.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurimasv/vitrina/internal/client/storage"
	"github.com/aurimasv/vitrina/internal/models"
)

// Defaults returns the settings used when nothing was configured yet.
func Defaults() *models.CompanySettings {
	return &models.CompanySettings{
		DefaultLanguage: "en",
		DefaultService:  "Window cleaning",
	}
}

// Service reads and writes company settings in the local store.
type Service struct {
	store storage.SettingsStorage
}

// NewService creates a settings service.
func NewService(store storage.SettingsStorage) *Service {
	return &Service{store: store}
}

// Get returns the stored settings, or Defaults when none were saved yet.
func (s *Service) Get(ctx context.Context) (*models.CompanySettings, error) {
	settings, err := s.store.GetSettings(ctx)
	if errors.Is(err, storage.ErrSettingsNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.DefaultLanguage == "" {
		settings.DefaultLanguage = "en"
	}

	return settings, nil
}

// Save stores the settings.
func (s *Service) Save(ctx context.Context, settings *models.CompanySettings) error {
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
