package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// SettingsStore defines the repository operations the settings service
// needs
type SettingsStore interface {
	List(ctx context.Context) ([]model.Setting, error)
	UpdateValue(ctx context.Context, key string, valueEN, valueAM *string) error
	UpdateValueEN(ctx context.Context, key string, valueEN *string) error
}

// SettingsService manages the keyed bilingual site settings
type SettingsService struct {
	repo   SettingsStore
	logger *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo SettingsStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// List returns all settings
func (s *SettingsService) List(ctx context.Context) ([]model.Setting, error) {
	return s.repo.List(ctx)
}

// Update writes the editable settings. Phone and email carry no Amharic
// value, so only their English column is written.
func (s *SettingsService) Update(ctx context.Context, input model.SettingsInput) error {
	if err := s.repo.UpdateValue(ctx, model.SettingSiteTitle,
		strPtr(input.SiteTitleEN), strPtr(input.SiteTitleAM)); err != nil {
		return err
	}
	if err := s.repo.UpdateValueEN(ctx, model.SettingContactPhone, strPtr(input.ContactPhone)); err != nil {
		return err
	}
	if err := s.repo.UpdateValueEN(ctx, model.SettingContactEmail, strPtr(input.ContactEmail)); err != nil {
		return err
	}
	if err := s.repo.UpdateValue(ctx, model.SettingContactAddress,
		strPtr(input.ContactAddressEN), strPtr(input.ContactAddressAM)); err != nil {
		return err
	}

	s.logger.Info("Site settings updated")
	return nil
}

// strPtr maps an empty string to NULL
func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
