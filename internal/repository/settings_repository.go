package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// SettingsRepository handles database operations for site settings
type SettingsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *sqlx.DB, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{db: db, logger: logger}
}

// List returns all site settings
func (r *SettingsRepository) List(ctx context.Context) ([]model.Setting, error) {
	settings := []model.Setting{}
	if err := r.db.SelectContext(ctx, &settings, `SELECT * FROM settings ORDER BY id`); err != nil {
		r.logger.Error("Failed to list settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

// UpdateValue writes both language values of a setting
func (r *SettingsRepository) UpdateValue(ctx context.Context, key string, valueEN, valueAM *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET setting_value_en = $1, setting_value_am = $2, updated_at = NOW() WHERE setting_key = $3`,
		valueEN, valueAM, key)
	if err != nil {
		r.logger.Error("Failed to update setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// UpdateValueEN writes only the English value of a setting
func (r *SettingsRepository) UpdateValueEN(ctx context.Context, key string, valueEN *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE settings SET setting_value_en = $1, updated_at = NOW() WHERE setting_key = $2`,
		valueEN, key)
	if err != nil {
		r.logger.Error("Failed to update setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
