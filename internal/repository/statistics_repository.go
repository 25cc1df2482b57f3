package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// StatisticsRepository handles database operations for headline statistics
type StatisticsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewStatisticsRepository creates a new statistics repository
func NewStatisticsRepository(db *sqlx.DB, logger *zap.Logger) *StatisticsRepository {
	return &StatisticsRepository{db: db, logger: logger}
}

// List returns all statistics
func (r *StatisticsRepository) List(ctx context.Context) ([]model.Statistic, error) {
	stats := []model.Statistic{}
	if err := r.db.SelectContext(ctx, &stats, `SELECT * FROM statistics ORDER BY id`); err != nil {
		r.logger.Error("Failed to list statistics", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// ListKeys returns the keys of all statistics
func (r *StatisticsRepository) ListKeys(ctx context.Context) ([]string, error) {
	keys := []string{}
	if err := r.db.SelectContext(ctx, &keys, `SELECT stat_key FROM statistics ORDER BY id`); err != nil {
		r.logger.Error("Failed to list statistic keys", zap.Error(err))
		return nil, err
	}
	return keys, nil
}

// UpdateByKey writes the value and labels of one statistic
func (r *StatisticsRepository) UpdateByKey(ctx context.Context, key, value string, labelEN, labelAM *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE statistics SET stat_value = $1, label_en = $2, label_am = $3, updated_at = NOW() WHERE stat_key = $4`,
		value, labelEN, labelAM, key)
	if err != nil {
		r.logger.Error("Failed to update statistic", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
