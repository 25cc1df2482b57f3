package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// StatisticsStore defines the repository operations the statistics
// service needs
type StatisticsStore interface {
	List(ctx context.Context) ([]model.Statistic, error)
	ListKeys(ctx context.Context) ([]string, error)
	UpdateByKey(ctx context.Context, key, value string, labelEN, labelAM *string) error
}

// StatisticsService manages the headline figures on the public site
type StatisticsService struct {
	repo   StatisticsStore
	logger *zap.Logger
}

// NewStatisticsService creates a new statistics service
func NewStatisticsService(repo StatisticsStore, logger *zap.Logger) *StatisticsService {
	return &StatisticsService{repo: repo, logger: logger}
}

// List returns all statistics
func (s *StatisticsService) List(ctx context.Context) ([]model.Statistic, error) {
	return s.repo.List(ctx)
}

// Update applies a bulk statistics update. Entries whose key does not
// exist are skipped; new keys are never created through this path.
func (s *StatisticsService) Update(ctx context.Context, inputs []model.StatisticInput) error {
	keys, err := s.repo.ListKeys(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	for _, in := range inputs {
		if !known[in.Key] {
			s.logger.Warn("Skipping unknown statistic key", zap.String("key", in.Key))
			continue
		}
		if err := s.repo.UpdateByKey(ctx, in.Key, in.Value, in.LabelEN, in.LabelAM); err != nil {
			return err
		}
	}

	s.logger.Info("Statistics updated", zap.Int("entries", len(inputs)))
	return nil
}
