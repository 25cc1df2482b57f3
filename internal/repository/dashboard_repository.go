package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// DashboardRepository aggregates counts for the admin dashboard
type DashboardRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *sqlx.DB, logger *zap.Logger) *DashboardRepository {
	return &DashboardRepository{db: db, logger: logger}
}

// Counts returns the entity totals shown on the dashboard
func (r *DashboardRepository) Counts(ctx context.Context) (*model.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM leaders) AS total_leaders,
			(SELECT COUNT(*) FROM services) AS total_services,
			(SELECT COUNT(*) FROM news) AS total_news,
			(SELECT COUNT(*) FROM announcements) AS total_announcements,
			(SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE) AS unread_messages,
			(SELECT COUNT(*) FROM admin_users) AS total_admins`

	var counts model.DashboardCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		r.logger.Error("Failed to load dashboard counts", zap.Error(err))
		return nil, err
	}
	return &counts, nil
}
