package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// LeaderRepository handles database operations for leaders
type LeaderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewLeaderRepository creates a new leader repository
func NewLeaderRepository(db *sqlx.DB, logger *zap.Logger) *LeaderRepository {
	return &LeaderRepository{db: db, logger: logger}
}

// List returns leaders ordered by display order
func (r *LeaderRepository) List(ctx context.Context, activeOnly bool) ([]model.Leader, error) {
	query := `SELECT * FROM leaders ORDER BY display_order`
	if activeOnly {
		query = `SELECT * FROM leaders WHERE is_active = TRUE ORDER BY display_order`
	}

	leaders := []model.Leader{}
	if err := r.db.SelectContext(ctx, &leaders, query); err != nil {
		r.logger.Error("Failed to list leaders", zap.Error(err))
		return nil, err
	}
	return leaders, nil
}

// GetByID returns a single leader by ID
func (r *LeaderRepository) GetByID(ctx context.Context, id int) (*model.Leader, error) {
	var leader model.Leader
	err := r.db.GetContext(ctx, &leader, `SELECT * FROM leaders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get leader", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &leader, nil
}

// Create inserts a new leader and returns its ID
func (r *LeaderRepository) Create(ctx context.Context, l *model.Leader) (int, error) {
	query := `
		INSERT INTO leaders (name, title_en, title_am, description_en, description_am,
			phone, email, image_url, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := r.db.GetContext(ctx, &id, query,
		l.Name, l.TitleEN, l.TitleAM, l.DescriptionEN, l.DescriptionAM,
		l.Phone, l.Email, l.ImageURL, l.DisplayOrder, l.IsActive)
	if err != nil {
		r.logger.Error("Failed to create leader", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Update writes a leader row. The image column is only written when
// withImage is set, so updates without a new upload leave it untouched.
func (r *LeaderRepository) Update(ctx context.Context, l *model.Leader, withImage bool) error {
	query := `
		UPDATE leaders SET
			name = $1, title_en = $2, title_am = $3, description_en = $4, description_am = $5,
			phone = $6, email = $7, display_order = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10`
	args := []interface{}{
		l.Name, l.TitleEN, l.TitleAM, l.DescriptionEN, l.DescriptionAM,
		l.Phone, l.Email, l.DisplayOrder, l.IsActive, l.ID,
	}

	if withImage {
		query = `
			UPDATE leaders SET
				name = $1, title_en = $2, title_am = $3, description_en = $4, description_am = $5,
				phone = $6, email = $7, image_url = $8, display_order = $9, is_active = $10, updated_at = NOW()
			WHERE id = $11`
		args = []interface{}{
			l.Name, l.TitleEN, l.TitleAM, l.DescriptionEN, l.DescriptionAM,
			l.Phone, l.Email, l.ImageURL, l.DisplayOrder, l.IsActive, l.ID,
		}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update leader", zap.Int("id", l.ID), zap.Error(err))
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes a leader row
func (r *LeaderRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leaders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete leader", zap.Int("id", id), zap.Error(err))
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return model.ErrNotFound
	}
	return nil
}
