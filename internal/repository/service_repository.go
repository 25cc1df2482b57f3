package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *sqlx.DB, logger *zap.Logger) *ServiceRepository {
	return &ServiceRepository{db: db, logger: logger}
}

// List returns services ordered by display order
func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	query := `SELECT * FROM services ORDER BY display_order`
	if activeOnly {
		query = `SELECT * FROM services WHERE is_active = TRUE ORDER BY display_order`
	}

	services := []model.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		r.logger.Error("Failed to list services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// GetByID returns a single service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int) (*model.Service, error) {
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, `SELECT * FROM services WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get service", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &svc, nil
}

// Create inserts a new service and returns its ID
func (r *ServiceRepository) Create(ctx context.Context, s *model.Service) (int, error) {
	query := `
		INSERT INTO services (title_en, title_am, description_en, description_am,
			icon, image_url, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int
	err := r.db.GetContext(ctx, &id, query,
		s.TitleEN, s.TitleAM, s.DescriptionEN, s.DescriptionAM,
		s.Icon, s.ImageURL, s.DisplayOrder, s.IsActive)
	if err != nil {
		r.logger.Error("Failed to create service", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Update writes a service row, writing the image column only when
// withImage is set
func (r *ServiceRepository) Update(ctx context.Context, s *model.Service, withImage bool) error {
	query := `
		UPDATE services SET
			title_en = $1, title_am = $2, description_en = $3, description_am = $4,
			icon = $5, display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8`
	args := []interface{}{
		s.TitleEN, s.TitleAM, s.DescriptionEN, s.DescriptionAM,
		s.Icon, s.DisplayOrder, s.IsActive, s.ID,
	}

	if withImage {
		query = `
			UPDATE services SET
				title_en = $1, title_am = $2, description_en = $3, description_am = $4,
				icon = $5, image_url = $6, display_order = $7, is_active = $8, updated_at = NOW()
			WHERE id = $9`
		args = []interface{}{
			s.TitleEN, s.TitleAM, s.DescriptionEN, s.DescriptionAM,
			s.Icon, s.ImageURL, s.DisplayOrder, s.IsActive, s.ID,
		}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update service", zap.Int("id", s.ID), zap.Error(err))
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

// Delete removes a service row
func (r *ServiceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete service", zap.Int("id", id), zap.Error(err))
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
