package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// NewsRepository handles database operations for news articles
type NewsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *sqlx.DB, logger *zap.Logger) *NewsRepository {
	return &NewsRepository{db: db, logger: logger}
}

// List returns news articles, newest first
func (r *NewsRepository) List(ctx context.Context, publishedOnly bool) ([]model.News, error) {
	query := `SELECT * FROM news ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT * FROM news WHERE is_published = TRUE ORDER BY created_at DESC`
	}

	news := []model.News{}
	if err := r.db.SelectContext(ctx, &news, query); err != nil {
		r.logger.Error("Failed to list news", zap.Error(err))
		return nil, err
	}
	return news, nil
}

// ListRecent returns the most recently created news articles
func (r *NewsRepository) ListRecent(ctx context.Context, limit int) ([]model.News, error) {
	news := []model.News{}
	err := r.db.SelectContext(ctx, &news,
		`SELECT * FROM news ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		r.logger.Error("Failed to list recent news", zap.Error(err))
		return nil, err
	}
	return news, nil
}

// GetByID returns a single news article by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int) (*model.News, error) {
	var n model.News
	err := r.db.GetContext(ctx, &n, `SELECT * FROM news WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get news", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &n, nil
}

// GetPublishedByID returns a published news article by ID
func (r *NewsRepository) GetPublishedByID(ctx context.Context, id int) (*model.News, error) {
	var n model.News
	err := r.db.GetContext(ctx, &n,
		`SELECT * FROM news WHERE id = $1 AND is_published = TRUE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get published news", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &n, nil
}

// Create inserts a new news article and returns its ID
func (r *NewsRepository) Create(ctx context.Context, n *model.News) (int, error) {
	query := `
		INSERT INTO news (title_en, title_am, description_en, description_am,
			category_en, category_am, image_url, date, is_published, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := r.db.GetContext(ctx, &id, query,
		n.TitleEN, n.TitleAM, n.DescriptionEN, n.DescriptionAM,
		n.CategoryEN, n.CategoryAM, n.ImageURL, n.Date, n.IsPublished, n.CreatedBy)
	if err != nil {
		r.logger.Error("Failed to create news", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Update writes a news row, writing the image column only when
// withImage is set
func (r *NewsRepository) Update(ctx context.Context, n *model.News, withImage bool) error {
	query := `
		UPDATE news SET
			title_en = $1, title_am = $2, description_en = $3, description_am = $4,
			category_en = $5, category_am = $6, date = $7, is_published = $8, updated_at = NOW()
		WHERE id = $9`
	args := []interface{}{
		n.TitleEN, n.TitleAM, n.DescriptionEN, n.DescriptionAM,
		n.CategoryEN, n.CategoryAM, n.Date, n.IsPublished, n.ID,
	}

	if withImage {
		query = `
			UPDATE news SET
				title_en = $1, title_am = $2, description_en = $3, description_am = $4,
				category_en = $5, category_am = $6, image_url = $7, date = $8, is_published = $9, updated_at = NOW()
			WHERE id = $10`
		args = []interface{}{
			n.TitleEN, n.TitleAM, n.DescriptionEN, n.DescriptionAM,
			n.CategoryEN, n.CategoryAM, n.ImageURL, n.Date, n.IsPublished, n.ID,
		}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update news", zap.Int("id", n.ID), zap.Error(err))
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

// Delete removes a news row
func (r *NewsRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete news", zap.Int("id", id), zap.Error(err))
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
