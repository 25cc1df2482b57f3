package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *sqlx.DB, logger *zap.Logger) *AnnouncementRepository {
	return &AnnouncementRepository{db: db, logger: logger}
}

// List returns announcements, newest first
func (r *AnnouncementRepository) List(ctx context.Context, publishedOnly bool) ([]model.Announcement, error) {
	query := `SELECT * FROM announcements ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT * FROM announcements WHERE is_published = TRUE ORDER BY created_at DESC`
	}

	announcements := []model.Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		r.logger.Error("Failed to list announcements", zap.Error(err))
		return nil, err
	}
	return announcements, nil
}

// GetByID returns a single announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.GetContext(ctx, &a, `SELECT * FROM announcements WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get announcement", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// Create inserts a new announcement and returns its ID
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) (int, error) {
	query := `
		INSERT INTO announcements (title_en, title_am, description_en, description_am,
			type, type_en, type_am, attachment_url, date, is_published, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int
	err := r.db.GetContext(ctx, &id, query,
		a.TitleEN, a.TitleAM, a.DescriptionEN, a.DescriptionAM,
		a.Type, a.TypeEN, a.TypeAM, a.AttachmentURL, a.Date, a.IsPublished, a.CreatedBy)
	if err != nil {
		r.logger.Error("Failed to create announcement", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Update writes an announcement row, writing the attachment column only
// when withAttachment is set
func (r *AnnouncementRepository) Update(ctx context.Context, a *model.Announcement, withAttachment bool) error {
	query := `
		UPDATE announcements SET
			title_en = $1, title_am = $2, description_en = $3, description_am = $4,
			type = $5, type_en = $6, type_am = $7, date = $8, is_published = $9, updated_at = NOW()
		WHERE id = $10`
	args := []interface{}{
		a.TitleEN, a.TitleAM, a.DescriptionEN, a.DescriptionAM,
		a.Type, a.TypeEN, a.TypeAM, a.Date, a.IsPublished, a.ID,
	}

	if withAttachment {
		query = `
			UPDATE announcements SET
				title_en = $1, title_am = $2, description_en = $3, description_am = $4,
				type = $5, type_en = $6, type_am = $7, attachment_url = $8, date = $9, is_published = $10, updated_at = NOW()
			WHERE id = $11`
		args = []interface{}{
			a.TitleEN, a.TitleAM, a.DescriptionEN, a.DescriptionAM,
			a.Type, a.TypeEN, a.TypeAM, a.AttachmentURL, a.Date, a.IsPublished, a.ID,
		}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update announcement", zap.Int("id", a.ID), zap.Error(err))
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

// Delete removes an announcement row
func (r *AnnouncementRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete announcement", zap.Int("id", id), zap.Error(err))
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
