package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// AdminRepository handles database operations for administrator accounts
type AdminRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *sqlx.DB, logger *zap.Logger) *AdminRepository {
	return &AdminRepository{db: db, logger: logger}
}

// GetByUsername returns an active admin account by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.GetContext(ctx, &admin,
		`SELECT * FROM admin_users WHERE username = $1 AND is_active = TRUE`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get admin by username", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// GetByID returns an admin account by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.db.GetContext(ctx, &admin, `SELECT * FROM admin_users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get admin", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

// UpdateLastLogin stamps the last login time of an admin
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to update last login", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// UpdateProfile updates the full name and email of an admin
func (r *AdminRepository) UpdateProfile(ctx context.Context, id int, fullName, email string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET full_name = $1, email = $2 WHERE id = $3`,
		fullName, email, id)
	if err != nil {
		r.logger.Error("Failed to update admin profile", zap.Int("id", id), zap.Error(err))
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

// UpdatePassword replaces the password hash of an admin
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int, hash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE admin_users SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		r.logger.Error("Failed to update admin password", zap.Int("id", id), zap.Error(err))
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
