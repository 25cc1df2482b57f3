package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// MessageRepository handles database operations for contact messages
type MessageRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewMessageRepository creates a new contact message repository
func NewMessageRepository(db *sqlx.DB, logger *zap.Logger) *MessageRepository {
	return &MessageRepository{db: db, logger: logger}
}

// List returns contact messages, newest first
func (r *MessageRepository) List(ctx context.Context, limit, offset int) ([]model.ContactMessage, error) {
	messages := []model.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages,
		`SELECT * FROM contact_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		r.logger.Error("Failed to list contact messages", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

// GetByID returns a single contact message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id int) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.db.GetContext(ctx, &m, `SELECT * FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		r.logger.Error("Failed to get contact message", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// Create inserts a new contact message and returns its ID
func (r *MessageRepository) Create(ctx context.Context, m *model.ContactMessage) (int, error) {
	query := `
		INSERT INTO contact_messages (first_name, last_name, email, phone,
			subject, title, message, attachment_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int
	err := r.db.GetContext(ctx, &id, query,
		m.FirstName, m.LastName, m.Email, m.Phone,
		m.Subject, m.Title, m.Message, m.AttachmentURL)
	if err != nil {
		r.logger.Error("Failed to create contact message", zap.Error(err))
		return 0, err
	}
	return id, nil
}

// MarkRead marks a single message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to mark message read", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// MarkAllRead marks every unread message as read
func (r *MessageRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE is_read = FALSE`)
	if err != nil {
		r.logger.Error("Failed to mark messages read", zap.Error(err))
		return err
	}
	return nil
}

// Delete removes a contact message row
func (r *MessageRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete contact message", zap.Int("id", id), zap.Error(err))
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
