package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/storage"
)

// MessageStore defines the repository operations the contact service
// needs
type MessageStore interface {
	List(ctx context.Context, limit, offset int) ([]model.ContactMessage, error)
	GetByID(ctx context.Context, id int) (*model.ContactMessage, error)
	Create(ctx context.Context, m *model.ContactMessage) (int, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int) error
}

// ContactService manages contact form submissions and their attachments
type ContactService struct {
	repo    MessageStore
	files   storage.Storage
	cleanup Cleaner
	events  EventPublisher
	logger  *zap.Logger
}

// NewContactService creates a new contact message service
func NewContactService(repo MessageStore, files storage.Storage, cleanup Cleaner, events EventPublisher, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, files: files, cleanup: cleanup, events: events, logger: logger}
}

// Submit stores the attachment if present and inserts the message
func (s *ContactService) Submit(ctx context.Context, input model.ContactInput, file *multipart.FileHeader) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Title:     input.Title,
		Message:   input.Message,
	}

	if file != nil {
		ref, err := s.files.Save(ctx, "attachment", false, file)
		if err != nil {
			return nil, err
		}
		msg.AttachmentURL = &ref
	}

	id, err := s.repo.Create(ctx, msg)
	if err != nil {
		if msg.AttachmentURL != nil {
			s.cleanup.Enqueue(*msg.AttachmentURL)
		}
		return nil, err
	}
	msg.ID = id

	s.logger.Info("Contact message received", zap.Int("id", id), zap.String("email", msg.Email))
	publishEvent(s.events, s.logger, "contact_message", events.ActionCreated, id)
	return msg, nil
}

// List returns messages and marks every unread one as read
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]model.ContactMessage, error) {
	messages, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkAllRead(ctx); err != nil {
		s.logger.Warn("Failed to mark messages read", zap.Error(err))
	}
	return messages, nil
}

// Get returns a single message and marks it read
func (s *ContactService) Get(ctx context.Context, id int) (*model.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		s.logger.Warn("Failed to mark message read", zap.Int("id", id), zap.Error(err))
	}
	return msg, nil
}

// Delete removes the message row and then its attachment file
func (s *ContactService) Delete(ctx context.Context, id int) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if current.AttachmentURL != nil {
		s.cleanup.Enqueue(*current.AttachmentURL)
	}

	s.logger.Info("Contact message deleted", zap.Int("id", id))
	publishEvent(s.events, s.logger, "contact_message", events.ActionDeleted, id)
	return nil
}
