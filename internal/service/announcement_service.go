package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/storage"
)

// AnnouncementStore defines the repository operations the announcement
// service needs
type AnnouncementStore interface {
	List(ctx context.Context, publishedOnly bool) ([]model.Announcement, error)
	GetByID(ctx context.Context, id int) (*model.Announcement, error)
	Create(ctx context.Context, a *model.Announcement) (int, error)
	Update(ctx context.Context, a *model.Announcement, withAttachment bool) error
	Delete(ctx context.Context, id int) error
}

// AnnouncementService manages announcements and their attachments
type AnnouncementService struct {
	repo    AnnouncementStore
	files   storage.Storage
	cleanup Cleaner
	events  EventPublisher
	logger  *zap.Logger
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo AnnouncementStore, files storage.Storage, cleanup Cleaner, events EventPublisher, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, files: files, cleanup: cleanup, events: events, logger: logger}
}

// List returns announcements, optionally restricted to published ones
func (s *AnnouncementService) List(ctx context.Context, publishedOnly bool) ([]model.Announcement, error) {
	return s.repo.List(ctx, publishedOnly)
}

// Get returns a single announcement
func (s *AnnouncementService) Get(ctx context.Context, id int) (*model.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores the attachment upload if present and inserts the
// announcement with its derived bilingual type labels
func (s *AnnouncementService) Create(ctx context.Context, input model.AnnouncementInput, file *multipart.FileHeader, createdBy string) (*model.Announcement, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	annType := orDefault(input.Type, model.AnnouncementTypeAnnouncement)
	typeEN, typeAM := model.AnnouncementTypeLabels(annType)

	ann := &model.Announcement{
		TitleEN:       input.TitleEN,
		TitleAM:       input.TitleAM,
		DescriptionEN: input.DescriptionEN,
		DescriptionAM: input.DescriptionAM,
		Type:          annType,
		TypeEN:        typeEN,
		TypeAM:        typeAM,
		Date:          date,
		IsPublished:   orDefaultTrue(input.IsPublished),
		CreatedBy:     &createdBy,
	}

	if file != nil {
		ref, err := s.files.Save(ctx, "attachment", false, file)
		if err != nil {
			return nil, err
		}
		ann.AttachmentURL = &ref
	}

	id, err := s.repo.Create(ctx, ann)
	if err != nil {
		if ann.AttachmentURL != nil {
			s.cleanup.Enqueue(*ann.AttachmentURL)
		}
		return nil, err
	}
	ann.ID = id

	s.logger.Info("Announcement created", zap.Int("id", id), zap.String("type", ann.Type))
	publishEvent(s.events, s.logger, "announcement", events.ActionCreated, id)
	return ann, nil
}

// Update writes the announcement row, replacing the attachment when a
// new upload is present and recomputing the type labels
func (s *AnnouncementService) Update(ctx context.Context, id int, input model.AnnouncementInput, file *multipart.FileHeader) (*model.Announcement, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	annType := orDefault(input.Type, model.AnnouncementTypeAnnouncement)
	typeEN, typeAM := model.AnnouncementTypeLabels(annType)

	ann := *current
	ann.TitleEN = input.TitleEN
	ann.TitleAM = input.TitleAM
	ann.DescriptionEN = input.DescriptionEN
	ann.DescriptionAM = input.DescriptionAM
	ann.Type = annType
	ann.TypeEN = typeEN
	ann.TypeAM = typeAM
	ann.Date = date
	ann.IsPublished = orDefaultTrue(input.IsPublished)

	hasUpload := file != nil
	if hasUpload {
		ref, err := s.files.Save(ctx, "attachment", false, file)
		if err != nil {
			return nil, err
		}
		ann.AttachmentURL = &ref
	}

	if err := s.repo.Update(ctx, &ann, hasUpload); err != nil {
		if hasUpload {
			s.cleanup.Enqueue(*ann.AttachmentURL)
		}
		return nil, err
	}

	if hasUpload && current.AttachmentURL != nil {
		s.cleanup.Enqueue(*current.AttachmentURL)
	}

	s.logger.Info("Announcement updated", zap.Int("id", id))
	publishEvent(s.events, s.logger, "announcement", events.ActionUpdated, id)
	return &ann, nil
}

// Delete removes the announcement row and then its attachment file
func (s *AnnouncementService) Delete(ctx context.Context, id int) error {
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

	s.logger.Info("Announcement deleted", zap.Int("id", id))
	publishEvent(s.events, s.logger, "announcement", events.ActionDeleted, id)
	return nil
}
