package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/storage"
)

// defaultServiceIcon is used when no icon class is supplied
const defaultServiceIcon = "fa-cog"

// ServiceStore defines the repository operations the bureau service
// catalog needs
type ServiceStore interface {
	List(ctx context.Context, activeOnly bool) ([]model.Service, error)
	GetByID(ctx context.Context, id int) (*model.Service, error)
	Create(ctx context.Context, s *model.Service) (int, error)
	Update(ctx context.Context, s *model.Service, withImage bool) error
	Delete(ctx context.Context, id int) error
}

// BureauService manages the catalog of transport services
type BureauService struct {
	repo    ServiceStore
	files   storage.Storage
	cleanup Cleaner
	events  EventPublisher
	logger  *zap.Logger
}

// NewBureauService creates a new bureau service catalog manager
func NewBureauService(repo ServiceStore, files storage.Storage, cleanup Cleaner, events EventPublisher, logger *zap.Logger) *BureauService {
	return &BureauService{repo: repo, files: files, cleanup: cleanup, events: events, logger: logger}
}

// List returns services, optionally restricted to active ones
func (s *BureauService) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns a single service
func (s *BureauService) Get(ctx context.Context, id int) (*model.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a service, storing an illustration upload when present
func (s *BureauService) Create(ctx context.Context, input model.ServiceInput, file *multipart.FileHeader) (*model.Service, error) {
	svc := &model.Service{
		TitleEN:       input.TitleEN,
		TitleAM:       input.TitleAM,
		DescriptionEN: input.DescriptionEN,
		DescriptionAM: input.DescriptionAM,
		Icon:          orDefaultIcon(input.Icon),
		DisplayOrder:  orDefaultOrder(input.DisplayOrder),
		IsActive:      orDefaultTrue(input.IsActive),
	}

	if file != nil {
		ref, err := s.files.Save(ctx, "image", false, file)
		if err != nil {
			return nil, err
		}
		svc.ImageURL = &ref
	}

	id, err := s.repo.Create(ctx, svc)
	if err != nil {
		if svc.ImageURL != nil {
			s.cleanup.Enqueue(*svc.ImageURL)
		}
		return nil, err
	}
	svc.ID = id

	s.logger.Info("Service created", zap.Int("id", id), zap.String("title", svc.TitleEN))
	publishEvent(s.events, s.logger, "service", events.ActionCreated, id)
	return svc, nil
}

// Update writes the service row, replacing the illustration when a new
// upload is present
func (s *BureauService) Update(ctx context.Context, id int, input model.ServiceInput, file *multipart.FileHeader) (*model.Service, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc := *current
	svc.TitleEN = input.TitleEN
	svc.TitleAM = input.TitleAM
	svc.DescriptionEN = input.DescriptionEN
	svc.DescriptionAM = input.DescriptionAM
	svc.Icon = orDefaultIcon(input.Icon)
	svc.DisplayOrder = orDefaultOrder(input.DisplayOrder)
	svc.IsActive = orDefaultTrue(input.IsActive)

	hasUpload := file != nil
	if hasUpload {
		ref, err := s.files.Save(ctx, "image", false, file)
		if err != nil {
			return nil, err
		}
		svc.ImageURL = &ref
	}

	if err := s.repo.Update(ctx, &svc, hasUpload); err != nil {
		if hasUpload {
			s.cleanup.Enqueue(*svc.ImageURL)
		}
		return nil, err
	}

	if hasUpload && current.ImageURL != nil {
		s.cleanup.Enqueue(*current.ImageURL)
	}

	s.logger.Info("Service updated", zap.Int("id", id))
	publishEvent(s.events, s.logger, "service", events.ActionUpdated, id)
	return &svc, nil
}

// Delete removes the service row and then its illustration file
func (s *BureauService) Delete(ctx context.Context, id int) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if current.ImageURL != nil {
		s.cleanup.Enqueue(*current.ImageURL)
	}

	s.logger.Info("Service deleted", zap.Int("id", id))
	publishEvent(s.events, s.logger, "service", events.ActionDeleted, id)
	return nil
}

// orDefaultIcon maps a missing icon to the catalog default
func orDefaultIcon(icon string) string {
	if icon == "" {
		return defaultServiceIcon
	}
	return icon
}
