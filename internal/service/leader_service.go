package service

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/storage"
)

// LeaderStore defines the repository operations the leader service needs
type LeaderStore interface {
	List(ctx context.Context, activeOnly bool) ([]model.Leader, error)
	GetByID(ctx context.Context, id int) (*model.Leader, error)
	Create(ctx context.Context, l *model.Leader) (int, error)
	Update(ctx context.Context, l *model.Leader, withImage bool) error
	Delete(ctx context.Context, id int) error
}

// LeaderService manages leaders and their portrait images
type LeaderService struct {
	repo    LeaderStore
	files   storage.Storage
	cleanup Cleaner
	events  EventPublisher
	logger  *zap.Logger
}

// NewLeaderService creates a new leader service
func NewLeaderService(repo LeaderStore, files storage.Storage, cleanup Cleaner, events EventPublisher, logger *zap.Logger) *LeaderService {
	return &LeaderService{repo: repo, files: files, cleanup: cleanup, events: events, logger: logger}
}

// List returns leaders, optionally restricted to active ones
func (s *LeaderService) List(ctx context.Context, activeOnly bool) ([]model.Leader, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns a single leader
func (s *LeaderService) Get(ctx context.Context, id int) (*model.Leader, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores the portrait upload if present and inserts the leader
// row. An upload failure aborts before any row is written.
func (s *LeaderService) Create(ctx context.Context, input model.LeaderInput, file *multipart.FileHeader) (*model.Leader, error) {
	leader := &model.Leader{
		Name:          input.Name,
		TitleEN:       input.TitleEN,
		TitleAM:       input.TitleAM,
		DescriptionEN: input.DescriptionEN,
		DescriptionAM: input.DescriptionAM,
		Phone:         input.Phone,
		Email:         input.Email,
		DisplayOrder:  orDefaultOrder(input.DisplayOrder),
		IsActive:      orDefaultTrue(input.IsActive),
	}

	if file != nil {
		ref, err := s.files.Save(ctx, "image", false, file)
		if err != nil {
			return nil, err
		}
		leader.ImageURL = &ref
	}

	id, err := s.repo.Create(ctx, leader)
	if err != nil {
		// Keep files and rows coherent: drop the orphaned upload
		if leader.ImageURL != nil {
			s.cleanup.Enqueue(*leader.ImageURL)
		}
		return nil, err
	}
	leader.ID = id

	s.logger.Info("Leader created", zap.Int("id", id), zap.String("name", leader.Name))
	publishEvent(s.events, s.logger, "leader", events.ActionCreated, id)
	return leader, nil
}

// Update writes the leader row, replacing the portrait when a new
// upload is present. The superseded file is removed after the row write
// succeeds; that removal never fails the request.
func (s *LeaderService) Update(ctx context.Context, id int, input model.LeaderInput, file *multipart.FileHeader) (*model.Leader, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	leader := *current
	leader.Name = input.Name
	leader.TitleEN = input.TitleEN
	leader.TitleAM = input.TitleAM
	leader.DescriptionEN = input.DescriptionEN
	leader.DescriptionAM = input.DescriptionAM
	leader.Phone = input.Phone
	leader.Email = input.Email
	leader.DisplayOrder = orDefaultOrder(input.DisplayOrder)
	leader.IsActive = orDefaultTrue(input.IsActive)

	hasUpload := file != nil
	if hasUpload {
		ref, err := s.files.Save(ctx, "image", false, file)
		if err != nil {
			return nil, err
		}
		leader.ImageURL = &ref
	}

	if err := s.repo.Update(ctx, &leader, hasUpload); err != nil {
		if hasUpload {
			s.cleanup.Enqueue(*leader.ImageURL)
		}
		return nil, err
	}

	if hasUpload && current.ImageURL != nil {
		s.cleanup.Enqueue(*current.ImageURL)
	}

	s.logger.Info("Leader updated", zap.Int("id", id))
	publishEvent(s.events, s.logger, "leader", events.ActionUpdated, id)
	return &leader, nil
}

// Delete removes the leader row and then its portrait file. The file
// removal is best effort and does not affect the row deletion.
func (s *LeaderService) Delete(ctx context.Context, id int) error {
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

	s.logger.Info("Leader deleted", zap.Int("id", id))
	publishEvent(s.events, s.logger, "leader", events.ActionDeleted, id)
	return nil
}

// orDefaultOrder maps a missing or zero display order to 1
func orDefaultOrder(order int) int {
	if order < 1 {
		return 1
	}
	return order
}

// orDefaultTrue maps an absent flag to true
func orDefaultTrue(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}
