package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
	"github.com/yourorg/transport-cms/internal/model"
	"github.com/yourorg/transport-cms/internal/storage"
)

// Default news category labels
const (
	defaultCategoryEN = "Transport"
	defaultCategoryAM = "ትራንስፖርት"
)

// NewsStore defines the repository operations the news service needs
type NewsStore interface {
	List(ctx context.Context, publishedOnly bool) ([]model.News, error)
	ListRecent(ctx context.Context, limit int) ([]model.News, error)
	GetByID(ctx context.Context, id int) (*model.News, error)
	GetPublishedByID(ctx context.Context, id int) (*model.News, error)
	Create(ctx context.Context, n *model.News) (int, error)
	Update(ctx context.Context, n *model.News, withImage bool) error
	Delete(ctx context.Context, id int) error
}

// NewsService manages news articles and their featured images
type NewsService struct {
	repo    NewsStore
	files   storage.Storage
	cleanup Cleaner
	events  EventPublisher
	logger  *zap.Logger
}

// NewNewsService creates a new news service
func NewNewsService(repo NewsStore, files storage.Storage, cleanup Cleaner, events EventPublisher, logger *zap.Logger) *NewsService {
	return &NewsService{repo: repo, files: files, cleanup: cleanup, events: events, logger: logger}
}

// List returns news articles, optionally restricted to published ones
func (s *NewsService) List(ctx context.Context, publishedOnly bool) ([]model.News, error) {
	return s.repo.List(ctx, publishedOnly)
}

// Get returns a single article regardless of publication state
func (s *NewsService) Get(ctx context.Context, id int) (*model.News, error) {
	return s.repo.GetByID(ctx, id)
}

// GetPublished returns a single published article
func (s *NewsService) GetPublished(ctx context.Context, id int) (*model.News, error) {
	return s.repo.GetPublishedByID(ctx, id)
}

// Create stores the featured image if present and inserts the article.
// News images are classified as media even though the upload arrives on
// the generic image field.
func (s *NewsService) Create(ctx context.Context, input model.NewsInput, file *multipart.FileHeader, createdBy string) (*model.News, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	article := &model.News{
		TitleEN:       input.TitleEN,
		TitleAM:       input.TitleAM,
		DescriptionEN: input.DescriptionEN,
		DescriptionAM: input.DescriptionAM,
		CategoryEN:    orDefault(input.CategoryEN, defaultCategoryEN),
		CategoryAM:    orDefault(input.CategoryAM, defaultCategoryAM),
		Date:          date,
		IsPublished:   orDefaultTrue(input.IsPublished),
		CreatedBy:     &createdBy,
	}

	if file != nil {
		ref, err := s.files.Save(ctx, "image", true, file)
		if err != nil {
			return nil, err
		}
		article.ImageURL = &ref
	}

	id, err := s.repo.Create(ctx, article)
	if err != nil {
		if article.ImageURL != nil {
			s.cleanup.Enqueue(*article.ImageURL)
		}
		return nil, err
	}
	article.ID = id

	s.logger.Info("News created", zap.Int("id", id), zap.String("title", article.TitleEN))
	publishEvent(s.events, s.logger, "news", events.ActionCreated, id)
	return article, nil
}

// Update writes the article row, replacing the featured image when a
// new upload is present
func (s *NewsService) Update(ctx context.Context, id int, input model.NewsInput, file *multipart.FileHeader) (*model.News, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	article := *current
	article.TitleEN = input.TitleEN
	article.TitleAM = input.TitleAM
	article.DescriptionEN = input.DescriptionEN
	article.DescriptionAM = input.DescriptionAM
	article.CategoryEN = orDefault(input.CategoryEN, defaultCategoryEN)
	article.CategoryAM = orDefault(input.CategoryAM, defaultCategoryAM)
	article.Date = date
	article.IsPublished = orDefaultTrue(input.IsPublished)

	hasUpload := file != nil
	if hasUpload {
		ref, err := s.files.Save(ctx, "image", true, file)
		if err != nil {
			return nil, err
		}
		article.ImageURL = &ref
	}

	if err := s.repo.Update(ctx, &article, hasUpload); err != nil {
		if hasUpload {
			s.cleanup.Enqueue(*article.ImageURL)
		}
		return nil, err
	}

	if hasUpload && current.ImageURL != nil {
		s.cleanup.Enqueue(*current.ImageURL)
	}

	s.logger.Info("News updated", zap.Int("id", id))
	publishEvent(s.events, s.logger, "news", events.ActionUpdated, id)
	return &article, nil
}

// Delete removes the article row and then its featured image
func (s *NewsService) Delete(ctx context.Context, id int) error {
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

	s.logger.Info("News deleted", zap.Int("id", id))
	publishEvent(s.events, s.logger, "news", events.ActionDeleted, id)
	return nil
}

// Recent returns the most recently created articles
func (s *NewsService) Recent(ctx context.Context, limit int) ([]model.News, error) {
	return s.repo.ListRecent(ctx, limit)
}

// parseDate parses an optional YYYY-MM-DD form value
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", model.ErrValidation, value)
	}
	return &t, nil
}

// orDefault maps an empty string to a fallback value
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
