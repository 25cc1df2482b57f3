package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/model"
)

// DashboardStore provides the aggregate counts for the dashboard
type DashboardStore interface {
	Counts(ctx context.Context) (*model.DashboardCounts, error)
}

// Dashboard bundles everything the admin landing page shows
type Dashboard struct {
	Counts         *model.DashboardCounts `json:"counts"`
	RecentMessages []model.ContactMessage `json:"recent_messages"`
	RecentNews     []model.News           `json:"recent_news"`
}

// DashboardService assembles the admin dashboard
type DashboardService struct {
	dash     DashboardStore
	messages MessageStore
	news     NewsStore
	logger   *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dash DashboardStore, messages MessageStore, news NewsStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{dash: dash, messages: messages, news: news, logger: logger}
}

// Load returns the dashboard counts plus the five most recent messages
// and articles
func (s *DashboardService) Load(ctx context.Context) (*Dashboard, error) {
	counts, err := s.dash.Counts(ctx)
	if err != nil {
		return nil, err
	}

	recentMessages, err := s.messages.List(ctx, 5, 0)
	if err != nil {
		return nil, err
	}

	recentNews, err := s.news.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Counts:         counts,
		RecentMessages: recentMessages,
		RecentNews:     recentNews,
	}, nil
}
