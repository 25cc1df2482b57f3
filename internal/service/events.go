package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/transport-cms/internal/events"
)

// EventPublisher publishes content change events
type EventPublisher interface {
	Publish(ctx context.Context, event events.ContentEvent) error
}

// publishEvent sends a content event without affecting the request that
// triggered it. A nil publisher disables event publishing.
func publishEvent(pub EventPublisher, logger *zap.Logger, entity, action string, id int) {
	if pub == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := events.ContentEvent{Entity: entity, Action: action, ID: id}
	if err := pub.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish content event",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Int("id", id),
			zap.Error(err))
	}
}
