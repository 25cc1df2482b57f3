package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Content event actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ContentEvent describes a change to a content entity
type ContentEvent struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher publishes content change events to Kafka
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher creates a new Kafka content event publisher
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Publish sends a content event
func (p *Publisher) Publish(ctx context.Context, event ContentEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%d", event.Entity, event.ID)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("Published content event",
		zap.String("entity", event.Entity),
		zap.String("action", event.Action),
		zap.Int("id", event.ID))
	return nil
}

// Close closes the underlying writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}
