package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/skins-api/internal/logger"
	"github.com/sbilibin2017/skins-api/internal/models"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes domain events. Publishing is best effort: failures
// are logged and never returned to the caller. A nil publisher is valid.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher on top of writer.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish sends event keyed by its account id.
func (p *EventPublisher) Publish(ctx context.Context, event models.Event) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("event writer not configured, skipping publishing", "type", event.Type)
		return
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}
	logger.Log.Infow("event published", "event_id", event.EventID, "type", event.Type)
}
