package services

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventPublisher publishes account events to Kafka. A nil publisher, or one
// without a writer, silently skips publishing.
type EventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewEventPublisher creates a publisher on top of writer.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer, now: time.Now}
}

// Publish sends an event of eventType for userID. Failures are logged and
// never reach the caller.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, userID int64) {
	if p == nil || p.writer == nil {
		return
	}

	event := models.AccountEvent{
		EventID:   uuid.NewString(),
		Timestamp: p.now().Unix(),
		UserID:    userID,
		Type:      eventType,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal account event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish account event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Debugw("account event published", "event_id", event.EventID, "type", eventType, "user_id", userID)
}

// Close closes the underlying writer.
func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
