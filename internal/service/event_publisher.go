package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/refanfc/FounderBooking/internal/domain"
	"github.com/refanfc/FounderBooking/pkg/config"
	"github.com/refanfc/FounderBooking/pkg/kafka"
	"github.com/refanfc/FounderBooking/pkg/logger"
	"github.com/refanfc/FounderBooking/pkg/retry"
)

// EventPublisher defines the interface for publishing booking events
type EventPublisher interface {
	// PublishBookingCreated publishes a booking created event
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error

	// PublishBookingConfirmed publishes a booking confirmed event
	PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error

	// PublishBookingCancelled publishes a booking cancelled event
	PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error

	// Close closes the event publisher
	Close() error
}

// KafkaEventPublisher implements EventPublisher using Kafka. Transient
// produce failures are retried with backoff; exhausted events go to the
// dead letter topic so reconciliation can replay them.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	dlq      retry.DLQPublisher
	topic    string
	source   string
	retryCfg *retry.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(ctx context.Context, cfg *config.KafkaConfig, serviceName string) (*KafkaEventPublisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = "booking-events"
	}

	producer, err := kafka.NewProducer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaEventPublisher{
		producer: producer,
		dlq:      retry.NewKafkaDLQPublisher(producer, serviceName),
		topic:    topic,
		source:   serviceName,
		retryCfg: &retry.Config{
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		},
	}, nil
}

// PublishBookingCreated publishes a booking created event
func (p *KafkaEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return p.publishEvent(ctx, domain.BookingEventCreated, booking)
}

// PublishBookingConfirmed publishes a booking confirmed event
func (p *KafkaEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return p.publishEvent(ctx, domain.BookingEventConfirmed, booking)
}

// PublishBookingCancelled publishes a booking cancelled event
func (p *KafkaEventPublisher) PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return p.publishEvent(ctx, domain.BookingEventCancelled, booking)
}

// Close closes the event publisher
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		p.producer.Close()
	}
	return nil
}

func (p *KafkaEventPublisher) publishEvent(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) error {
	eventID := uuid.New().String()
	event := domain.NewBookingEvent(eventType, booking, eventID)

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.Key()),
		Value: value,
		Headers: map[string]string{
			"event_type":   string(eventType),
			"event_id":     eventID,
			"source":       p.source,
			"content_type": "application/json",
		},
		Timestamp: time.Now(),
	}

	result := retry.Do(ctx, p.retryCfg, func(ctx context.Context) error {
		return p.producer.Produce(ctx, msg)
	})
	if result.Err == nil {
		return nil
	}

	logger.Get().Warn("event publish exhausted retries, moving to DLQ",
		zap.String("event_type", string(eventType)),
		zap.Int64("booking_id", booking.ID),
		zap.Int("attempts", result.Attempts),
		zap.Error(result.LastError),
	)

	dlqErr := p.dlq.PublishToDLQ(ctx, &retry.DLQMessage{
		ID:             eventID,
		OriginalTopic:  p.topic,
		OriginalKey:    strconv.FormatInt(booking.ID, 10),
		Payload:        value,
		Error:          result.LastError.Error(),
		Attempts:       result.Attempts,
		FirstAttemptAt: time.Now().Add(-result.TotalDuration),
	})
	if dlqErr != nil {
		return fmt.Errorf("failed to publish %s event: %w (DLQ also failed: %v)", eventType, result.LastError, dlqErr)
	}

	return fmt.Errorf("failed to publish %s event: %w", eventType, result.LastError)
}

// NoOpEventPublisher is a no-op implementation of EventPublisher used in
// tests and when Kafka is unreachable at startup
type NoOpEventPublisher struct{}

// NewNoOpEventPublisher creates a new no-op event publisher
func NewNoOpEventPublisher() *NoOpEventPublisher {
	return &NoOpEventPublisher{}
}

// PublishBookingCreated is a no-op
func (p *NoOpEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return nil
}

// PublishBookingConfirmed is a no-op
func (p *NoOpEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	return nil
}

// PublishBookingCancelled is a no-op
func (p *NoOpEventPublisher) PublishBookingCancelled(ctx context.Context, booking *domain.Booking) error {
	return nil
}

// Close is a no-op
func (p *NoOpEventPublisher) Close() error {
	return nil
}
