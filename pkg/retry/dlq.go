package retry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DLQMessage is a record that exhausted its retry budget
type DLQMessage struct {
	ID             string          `json:"id"`
	OriginalTopic  string          `json:"original_topic"`
	OriginalKey    string          `json:"original_key"`
	Payload        json.RawMessage `json:"payload"`
	Error          string          `json:"error"`
	Attempts       int             `json:"attempts"`
	FirstAttemptAt time.Time       `json:"first_attempt_at"`
	MovedToDLQAt   time.Time       `json:"moved_to_dlq_at"`
	Source         string          `json:"source"`
}

// DLQPublisher publishes failed messages to a dead letter topic
type DLQPublisher interface {
	PublishToDLQ(ctx context.Context, msg *DLQMessage) error
	DLQTopic(originalTopic string) string
}

// JSONProducer is the producer surface the DLQ publisher needs
type JSONProducer interface {
	ProduceJSON(ctx context.Context, topic, key string, data interface{}) error
}

// KafkaDLQPublisher writes exhausted messages to "<topic>.dlq"
type KafkaDLQPublisher struct {
	producer JSONProducer
	source   string
}

// NewKafkaDLQPublisher creates a Kafka-backed DLQ publisher
func NewKafkaDLQPublisher(producer JSONProducer, source string) *KafkaDLQPublisher {
	return &KafkaDLQPublisher{
		producer: producer,
		source:   source,
	}
}

// PublishToDLQ publishes a message to the dead letter topic
func (p *KafkaDLQPublisher) PublishToDLQ(ctx context.Context, msg *DLQMessage) error {
	if msg == nil {
		return fmt.Errorf("DLQ message cannot be nil")
	}

	msg.MovedToDLQAt = time.Now()
	msg.Source = p.source

	return p.producer.ProduceJSON(ctx, p.DLQTopic(msg.OriginalTopic), msg.OriginalKey, msg)
}

// DLQTopic returns the dead letter topic for an original topic
func (p *KafkaDLQPublisher) DLQTopic(originalTopic string) string {
	return originalTopic + ".dlq"
}

// NoOpDLQPublisher discards messages, used when Kafka is disabled
type NoOpDLQPublisher struct{}

func (NoOpDLQPublisher) PublishToDLQ(ctx context.Context, msg *DLQMessage) error {
	return nil
}

func (NoOpDLQPublisher) DLQTopic(originalTopic string) string {
	return originalTopic + ".dlq"
}
