package notification

import (
	"context"
	"encoding/json"

	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/logger"
)

const (
	eventTypeThreshold = "capacity_threshold"
	eventTypeLifecycle = "booking_lifecycle"
)

// KafkaSink publishes threshold and lifecycle events as JSON for
// downstream consumers (waitlists, analytics, webhooks).
type KafkaSink struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaSink(brokers []string, topic string, logger logger.Logger) *KafkaSink {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaSink{writer: w, logger: logger}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (s *KafkaSink) EmitThreshold(ctx context.Context, e domain.CapacityThresholdEvent) {
	s.publish(ctx, e.OccurrenceID, envelope{Type: eventTypeThreshold, Payload: e})
}

func (s *KafkaSink) EmitLifecycle(ctx context.Context, e domain.BookingLifecycleEvent) {
	s.publish(ctx, e.OccurrenceID, envelope{Type: eventTypeLifecycle, Payload: e})
}

// publish keys messages by occurrence ID so events for one occurrence
// stay ordered within a partition.
func (s *KafkaSink) publish(ctx context.Context, key string, env envelope) {
	value, err := json.Marshal(env)
	if err != nil {
		s.logger.Error("failed to marshal event",
			logger.String("type", env.Type),
			logger.String("error", err.Error()),
		)
		return
	}

	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		s.logger.Error("failed to publish event",
			logger.String("type", env.Type),
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
