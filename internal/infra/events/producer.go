package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
)

// Producer emits order lifecycle events to Kafka. With no brokers
// configured NewPublisher hands back a no-op instead.
type Producer struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.Config) (commands.EventPublisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		return NoopPublisher{}, func() {}
	}

	p := &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
	return p, func() { _ = p.writer.Close() }
}

func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to write event")
	}
	return nil
}

// NoopPublisher drops every event. Used when the broker list is empty.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
