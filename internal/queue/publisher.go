package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends listing events to a durable queue. Each publish dials
// its own connection; listings are rare enough that pooling is not
// worth holding a broker connection open.
type Publisher struct {
	url   string
	queue string
	log   *zap.Logger
}

func NewPublisher(url, queue string, log *zap.Logger) *Publisher {
	return &Publisher{url: url, queue: queue, log: log}
}

// PublishPropertyListed publishes ev as a persistent JSON message.
func (p *Publisher) PublishPropertyListed(ctx context.Context, ev PropertyListedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("amqp dial failed", zap.Error(err))
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := declare(ch, p.queue); err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	p.log.Debug("property listed event published", zap.Int64("property_id", ev.PropertyID))
	return nil
}

func declare(ch *amqp.Channel, queue string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return q, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return q, nil
}

// NopPublisher drops events; it is used when the broker is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishPropertyListed(context.Context, PropertyListedEvent) error { return nil }
