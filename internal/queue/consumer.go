package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the listing queue into an append-only JSON log file.
type Consumer struct {
	url   string
	queue string
	log   *zap.Logger
	sink  *zap.Logger
}

// NewConsumer opens (creating if needed) the listing log at path.
func NewConsumer(url, queue, path string, log *zap.Logger) (*Consumer, error) {
	sink, err := openListingLog(path)
	if err != nil {
		return nil, err
	}
	return &Consumer{url: url, queue: queue, log: log, sink: sink}, nil
}

func openListingLog(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Sampling = nil
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	return zc.Build()
}

// Run consumes until ctx is cancelled, reconnecting with exponential
// backoff whenever the broker goes away.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() { _ = c.sink.Sync() }()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(c.url)
		if err == nil {
			backoff = time.Second
			err = c.consume(ctx, conn)
			_ = conn.Close()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("listing consumer disconnected", zap.Error(err), zap.Duration("retry_in", backoff))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		if backoff < 30*time.Second {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.log.Warn("set qos failed", zap.Error(err))
	}
	if _, err := declare(ch, c.queue); err != nil {
		return err
	}
	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(d.Body); err != nil {
				c.log.Error("listing event rejected", zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(body []byte) error {
	var ev PropertyListedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.PropertyID <= 0 {
		return fmt.Errorf("event without property id")
	}
	c.sink.Info("property listed",
		zap.Int64("property_id", ev.PropertyID),
		zap.Int64("owner_id", ev.OwnerID),
		zap.String("title", ev.Title),
		zap.String("city", ev.City),
		zap.Int64("cost_per_night", ev.CostPerNight),
		zap.String("listed_at", ev.ListedAt),
	)
	return nil
}
