package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/pkg/logger"
)

// SiteEventHandler reacts to one decoded event. A returned error is retried
// in place up to maxHandleAttempts times; after that the message is committed
// anyway, since any later event rebuilds the same cached view.
type SiteEventHandler func(ctx context.Context, evt service.SiteEvent) error

const (
	maxHandleAttempts = 3
	retryBackoff      = 500 * time.Millisecond
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type SiteEventConsumer struct {
	reader  messageReader
	logger  logger.Logger
	backoff time.Duration
}

func NewSiteEventConsumer(cfg config.Config, log logger.Logger) *SiteEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicSiteEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &SiteEventConsumer{reader: reader, logger: log, backoff: retryBackoff}
}

// Run blocks until ctx is done.
func (c *SiteEventConsumer) Run(ctx context.Context, handle SiteEventHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicSiteEvents))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		var evt service.SiteEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			c.logger.Warn("Failed to unmarshal event, skipping", zap.Error(err), zap.Int64("offset", msg.Offset))
			c.commit(ctx, msg)
			continue
		}

		l := c.logger.With(zap.String("event_id", evt.ID), zap.String("event_type", string(evt.EventType)))
		if err := c.handleWithRetry(ctx, handle, evt); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.Error("Giving up on site event", err, zap.Int("attempts", maxHandleAttempts))
		} else {
			l.Info("Site event processed", zap.String("resource", evt.Resource))
		}
		c.commit(ctx, msg)
	}
}

func (c *SiteEventConsumer) handleWithRetry(ctx context.Context, handle SiteEventHandler, evt service.SiteEvent) error {
	var err error
	for attempt := 1; attempt <= maxHandleAttempts; attempt++ {
		if err = handle(ctx, evt); err == nil {
			return nil
		}
		c.logger.Warn("Site event handler failed", zap.Error(err), zap.Int("attempt", attempt))
		if attempt == maxHandleAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (c *SiteEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *SiteEventConsumer) Close() error {
	return c.reader.Close()
}
