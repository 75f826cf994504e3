package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/config"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const TopicSiteEvents = "site.events"

type KafkaProducerClient struct {
	SiteEventsWriter *kafka.Writer
	logger           logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'site.events'
	siteWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicSiteEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{SiteEventsWriter: siteWriter, logger: log}, nil
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func (c *KafkaProducerClient) PublishSiteEvent(ctx context.Context, evt service.SiteEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode site event: %w", err)
	}
	return c.SiteEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Resource),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.SiteEventsWriter != nil {
		c.SiteEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
