package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/lucasmonteiro/vitrine/internal/config"
)

const (
	TopicContentEvents = "content.events"
	TopicBillingEvents = "billing.events"
)

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	BillingEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	billingWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicBillingEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		BillingEventsWriter: billingWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal content event: %w", err)
	}
	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishBillingEvent(ctx context.Context, payload BillingEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal billing event: %w", err)
	}
	return c.BillingEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OwnerID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	if c.BillingEventsWriter != nil {
		c.BillingEventsWriter.Close()
	}
}
