// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loadbooking/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventName  = "event-name"
	HeaderEventID    = "event-id"
	HeaderOccurredAt = "occurred-at"
)

var (
	messagesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loadbooking_outbox_messages_published_total",
		Help: "The total number of outbox messages written to Kafka",
	}, []string{"event"})
	publishErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loadbooking_outbox_publish_errors_total",
		Help: "The total number of failed Kafka writes",
	}, []string{"event"})
)

var _ ports.EventPublisher = &Producer{}

type Config struct {
	Brokers []string
	Topic   string
}

func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka: at least one broker is required")
	}
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("kafka: topic is required")
	}
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes outbox messages synchronously. Messages are keyed by
// aggregate id so every event of one load or booking lands on the same
// partition in the order it was written.
type Producer struct {
	writer messageWriter
	topic  string
}

func NewProducer(cfg Config) (*Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            5,
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           10 * time.Second,
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: w, topic: cfg.Topic}, nil
}

func (p *Producer) Publish(ctx context.Context, message ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, toKafkaMessage(message))
	if err != nil {
		publishErrors.WithLabelValues(message.Name).Inc()
		return fmt.Errorf("failed to write message %s: %w", message.ID, err)
	}
	messagesPublished.WithLabelValues(message.Name).Inc()
	return nil
}

func (p *Producer) Topic() string {
	return p.topic
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(message ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(message.AggregateID.String()),
		Value: message.Payload,
		Headers: []kafka.Header{
			{Key: HeaderEventName, Value: []byte(message.Name)},
			{Key: HeaderEventID, Value: []byte(message.ID.String())},
			{Key: HeaderOccurredAt, Value: []byte(message.OccurredAt.UTC().Format(time.RFC3339Nano))},
		},
	}
}
