package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	TopicViewEvents = "view.events"

	ViewEventTypeExperience = "experience.viewed"
)

type ViewEventPayload struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	Slug       string    `json:"slug"`
	OccurredAt time.Time `json:"occurred_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	viewWriter messageWriter
	logger     logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	viewWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicViewEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		viewWriter: viewWriter,
		logger:     log,
	}, nil
}

func (c *KafkaProducerClient) PublishExperienceViewed(ctx context.Context, slug string) error {
	payload := ViewEventPayload{
		EventID:    uuid.New(),
		EventType:  ViewEventTypeExperience,
		Slug:       slug,
		OccurredAt: time.Now().UTC(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal view event: %w", err)
	}

	return c.viewWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(slug),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.viewWriter != nil {
		if err := c.viewWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka view writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
