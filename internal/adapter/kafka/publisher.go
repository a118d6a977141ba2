// Package kafka publishes assessment events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/models"
)

// messageWriter is the part of *kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher produces assessment events to the configured topic.
type Publisher struct {
	writer messageWriter
	logger *logger.Logger
}

// NewPublisher creates a synchronous producer for the configured topic.
// PublishAssessment blocks until a broker acknowledges or ctx ends.
func NewPublisher(cfg config.Kafka, logger *logger.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishAssessment writes one event keyed by its location so events of the
// same place land on the same partition.
func (p *Publisher) PublishAssessment(ctx context.Context, event models.AssessmentEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Publisher.PublishAssessment").Msg("error publishing assessment event")
		return fmt.Errorf("publish assessment event: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func locationKey(c models.Coordinate) string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

func serializeToMessage(event models.AssessmentEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize assessment event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(locationKey(event.Location)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "generated_at", Value: []byte(event.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}

// NopPublisher discards events. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishAssessment(context.Context, models.AssessmentEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
