package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/config"
	"github.com/couchcryptid/trmnl-weather/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer publishes display snapshots to a Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured snapshot topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes the snapshot's display data keyed by location, so every
// refresh for one location lands on the same partition.
func (w *Writer) Publish(ctx context.Context, snap domain.Snapshot) error {
	msg, err := serializeToMessage(snap)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish snapshot %s: %w", snap.Key, err)
	}
	w.logger.Debug("published snapshot", "topic", w.writer.Topic, "key", snap.Key)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// snapshotMessage is the published value. Markup is left out; consumers
// render from the display data.
type snapshotMessage struct {
	Location    domain.Location `json:"location"`
	GeneratedAt time.Time       `json:"generated_at"`
	Display     domain.Display  `json:"display"`
}

func serializeToMessage(snap domain.Snapshot) (kafkago.Message, error) {
	data, err := json.Marshal(snapshotMessage{
		Location:    snap.Location,
		GeneratedAt: snap.GeneratedAt,
		Display:     snap.Display,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize snapshot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(snap.Key),
		Value: data,
		Time:  snap.GeneratedAt,
		Headers: []kafkago.Header{
			{Key: "location", Value: []byte(snap.Key)},
			{Key: "generated_at", Value: []byte(snap.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
