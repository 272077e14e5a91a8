package pipeline

import (
	"context"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
)

// Sink receives every snapshot after it has been stored.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, snap domain.Snapshot) error
}

// Pusher sends TRMNL merge variables; implemented by trmnl.Webhook.
type Pusher interface {
	Push(ctx context.Context, mergeVars map[string]any) error
}

// Publisher emits whole snapshots; implemented by kafka.Writer.
type Publisher interface {
	Publish(ctx context.Context, snap domain.Snapshot) error
}

type webhookSink struct{ pusher Pusher }

// WebhookSink pushes the snapshot's merge variables.
func WebhookSink(p Pusher) Sink { return webhookSink{pusher: p} }

func (webhookSink) Name() string { return "trmnl" }

func (s webhookSink) Deliver(ctx context.Context, snap domain.Snapshot) error {
	return s.pusher.Push(ctx, domain.MergeVariables(snap.Display))
}

type publisherSink struct{ publisher Publisher }

// PublisherSink publishes the snapshot to Kafka.
func PublisherSink(p Publisher) Sink { return publisherSink{publisher: p} }

func (publisherSink) Name() string { return "kafka" }

func (s publisherSink) Deliver(ctx context.Context, snap domain.Snapshot) error {
	return s.publisher.Publish(ctx, snap)
}
