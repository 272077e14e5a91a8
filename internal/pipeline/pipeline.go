package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/observability"
	"github.com/couchcryptid/trmnl-weather/internal/store"
	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
)

// ForecastSource fetches the raw forecast for a location.
type ForecastSource interface {
	FetchForecast(ctx context.Context, loc domain.Location, units domain.Units) (domain.RawForecast, error)
}

// Settings describes what the pipeline refreshes and how often.
type Settings struct {
	Location domain.Location
	Units    domain.Units
	Interval time.Duration
}

// Pipeline orchestrates the fetch-derive-render-deliver cycle.
type Pipeline struct {
	settings    Settings
	source      ForecastSource
	transformer *Transformer
	store       store.Store
	sinks       []Sink
	geocoder    domain.Geocoder
	clock       clockwork.Clock
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline. sinks may be empty; the store is always written first.
func New(settings Settings, source ForecastSource, st store.Store, sinks []Sink, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		settings:    settings,
		source:      source,
		transformer: NewTransformer(settings.Units),
		store:       st,
		sinks:       sinks,
		clock:       clockwork.NewRealClock(),
		logger:      logger,
		metrics:     metrics,
	}
}

// WithGeocoder enables on-demand Lookup by place name.
func (p *Pipeline) WithGeocoder(g domain.Geocoder) *Pipeline {
	p.geocoder = g
	return p
}

// WithClock replaces the time source used to derive snapshots.
func (p *Pipeline) WithClock(c clockwork.Clock) *Pipeline {
	p.clock = c
	return p
}

// CheckReadiness returns nil once a snapshot has been stored.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no forecast snapshot has been stored yet")
	}
	return nil
}

// Latest returns the most recent stored snapshot for the configured location.
func (p *Pipeline) Latest(ctx context.Context) (domain.Snapshot, error) {
	return p.store.Latest(ctx, p.settings.Location.Key())
}

// Lookup geocodes name and derives a display for it without storing or
// delivering anything.
func (p *Pipeline) Lookup(ctx context.Context, name string) (domain.Snapshot, error) {
	loc, err := domain.ResolveLocation(ctx, p.geocoder, name)
	if err != nil {
		return domain.Snapshot{}, err
	}
	raw, err := p.source.FetchForecast(ctx, loc, p.settings.Units)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return p.transformer.Transform(raw, loc, p.clock.Now())
}

// RunOnce performs a single refresh. A fetch, derive or store failure aborts
// the cycle and leaves the previous snapshot in place. Sink failures are
// logged and counted but do not fail the cycle.
func (p *Pipeline) RunOnce(ctx context.Context) error {
	start := time.Now()
	loc := p.settings.Location

	snap, err := p.refresh(ctx, loc)
	if err != nil {
		p.metrics.CyclesTotal.WithLabelValues("error").Inc()
		p.logger.Error("refresh failed, keeping previous snapshot", "location", loc.Key(), "error", err)
		return err
	}

	p.ready.Store(true)
	p.metrics.LastSuccess.Set(float64(snap.GeneratedAt.Unix()))

	for _, sink := range p.sinks {
		if err := sink.Deliver(ctx, snap); err != nil {
			p.metrics.Deliveries.WithLabelValues(sink.Name(), "error").Inc()
			p.logger.Warn("snapshot delivery failed", "sink", sink.Name(), "location", loc.Key(), "error", err)
			continue
		}
		p.metrics.Deliveries.WithLabelValues(sink.Name(), "success").Inc()
	}

	p.metrics.CyclesTotal.WithLabelValues("success").Inc()
	p.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("refresh complete",
		"location", loc.Key(),
		"current_temp", snap.Display.Current.Temp,
		"conditions", snap.Display.Current.Description,
		"duration", time.Since(start),
	)
	return nil
}

func (p *Pipeline) refresh(ctx context.Context, loc domain.Location) (domain.Snapshot, error) {
	raw, err := p.source.FetchForecast(ctx, loc, p.settings.Units)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap, err := p.transformer.Transform(raw, loc, p.clock.Now())
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := p.store.Save(ctx, snap); err != nil {
		p.metrics.Deliveries.WithLabelValues("store", "error").Inc()
		return domain.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	p.metrics.Deliveries.WithLabelValues("store", "success").Inc()
	return snap, nil
}

// Run refreshes immediately and then every Settings.Interval until ctx is
// cancelled. A slow cycle is never overlapped by the next one.
func (p *Pipeline) Run(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(p.settings.Interval).SingletonMode().Do(func() {
		_ = p.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	p.logger.Info("pipeline started", "location", p.settings.Location.Key(), "interval", p.settings.Interval)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	scheduler.StartAsync()
	<-ctx.Done()
	scheduler.Stop()

	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}
