// Command trmnl-weather refreshes an Open-Meteo forecast on a schedule,
// renders the TRMNL weather panel, and serves or pushes it.
//
// Usage:
//
//	trmnl-weather          # schedule refreshes and serve HTTP until SIGINT/SIGTERM
//	trmnl-weather -once    # run a single refresh and exit
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/trmnl-weather/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/trmnl-weather/internal/adapter/kafka"
	"github.com/couchcryptid/trmnl-weather/internal/adapter/openmeteo"
	"github.com/couchcryptid/trmnl-weather/internal/adapter/trmnl"
	"github.com/couchcryptid/trmnl-weather/internal/config"
	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/observability"
	"github.com/couchcryptid/trmnl-weather/internal/pipeline"
	"github.com/couchcryptid/trmnl-weather/internal/store"
)

func main() {
	once := flag.Bool("once", false, "run a single refresh and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	units := domain.Units{Temperature: cfg.TemperatureUnit, WindSpeed: cfg.WindSpeedUnit}
	source := openmeteo.NewClient(cfg.OpenMeteoBaseURL, cfg.OpenMeteoTimeout, cfg.OpenMeteoRPS, logger, metrics)
	geocoder := openmeteo.NewCachedGeocoder(
		openmeteo.NewGeocoder(cfg.OpenMeteoGeocodingURL, cfg.OpenMeteoTimeout, cfg.OpenMeteoRPS, logger, metrics),
		cfg.GeocodeCacheSize,
		metrics,
	)

	location := domain.Location{Name: cfg.LocationName, Latitude: cfg.Latitude, Longitude: cfg.Longitude}
	if cfg.NeedsGeocoding() {
		location, err = domain.ResolveLocation(ctx, geocoder, cfg.LocationName)
		if err != nil {
			logger.Error("failed to resolve LOCATION_NAME", "name", cfg.LocationName, "error", err)
			os.Exit(1)
		}
		logger.Info("resolved location", "name", location.Name, "latitude", location.Latitude, "longitude", location.Longitude)
	}

	// Snapshot store: Redis when configured, otherwise in-process.
	var st store.Store = store.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisStore, err := store.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SnapshotTTL, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		st = redisStore
	}

	var sinks []pipeline.Sink
	if cfg.WebhookEnabled() {
		sinks = append(sinks, pipeline.WebhookSink(trmnl.NewWebhook(cfg.TRMNLWebhookBaseURL, cfg.TRMNLPluginUUID, cfg.TRMNLTimeout, logger)))
		logger.Info("trmnl webhook enabled")
	} else {
		logger.Info("trmnl webhook disabled; serving markup for polling only")
	}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled() {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sinks = append(sinks, pipeline.PublisherSink(writer))
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(pipeline.Settings{
		Location: location,
		Units:    units,
		Interval: cfg.UpdateInterval,
	}, source, st, sinks, logger, metrics).WithGeocoder(geocoder)

	if *once {
		err := p.RunOnce(ctx)
		closeWriter(writer, logger)
		if err != nil {
			os.Exit(1)
		}
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	closeWriter(writer, logger)

	logger.Info("shutdown complete")
}

func closeWriter(w *kafkaadapter.Writer, logger *slog.Logger) {
	if w == nil {
		return
	}
	if err := w.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
}
