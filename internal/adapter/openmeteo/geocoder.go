package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/observability"
)

// Geocoder implements domain.Geocoder using the Open-Meteo geocoding API.
type Geocoder struct {
	baseURL string
	*transport
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewGeocoder creates a geocoding client. baseURL is the API root, e.g.
// https://geocoding-api.open-meteo.com/v1.
func NewGeocoder(baseURL string, timeout time.Duration, rps float64, logger *slog.Logger, metrics *observability.Metrics) *Geocoder {
	g := &Geocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: newTransport("openmeteo-geocoding", timeout, rps),
		logger:    logger,
		metrics:   metrics,
	}
	g.onRetry = func(attempt int, err error) {
		g.logger.Warn("retrying geocode request", "attempt", attempt, "error", err)
	}
	return g
}

// ForwardGeocode returns the best match for name. No match yields an empty
// result and a nil error.
func (g *Geocoder) ForwardGeocode(ctx context.Context, name string) (domain.GeocodingResult, error) {
	params := url.Values{
		"name":     {name},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}

	resp, err := g.get(ctx, g.baseURL+"/search?"+params.Encode())
	if err != nil {
		g.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.GeocodingResult{}, fmt.Errorf("forward geocode request: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.GeocodingResult{}, fmt.Errorf("decode response: %w", err)
	}

	if len(body.Results) == 0 {
		g.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		g.logger.Debug("no geocoding match", "name", name)
		return domain.GeocodingResult{}, nil
	}

	g.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	r := body.Results[0]
	return domain.GeocodingResult{
		Lat:      r.Latitude,
		Lon:      r.Longitude,
		Name:     r.Name,
		Country:  r.Country,
		Timezone: r.Timezone,
	}, nil
}

// Open-Meteo geocoding response types.

type searchResponse struct {
	Results []place `json:"results"`
}

type place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}
