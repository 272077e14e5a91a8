package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/trmnl-weather/internal/domain"
	"github.com/couchcryptid/trmnl-weather/internal/observability"
)

// Forecast fields requested from /forecast; they match the JSON tags of
// domain.HourlyTable and domain.DailyTable.
var (
	hourlyFields = []string{
		"temperature_2m",
		"apparent_temperature",
		"precipitation_probability",
		"relative_humidity_2m",
		"wind_speed_10m",
		"wind_direction_10m",
		"weather_code",
	}
	dailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
	}
)

const forecastDays = 8

// Client fetches forecasts from the Open-Meteo forecast API.
type Client struct {
	baseURL string
	*transport
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewClient creates a forecast client. baseURL is the API root, e.g. https://api.open-meteo.com/v1.
func NewClient(baseURL string, timeout time.Duration, rps float64, logger *slog.Logger, metrics *observability.Metrics) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: newTransport("openmeteo-forecast", timeout, rps),
		logger:    logger,
		metrics:   metrics,
	}
	c.onRetry = func(attempt int, err error) {
		c.metrics.FetchRequests.WithLabelValues("retry").Inc()
		c.logger.Warn("retrying forecast request", "attempt", attempt, "error", err)
	}
	return c
}

// FetchForecast returns the hourly and daily forecast for loc in the given units.
func (c *Client) FetchForecast(ctx context.Context, loc domain.Location, units domain.Units) (domain.RawForecast, error) {
	params := url.Values{
		"latitude":         {strconv.FormatFloat(loc.Latitude, 'f', -1, 64)},
		"longitude":        {strconv.FormatFloat(loc.Longitude, 'f', -1, 64)},
		"hourly":           {strings.Join(hourlyFields, ",")},
		"daily":            {strings.Join(dailyFields, ",")},
		"temperature_unit": {units.Temperature},
		"wind_speed_unit":  {units.WindSpeed},
		"timezone":         {"auto"},
		"forecast_days":    {strconv.Itoa(forecastDays)},
	}

	start := time.Now()
	raw, err := c.fetch(ctx, c.baseURL+"/forecast?"+params.Encode())
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("error").Inc()
		return domain.RawForecast{}, fmt.Errorf("fetch forecast for %s: %w", loc.Key(), err)
	}
	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	c.logger.Debug("forecast fetched",
		"location", loc.Key(),
		"timezone", raw.Timezone,
		"duration", time.Since(start),
	)
	return raw, nil
}

func (c *Client) fetch(ctx context.Context, fullURL string) (domain.RawForecast, error) {
	resp, err := c.get(ctx, fullURL)
	if err != nil {
		return domain.RawForecast{}, err
	}
	defer resp.Body.Close()

	var raw domain.RawForecast
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return domain.RawForecast{}, fmt.Errorf("decode response: %w", err)
	}
	if err := raw.Validate(); err != nil {
		return domain.RawForecast{}, err
	}
	return raw, nil
}
