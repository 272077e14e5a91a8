package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Default forecast point, used when neither coordinates nor a place name are set.
const (
	defaultLatitude  = 42.77275
	defaultLongitude = -86.211787
)

// Config holds all service settings, populated from environment variables.
// The env tag names the variable and is used in validation errors.
type Config struct {
	Latitude        float64 `env:"LATITUDE" validate:"gte=-90,lte=90"`
	Longitude       float64 `env:"LONGITUDE" validate:"gte=-180,lte=180"`
	LocationName    string  `env:"LOCATION_NAME"`
	TemperatureUnit string  `env:"TEMPERATURE_UNIT" validate:"oneof=fahrenheit celsius"`
	WindSpeedUnit   string  `env:"WIND_SPEED_UNIT" validate:"oneof=mph kmh ms kn"`

	UpdateInterval  time.Duration `env:"UPDATE_INTERVAL" validate:"gte=1m"`
	HTTPAddr        string        `env:"HTTP_ADDR" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat       string        `env:"LOG_FORMAT" validate:"oneof=json text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	// TRMNL webhook delivery; disabled when the plugin UUID is empty.
	TRMNLPluginUUID     string        `env:"TRMNL_PLUGIN_UUID"`
	TRMNLWebhookBaseURL string        `env:"TRMNL_WEBHOOK_BASE_URL" validate:"url"`
	TRMNLTimeout        time.Duration `env:"TRMNL_TIMEOUT" validate:"gt=0"`

	// Open-Meteo forecast and geocoding APIs.
	OpenMeteoBaseURL      string        `env:"OPEN_METEO_BASE_URL" validate:"url"`
	OpenMeteoGeocodingURL string        `env:"OPEN_METEO_GEOCODING_URL" validate:"url"`
	OpenMeteoTimeout      time.Duration `env:"OPEN_METEO_TIMEOUT" validate:"gt=0"`
	OpenMeteoRPS          float64       `env:"OPEN_METEO_RPS" validate:"gt=0"`
	GeocodeCacheSize      int           `env:"GEOCODE_CACHE_SIZE" validate:"gt=0"`

	// Kafka snapshot publishing; disabled when no brokers are set.
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" validate:"required_with=KafkaBrokers"`

	// Redis snapshot store; the in-memory store is used when RedisAddr is empty.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" validate:"gte=0"`
	SnapshotTTL   time.Duration `env:"SNAPSHOT_TTL" validate:"gt=0"`

	explicitCoordinates bool
}

// WebhookEnabled reports whether snapshots are pushed to TRMNL.
func (c *Config) WebhookEnabled() bool { return c.TRMNLPluginUUID != "" }

// KafkaEnabled reports whether snapshots are published to Kafka.
func (c *Config) KafkaEnabled() bool { return len(c.KafkaBrokers) > 0 }

// NeedsGeocoding reports whether the forecast point must be resolved from LocationName.
func (c *Config) NeedsGeocoding() bool {
	return c.LocationName != "" && !c.explicitCoordinates
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional

	p := &parser{}
	cfg := &Config{
		Latitude:        p.float("LATITUDE", defaultLatitude),
		Longitude:       p.float("LONGITUDE", defaultLongitude),
		LocationName:    strings.TrimSpace(os.Getenv("LOCATION_NAME")),
		TemperatureUnit: envOrDefault("TEMPERATURE_UNIT", "fahrenheit"),
		WindSpeedUnit:   envOrDefault("WIND_SPEED_UNIT", "mph"),

		UpdateInterval:  p.duration("UPDATE_INTERVAL", "3h"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", "10s"),

		TRMNLPluginUUID:     os.Getenv("TRMNL_PLUGIN_UUID"),
		TRMNLWebhookBaseURL: envOrDefault("TRMNL_WEBHOOK_BASE_URL", "https://trmnl.com/api/custom_plugins"),
		TRMNLTimeout:        p.duration("TRMNL_TIMEOUT", "30s"),

		OpenMeteoBaseURL:      envOrDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com/v1"),
		OpenMeteoGeocodingURL: envOrDefault("OPEN_METEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1"),
		OpenMeteoTimeout:      p.duration("OPEN_METEO_TIMEOUT", "30s"),
		OpenMeteoRPS:          p.float("OPEN_METEO_RPS", 1),
		GeocodeCacheSize:      p.int("GEOCODE_CACHE_SIZE", 256),

		KafkaBrokers: parseList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "weather-display-snapshots"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       p.int("REDIS_DB", 0),
		SnapshotTTL:   p.duration("SNAPSHOT_TTL", "24h"),

		explicitCoordinates: os.Getenv("LATITUDE") != "" || os.Getenv("LONGITUDE") != "",
	}
	if p.err != nil {
		return nil, p.err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}
	return cfg, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("invalid %s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("invalid %s: must satisfy %s", fe.Field(), fe.Tag())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// parser accumulates the first parse error so Load can build the struct in one expression.
type parser struct {
	err error
}

func (p *parser) duration(key, def string) time.Duration {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil {
		p.fail(fmt.Errorf("invalid %s: %w", key, err))
	}
	return d
}

func (p *parser) float(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		p.fail(fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (p *parser) int(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		p.fail(fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
