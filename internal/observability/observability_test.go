package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("refresh complete", "location", "42.7728,-86.2118")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "refresh complete", entry["msg"])
	assert.Equal(t, "42.7728,-86.2118", entry["location"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "text")

	logger.Debug("fetching forecast")
	assert.Contains(t, buf.String(), "msg=\"fetching forecast\"")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.CyclesTotal.WithLabelValues("success").Inc()
	a.Deliveries.WithLabelValues("trmnl", "error").Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(a.CyclesTotal.WithLabelValues("success")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.CyclesTotal.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(a.Deliveries.WithLabelValues("trmnl", "error")), 0)
}
