package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeocoder(baseURL string) *Geocoder {
	g := NewGeocoder(baseURL, 5*time.Second, 1000, testLogger(), testMetrics())
	g.backoff = fastBackoff
	return g
}

func TestGeocoder_ForwardGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Holland", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		writeJSON(t, w, `{"results":[{"id":4996248,"name":"Holland","latitude":42.78752,"longitude":-86.10893,
			"country":"United States","timezone":"America/Detroit","admin1":"Michigan"}],"generationtime_ms":0.6}`)
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL)
	result, err := g.ForwardGeocode(context.Background(), "Holland")
	require.NoError(t, err)

	assert.Equal(t, "Holland", result.Name)
	assert.InDelta(t, 42.78752, result.Lat, 1e-9)
	assert.InDelta(t, -86.10893, result.Lon, 1e-9)
	assert.Equal(t, "United States", result.Country)
	assert.Equal(t, "America/Detroit", result.Timezone)
	assert.InDelta(t, 1, testutil.ToFloat64(g.metrics.GeocodeRequests.WithLabelValues("success")), 0)
}

func TestGeocoder_ForwardGeocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, `{"generationtime_ms":0.3}`)
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL)
	result, err := g.ForwardGeocode(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.InDelta(t, 1, testutil.ToFloat64(g.metrics.GeocodeRequests.WithLabelValues("empty")), 0)
}

func TestGeocoder_ForwardGeocode_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":true}`))
	}))
	defer srv.Close()

	g := testGeocoder(srv.URL)
	_, err := g.ForwardGeocode(context.Background(), "Holland")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.InDelta(t, 1, testutil.ToFloat64(g.metrics.GeocodeRequests.WithLabelValues("error")), 0)
}
