package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var imperial = Units{Temperature: UnitFahrenheit, WindSpeed: "mph"}

func TestDeriveAt_CurrentSnapshot(t *testing.T) {
	raw := forecastFixture()
	now := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)

	display, err := DeriveAt(raw, imperial, now)
	require.NoError(t, err)

	want := CurrentSnapshot{
		Temp:          52, // 52.4 at index 14
		FeelsLike:     50, // 49.6
		TempSymbol:    "°F",
		Precipitation: 56,
		Humidity:      74,
		WindSpeed:     5, // 5.4
		WindUnit:      "mph",
		WeatherCode:   61,
		Description:   "Light Rain",
		Icon:          IconRain,
	}
	if diff := cmp.Diff(want, display.Current); diff != "" {
		t.Fatalf("current mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveAt_NullsDefaultToZero(t *testing.T) {
	raw := forecastFixture()
	raw.Hourly.PrecipitationProbability[14] = nil
	raw.Hourly.RelativeHumidity[14] = nil
	raw.Hourly.WindSpeed[14] = nil
	raw.Hourly.WeatherCode[14] = nil
	raw.Hourly.Temperature[14] = nil

	display, err := DeriveAt(raw, Units{Temperature: UnitCelsius, WindSpeed: "kmh"}, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	c := display.Current
	assert.Zero(t, c.Temp)
	assert.Zero(t, c.Precipitation)
	assert.Zero(t, c.Humidity)
	assert.Zero(t, c.WindSpeed)
	assert.Zero(t, c.WeatherCode)
	assert.Equal(t, "Clear", c.Description)
	assert.Equal(t, "°C", c.TempSymbol)
	assert.Equal(t, "kmh", c.WindUnit)
}

func TestDeriveAt_ChartHours(t *testing.T) {
	raw := forecastFixture()

	display, err := DeriveAt(raw, imperial, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, display.ChartHours, 19)
	assert.Equal(t, "2024-01-01T06:00", display.ChartHours[0].Time)
	assert.Equal(t, "2024-01-01T23:00", display.ChartHours[17].Time)
	assert.Equal(t, "2024-01-02T00:00", display.ChartHours[18].Time)

	// Row 6: precipitation 24, wind 5.4+6 = 11.4, bearing 270.
	first := display.ChartHours[0]
	assert.Equal(t, 24, first.Precipitation)
	assert.Equal(t, 11, first.WindSpeed)
	assert.Equal(t, "W", first.WindDirection)
	assert.Equal(t, "←", first.WindArrow)

	for _, p := range display.ChartHours {
		assert.GreaterOrEqual(t, p.Time, "2024-01-01T06:00")
		assert.LessOrEqual(t, p.Time, "2024-01-02T00:00")
	}
}

func TestDeriveAt_ChartHoursSkipMissingTimestamps(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := RawForecast{
		Hourly: hourlyFixture(start, 13), // 00:00 through 12:00 only
		Daily:  dailyFixture(start, 8),
	}

	display, err := DeriveAt(raw, imperial, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, display.ChartHours, 7)
	assert.Equal(t, hourStamps("2024-01-01", 6, 12), chartTimes(display.ChartHours))

	require.Len(t, display.Hourly, 3)
	assert.Equal(t, "6am", display.Hourly[0].Time)
	assert.Equal(t, "9am", display.Hourly[1].Time)
	assert.Equal(t, "12pm", display.Hourly[2].Time)
}

func TestDeriveAt_HourlySlots(t *testing.T) {
	display, err := DeriveAt(forecastFixture(), imperial, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, display.Hourly, 7)
	labels := make([]string, len(display.Hourly))
	for i, h := range display.Hourly {
		labels[i] = h.Time
	}
	assert.Equal(t, []string{"6am", "9am", "12pm", "3pm", "6pm", "9pm", "12am"}, labels)

	for pos, idx := range LabelIndices {
		p := display.ChartHours[idx]
		h := display.Hourly[pos]
		assert.Equal(t, p.Precipitation, h.Precipitation)
		assert.Equal(t, p.WindSpeed, h.WindSpeed)
		assert.Equal(t, p.WindArrow, h.WindArrow)
		assert.Equal(t, p.WindDirection, h.WindDirection)
	}
}

func TestDeriveAt_Daily(t *testing.T) {
	display, err := DeriveAt(forecastFixture(), imperial, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, display.Daily, 7)
	assert.Equal(t, "Today", display.Daily[0].Day)
	assert.Equal(t, "Tue", display.Daily[1].Day) // 2024-01-02
	assert.Equal(t, "Sun", display.Daily[6].Day) // 2024-01-07

	today := display.Daily[0]
	assert.Equal(t, 46, today.High) // 45.5 rounds half to even
	assert.Equal(t, 30, today.Low)
	assert.Equal(t, IconClear, today.Icon)
	assert.Equal(t, "Clear", today.Description)
	assert.Equal(t, "°F", today.TempSymbol)

	assert.Equal(t, IconRain, display.Daily[2].Icon)
}

func TestDeriveAt_DailyStartsAtToday(t *testing.T) {
	display, err := DeriveAt(forecastFixture(), imperial, time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, display.Daily, 5, "table is exhausted after 2024-01-08")
	assert.Equal(t, "Today", display.Daily[0].Day)
	assert.Equal(t, "Fri", display.Daily[1].Day)
	assert.Equal(t, 48, display.Daily[0].High) // 48.5 rounds half to even
}

func TestDeriveAt_UsesForecastOffset(t *testing.T) {
	raw := forecastFixture()
	raw.Timezone = "EST"
	raw.UTCOffsetSeconds = -5 * 3600

	// 19:00 UTC is 14:00 local.
	display, err := DeriveAt(raw, imperial, time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 52, display.Current.Temp)

	// 02:00 UTC on the 2nd is still the 1st locally.
	display, err = DeriveAt(raw, imperial, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 59, display.Current.Temp) // index 21: 59.4
	assert.Equal(t, "Today", display.Daily[0].Day)
	assert.Equal(t, "Tue", display.Daily[1].Day)
}

func TestDeriveAt_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawForecast)
		msg    string
	}{
		{"missing hourly", func(f *RawForecast) { f.Hourly = nil }, "missing hourly"},
		{"missing daily", func(f *RawForecast) { f.Daily = nil }, "missing daily"},
		{"empty hourly", func(f *RawForecast) { f.Hourly = &HourlyTable{} }, "empty hourly"},
		{"empty daily", func(f *RawForecast) { f.Daily = &DailyTable{} }, "empty daily"},
		{"short hourly series", func(f *RawForecast) { f.Hourly.WindSpeed = f.Hourly.WindSpeed[:3] }, "hourly.wind_speed_10m"},
		{"short daily series", func(f *RawForecast) { f.Daily.TemperatureMin = nil }, "daily.temperature_2m_min"},
		{"bad daily date", func(f *RawForecast) { f.Daily.Time[0] = "01/01/2024" }, "daily date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := forecastFixture()
			tt.mutate(&raw)

			_, err := DeriveAt(raw, imperial, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC))
			require.ErrorIs(t, err, ErrMalformedForecast)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDeriveAt_Idempotent(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	a, err := DeriveAt(forecastFixture(), imperial, now)
	require.NoError(t, err)
	b, err := DeriveAt(forecastFixture(), imperial, now)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("derive is not deterministic (-first +second):\n%s", diff)
	}
}

func chartTimes(points []ChartHourPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Time
	}
	return out
}
