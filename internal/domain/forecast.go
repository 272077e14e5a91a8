package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// ErrMalformedForecast is returned when a provider response is missing a table
// or its parallel arrays are not aligned.
var ErrMalformedForecast = errors.New("malformed forecast")

// RawForecast is the Open-Meteo forecast response. Only the fields the panel
// needs are decoded; nullable provider values are pointers.
type RawForecast struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	Timezone         string       `json:"timezone"`
	UTCOffsetSeconds int          `json:"utc_offset_seconds"`
	Hourly           *HourlyTable `json:"hourly"`
	Daily            *DailyTable  `json:"daily"`
}

// HourlyTable holds index-aligned hourly series keyed by "YYYY-MM-DDTHH:MM" timestamps.
type HourlyTable struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	ApparentTemperature      []*float64 `json:"apparent_temperature"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
	WindDirection            []*float64 `json:"wind_direction_10m"`
	WeatherCode              []*int     `json:"weather_code"`
}

// DailyTable holds index-aligned daily series keyed by "YYYY-MM-DD" dates.
type DailyTable struct {
	Time           []string   `json:"time"`
	WeatherCode    []*int     `json:"weather_code"`
	TemperatureMax []*float64 `json:"temperature_2m_max"`
	TemperatureMin []*float64 `json:"temperature_2m_min"`
}

// Location returns the fixed-offset zone the forecast timestamps are expressed in.
func (f RawForecast) Location() *time.Location {
	name := f.Timezone
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, f.UTCOffsetSeconds)
}

// Validate checks that both tables are present, non-empty and index-aligned.
func (f RawForecast) Validate() error {
	if f.Hourly == nil {
		return fmt.Errorf("%w: missing hourly table", ErrMalformedForecast)
	}
	if f.Daily == nil {
		return fmt.Errorf("%w: missing daily table", ErrMalformedForecast)
	}

	h := f.Hourly
	if len(h.Time) == 0 {
		return fmt.Errorf("%w: empty hourly time series", ErrMalformedForecast)
	}
	hourly := map[string]int{
		"temperature_2m":            len(h.Temperature),
		"apparent_temperature":      len(h.ApparentTemperature),
		"precipitation_probability": len(h.PrecipitationProbability),
		"relative_humidity_2m":      len(h.RelativeHumidity),
		"wind_speed_10m":            len(h.WindSpeed),
		"wind_direction_10m":        len(h.WindDirection),
		"weather_code":              len(h.WeatherCode),
	}
	if err := checkAligned("hourly", len(h.Time), hourly); err != nil {
		return err
	}

	d := f.Daily
	if len(d.Time) == 0 {
		return fmt.Errorf("%w: empty daily time series", ErrMalformedForecast)
	}
	daily := map[string]int{
		"weather_code":       len(d.WeatherCode),
		"temperature_2m_max": len(d.TemperatureMax),
		"temperature_2m_min": len(d.TemperatureMin),
	}
	return checkAligned("daily", len(d.Time), daily)
}

func checkAligned(table string, want int, lengths map[string]int) error {
	for _, field := range slices.Sorted(maps.Keys(lengths)) {
		if got := lengths[field]; got != want {
			return fmt.Errorf("%w: %s.%s has %d values, want %d", ErrMalformedForecast, table, field, got, want)
		}
	}
	return nil
}

// Units selects the provider units and the labels shown on the panel.
type Units struct {
	Temperature string // "fahrenheit" or "celsius"
	WindSpeed   string // provider unit label, shown verbatim ("mph", "kmh", ...)
}

// CurrentSnapshot describes conditions at the resolved current hour.
type CurrentSnapshot struct {
	Temp          int    `json:"temp"`
	FeelsLike     int    `json:"feels_like"`
	TempSymbol    string `json:"temp_symbol"`
	Precipitation int    `json:"precipitation"`
	Humidity      int    `json:"humidity"`
	WindSpeed     int    `json:"wind_speed"`
	WindUnit      string `json:"wind_unit"`
	WeatherCode   int    `json:"weather_code"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
}

// HourlySlot is one labelled column of the hourly header.
type HourlySlot struct {
	Time          string `json:"time"`
	Precipitation int    `json:"precipitation"`
	WindSpeed     int    `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	WindArrow     string `json:"wind_arrow"`
}

// ChartHourPoint is one hour of the 06:00–00:00 chart window.
type ChartHourPoint struct {
	Time          string `json:"time"` // raw provider timestamp
	Precipitation int    `json:"precipitation"`
	WindSpeed     int    `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	WindArrow     string `json:"wind_arrow"`
}

// DailySlot summarizes one forecast day.
type DailySlot struct {
	Day         string `json:"day"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	TempSymbol  string `json:"temp_symbol"`
}

// Display is everything a renderer needs for one panel.
type Display struct {
	Current    CurrentSnapshot  `json:"current"`
	Hourly     []HourlySlot     `json:"hourly"`
	ChartHours []ChartHourPoint `json:"chart_hours"`
	Daily      []DailySlot      `json:"daily"`
}

// Snapshot is a derived display plus its rendered markup, as cached and
// delivered by the service.
type Snapshot struct {
	Key         string    `json:"key"`
	Location    Location  `json:"location"`
	Display     Display   `json:"display"`
	Markup      string    `json:"markup"`
	GeneratedAt time.Time `json:"generated_at"`
}
