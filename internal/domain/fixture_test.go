package domain

import (
	"fmt"
	"time"
)

func ptr[T any](v T) *T { return &v }

// hourlyFixture builds n hourly rows starting at start. Temperature is
// 38.4 + i, so row 14 reads 52.4.
func hourlyFixture(start time.Time, n int) *HourlyTable {
	h := &HourlyTable{}
	for i := range n {
		ts := start.Add(time.Duration(i) * time.Hour)
		h.Time = append(h.Time, ts.Format(hourLayout))
		h.Temperature = append(h.Temperature, ptr(38.4+float64(i)))
		h.ApparentTemperature = append(h.ApparentTemperature, ptr(35.6+float64(i)))
		h.PrecipitationProbability = append(h.PrecipitationProbability, ptr(float64(i*4%101)))
		h.RelativeHumidity = append(h.RelativeHumidity, ptr(float64(60+i%30)))
		h.WindSpeed = append(h.WindSpeed, ptr(5.0+float64(i%7)+0.4))
		h.WindDirection = append(h.WindDirection, ptr(float64(i*45%360)))
		h.WeatherCode = append(h.WeatherCode, ptr(61))
	}
	return h
}

// dailyFixture builds n daily rows starting at start.
func dailyFixture(start time.Time, n int) *DailyTable {
	d := &DailyTable{}
	codes := []int{0, 3, 61, 71, 95, 45, 2, 1}
	for i := range n {
		d.Time = append(d.Time, start.AddDate(0, 0, i).Format(dateLayout))
		d.WeatherCode = append(d.WeatherCode, ptr(codes[i%len(codes)]))
		d.TemperatureMax = append(d.TemperatureMax, ptr(45.5+float64(i)))
		d.TemperatureMin = append(d.TemperatureMin, ptr(30.4+float64(i)))
	}
	return d
}

// forecastFixture is 2024-01-01T00:00 through 2024-01-02T00:00 hourly and
// eight days from 2024-01-01, in UTC.
func forecastFixture() RawForecast {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return RawForecast{
		Timezone: "GMT",
		Hourly:   hourlyFixture(start, 25),
		Daily:    dailyFixture(start, 8),
	}
}

func hourStamps(day string, from, to int) []string {
	var out []string
	for h := from; h <= to; h++ {
		out = append(out, fmt.Sprintf("%sT%02d:00", day, h))
	}
	return out
}
