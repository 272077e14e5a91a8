package domain

import (
	"fmt"
	"time"
)

const (
	chartStartHour = 6
	chartHourCount = 19 // 06:00 through 00:00 of the following day
	maxDailySlots  = 7
)

// LabelIndices are the chart-hour positions that carry a header label and a
// wind value label: every third hour of the chart window.
var LabelIndices = [...]int{0, 3, 6, 9, 12, 15, 18}

var hourlyLabels = [...]string{"6am", "9am", "12pm", "3pm", "6pm", "9pm", "12am"}

// DeriveAt builds the display for now, evaluated in the forecast's UTC offset.
// It fails only when the raw forecast is structurally malformed; missing
// values, unknown codes and absent timestamps are absorbed.
func DeriveAt(raw RawForecast, units Units, now time.Time) (Display, error) {
	if err := raw.Validate(); err != nil {
		return Display{}, err
	}
	now = now.In(raw.Location())

	currentIdx := ResolveCurrentHour(raw.Hourly.Time, now)
	todayIdx := ResolveToday(raw.Daily.Time, now)

	chart, err := buildChartHours(raw.Hourly, raw.Daily.Time[todayIdx])
	if err != nil {
		return Display{}, err
	}
	daily, err := buildDaily(raw.Daily, todayIdx, units)
	if err != nil {
		return Display{}, err
	}

	return Display{
		Current:    buildCurrent(raw.Hourly, currentIdx, units),
		Hourly:     buildHourly(chart),
		ChartHours: chart,
		Daily:      daily,
	}, nil
}

func buildCurrent(h *HourlyTable, i int, units Units) CurrentSnapshot {
	code := valueOrZero(h.WeatherCode, i)
	description, icon := Classify(code)
	return CurrentSnapshot{
		Temp:          roundedAt(h.Temperature, i),
		FeelsLike:     roundedAt(h.ApparentTemperature, i),
		TempSymbol:    TemperatureSymbol(units.Temperature),
		Precipitation: roundedAt(h.PrecipitationProbability, i),
		Humidity:      roundedAt(h.RelativeHumidity, i),
		WindSpeed:     roundedAt(h.WindSpeed, i),
		WindUnit:      units.WindSpeed,
		WeatherCode:   code,
		Description:   description,
		Icon:          icon,
	}
}

// buildChartHours looks up each hour of the chart window anchored on day.
// Hours the provider did not return are skipped, so the result may be
// shorter than chartHourCount.
func buildChartHours(h *HourlyTable, day string) ([]ChartHourPoint, error) {
	anchor, err := time.Parse(dateLayout, day)
	if err != nil {
		return nil, fmt.Errorf("%w: daily date %q: %v", ErrMalformedForecast, day, err)
	}

	index := make(map[string]int, len(h.Time))
	for i, ts := range h.Time {
		if _, dup := index[ts]; !dup {
			index[ts] = i
		}
	}

	points := make([]ChartHourPoint, 0, chartHourCount)
	for _, target := range chartWindow(anchor) {
		i, ok := index[target]
		if !ok {
			continue
		}
		arrow, direction := EncodeWind(valueOrZero(h.WindDirection, i))
		points = append(points, ChartHourPoint{
			Time:          target,
			Precipitation: roundedAt(h.PrecipitationProbability, i),
			WindSpeed:     roundedAt(h.WindSpeed, i),
			WindDirection: direction,
			WindArrow:     arrow,
		})
	}
	return points, nil
}

// chartWindow returns the target timestamps 06:00..23:00 of anchor's date and
// 00:00 of the next day.
func chartWindow(anchor time.Time) []string {
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), chartStartHour, 0, 0, 0, time.UTC)
	window := make([]string, chartHourCount)
	for i := range window {
		window[i] = start.Add(time.Duration(i) * time.Hour).Format(hourLayout)
	}
	return window
}

func buildHourly(chart []ChartHourPoint) []HourlySlot {
	slots := make([]HourlySlot, 0, len(LabelIndices))
	for pos, idx := range LabelIndices {
		if idx >= len(chart) {
			break
		}
		p := chart[idx]
		slots = append(slots, HourlySlot{
			Time:          hourlyLabels[pos],
			Precipitation: p.Precipitation,
			WindSpeed:     p.WindSpeed,
			WindDirection: p.WindDirection,
			WindArrow:     p.WindArrow,
		})
	}
	return slots
}

func buildDaily(d *DailyTable, todayIdx int, units Units) ([]DailySlot, error) {
	symbol := TemperatureSymbol(units.Temperature)
	end := min(todayIdx+maxDailySlots, len(d.Time))

	slots := make([]DailySlot, 0, end-todayIdx)
	for i := todayIdx; i < end; i++ {
		label := "Today"
		if i != todayIdx {
			date, err := time.Parse(dateLayout, d.Time[i])
			if err != nil {
				return nil, fmt.Errorf("%w: daily date %q: %v", ErrMalformedForecast, d.Time[i], err)
			}
			label = date.Format("Mon")
		}

		description, icon := Classify(valueOrZero(d.WeatherCode, i))
		slots = append(slots, DailySlot{
			Day:         label,
			High:        roundedAt(d.TemperatureMax, i),
			Low:         roundedAt(d.TemperatureMin, i),
			Icon:        icon,
			Description: description,
			TempSymbol:  symbol,
		})
	}
	return slots, nil
}
