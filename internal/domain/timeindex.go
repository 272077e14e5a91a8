package domain

import (
	"slices"
	"time"
)

const (
	hourLayout = "2006-01-02T15:04"
	dateLayout = "2006-01-02"
)

// ResolveCurrentHour returns the index of now's hour in an ascending hourly
// timestamp series. When the hour is absent it falls back to the last
// timestamp before now, or 0 if now precedes the series or no timestamp
// reaches it. Zero-padded ISO-8601 strings compare lexicographically in
// chronological order.
func ResolveCurrentHour(timestamps []string, now time.Time) int {
	target := now.Format("2006-01-02T15") + ":00"
	if i := slices.Index(timestamps, target); i >= 0 {
		return i
	}
	for i, ts := range timestamps {
		if ts >= target {
			return max(0, i-1)
		}
	}
	return 0
}

// ResolveToday returns the index of now's date in a daily date series, or 0.
func ResolveToday(dates []string, now time.Time) int {
	if i := slices.Index(dates, now.Format(dateLayout)); i >= 0 {
		return i
	}
	return 0
}
