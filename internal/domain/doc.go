// Package domain turns an Open-Meteo forecast into the values drawn on a
// TRMNL e-ink weather panel.
//
// # Data Source
//
// Forecasts come from the Open-Meteo forecast API
// (https://open-meteo.com/en/docs) requested with timezone=auto, so every
// timestamp is local wall-clock time at the forecast point and the response
// carries the matching utc_offset_seconds. "Now" is always converted into
// that offset before it is compared with the series.
//
// Response shape:
//
//	{
//	  "utc_offset_seconds": -18000,
//	  "hourly": {"time": ["2024-01-01T00:00", ...], "temperature_2m": [31.2, ...], ...},
//	  "daily":  {"time": ["2024-01-01", ...], "temperature_2m_max": [38.1, ...], ...}
//	}
//
// Every array in a table is index-aligned with that table's "time" array.
// Any value except a timestamp may be null; nulls read as 0.
//
// # Timestamps
//
// Hourly keys are "YYYY-MM-DDTHH:MM", daily keys "YYYY-MM-DD". Both are
// zero-padded, so string order equals chronological order and the current
// hour can be located with plain string comparison (see [ResolveCurrentHour]).
//
// # Weather Codes
//
// WMO weather interpretation codes (0 clear sky … 99 thunderstorm with heavy
// hail) map to a description and one of ten icon categories. Codes outside
// the table classify as "Unknown" with the clear icon (see [Classify]).
//
// # Panel Layout
//
// The chart covers a fixed local window, 06:00 through 00:00 of the next
// day, one column per hour (19 columns). Every third column carries a label
// (6am, 9am, … 12am). The daily row shows up to seven days starting today.
//
// Wind bearings are bucketed into eight compass points (see [EncodeWind]);
// the arrow points the way the wind blows from.
package domain
