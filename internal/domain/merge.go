package domain

import "strconv"

// MergeVariables flattens a display into the short-key map TRMNL templates
// consume. Keys stay terse because webhook payloads are capped at 2 KB.
func MergeVariables(d Display) map[string]any {
	vars := map[string]any{
		"ct": d.Current.Temp,
		"cs": d.Current.TempSymbol,
		"cp": d.Current.Precipitation,
		"ch": d.Current.Humidity,
		"cw": d.Current.WindSpeed,
		"cu": d.Current.WindUnit,
		"ci": d.Current.Icon,
	}
	for i, h := range d.Hourly {
		n := strconv.Itoa(i)
		vars["ht"+n] = h.Time
		vars["hp"+n] = h.Precipitation
		vars["wa"+n] = h.WindArrow
		vars["ws"+n] = h.WindSpeed
	}
	for i, day := range d.Daily {
		n := strconv.Itoa(i)
		vars["dd"+n] = day.Day
		vars["dh"+n] = day.High
		vars["dl"+n] = day.Low
		vars["di"+n] = day.Icon
	}
	return vars
}
