package domain

// Icon categories used by the renderer.
const (
	IconClear        = "clear"
	IconMostlyClear  = "mostly_clear"
	IconPartlyCloudy = "partly_cloudy"
	IconOvercast     = "overcast"
	IconFog          = "fog"
	IconDrizzle      = "drizzle"
	IconRain         = "rain"
	IconSnow         = "snow"
	IconShowers      = "showers"
	IconThunderstorm = "thunderstorm"
)

type weatherCode struct {
	description string
	icon        string
}

// weatherCodes maps WMO weather interpretation codes as served by Open-Meteo.
var weatherCodes = map[int]weatherCode{
	0:  {"Clear", IconClear},
	1:  {"Mostly Clear", IconMostlyClear},
	2:  {"Partly Cloudy", IconPartlyCloudy},
	3:  {"Overcast", IconOvercast},
	45: {"Fog", IconFog},
	48: {"Freezing Fog", IconFog},
	51: {"Light Drizzle", IconDrizzle},
	53: {"Drizzle", IconDrizzle},
	55: {"Heavy Drizzle", IconDrizzle},
	56: {"Freezing Drizzle", IconDrizzle},
	57: {"Heavy Freezing Drizzle", IconDrizzle},
	61: {"Light Rain", IconRain},
	63: {"Rain", IconRain},
	65: {"Heavy Rain", IconRain},
	66: {"Freezing Rain", IconRain},
	67: {"Heavy Freezing Rain", IconRain},
	71: {"Light Snow", IconSnow},
	73: {"Snow", IconSnow},
	75: {"Heavy Snow", IconSnow},
	77: {"Snow Grains", IconSnow},
	80: {"Light Showers", IconShowers},
	81: {"Showers", IconShowers},
	82: {"Heavy Showers", IconShowers},
	85: {"Light Snow Showers", IconSnow},
	86: {"Heavy Snow Showers", IconSnow},
	95: {"Thunderstorm", IconThunderstorm},
	96: {"Thunderstorm w/ Hail", IconThunderstorm},
	99: {"Thunderstorm w/ Heavy Hail", IconThunderstorm},
}

// Classify returns the description and icon category for a weather code.
// Unknown codes map to ("Unknown", "clear").
func Classify(code int) (description, icon string) {
	wc, ok := weatherCodes[code]
	if !ok {
		return "Unknown", IconClear
	}
	return wc.description, wc.icon
}
