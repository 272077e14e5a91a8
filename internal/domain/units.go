package domain

import "math"

const (
	UnitFahrenheit = "fahrenheit"
	UnitCelsius    = "celsius"
)

// TemperatureSymbol returns "°F" for fahrenheit and "°C" for anything else.
func TemperatureSymbol(unit string) string {
	if unit == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// Round rounds half to even. Every displayed number goes through it so the
// panel is consistent with itself.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

// valueOrZero reads a nullable series value; nulls and out-of-range reads are 0.
func valueOrZero[T int | float64](values []*T, i int) T {
	if i < 0 || i >= len(values) || values[i] == nil {
		return 0
	}
	return *values[i]
}

// roundedAt is valueOrZero followed by Round.
func roundedAt(values []*float64, i int) int {
	return Round(valueOrZero(values, i))
}
