package domain

import "math"

var (
	compassLabels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	// Arrows point the way the wind comes from (meteorological convention).
	compassArrows = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}
)

// EncodeWind buckets a bearing in degrees into one of 8 compass points and
// returns its arrow glyph and label. Any finite input is accepted.
// Results repeat every 360° except where adding 360 rounds a value that sits
// one float step below a bucket boundary onto the boundary itself.
func EncodeWind(degrees float64) (arrow, label string) {
	idx := int(math.RoundToEven(degrees/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassArrows[idx], compassLabels[idx]
}
