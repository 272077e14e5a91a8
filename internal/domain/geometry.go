package domain

const (
	// ChartWidth is the viewBox width shared by the bar chart and wind graph.
	ChartWidth = 700
	// WindGraphHeight is the wind graph's viewBox height.
	WindGraphHeight = 56
	// WindLabelBaseline is the y coordinate of the wind value labels.
	WindLabelBaseline = WindGraphHeight - 2
	// MaxBarHeight is the pixel height of a 100% precipitation bar.
	MaxBarHeight = 60

	graphTop     = 5
	graphBottom  = 38
	minBarHeight = 2
)

// Point is a vertex of the wind graph in viewBox units.
type Point struct {
	X int
	Y int
}

// WindLabel is a speed value printed under the wind graph.
type WindLabel struct {
	X     int
	Value int
}

// WindGeometry holds the polyline vertices and label placements of the wind graph.
type WindGeometry struct {
	Points []Point
	Labels []WindLabel
}

// WindChartGeometry spreads speeds evenly across ChartWidth, each point
// centered in its slot, and scales them between graphBottom (slowest) and
// graphTop (fastest). Equal speeds all sit on graphBottom.
func WindChartGeometry(speeds []int) WindGeometry {
	n := len(speeds)
	if n == 0 {
		return WindGeometry{}
	}

	lo, hi := speeds[0], speeds[0]
	for _, s := range speeds[1:] {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	g := WindGeometry{Points: make([]Point, n)}
	for i, s := range speeds {
		x := Round((float64(i) + 0.5) / float64(n) * ChartWidth)
		y := graphBottom - Round(float64(s-lo)/float64(span)*(graphBottom-graphTop))
		g.Points[i] = Point{X: x, Y: y}
	}
	for _, idx := range LabelIndices {
		if idx >= n {
			break
		}
		g.Labels = append(g.Labels, WindLabel{X: g.Points[idx].X, Value: speeds[idx]})
	}
	return g
}

// BarHeight maps a precipitation probability (0–100) to a bar height, never
// below minBarHeight so dry hours stay visible.
func BarHeight(probability int) int {
	return max(minBarHeight, Round(float64(probability)/100*MaxBarHeight))
}

// PrecipitationBars returns one bar height per chart hour.
func PrecipitationBars(chart []ChartHourPoint) []int {
	bars := make([]int, len(chart))
	for i, p := range chart {
		bars[i] = BarHeight(p.Precipitation)
	}
	return bars
}

// WindSpeeds extracts the wind series of the chart window.
func WindSpeeds(chart []ChartHourPoint) []int {
	speeds := make([]int, len(chart))
	for i, p := range chart {
		speeds[i] = p.WindSpeed
	}
	return speeds
}
