package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindChartGeometry_EqualSpeeds(t *testing.T) {
	g := WindChartGeometry([]int{5, 5, 5})

	assert.Equal(t, []Point{{X: 117, Y: 38}, {X: 350, Y: 38}, {X: 583, Y: 38}}, g.Points)
	assert.Equal(t, []WindLabel{{X: 117, Value: 5}}, g.Labels)
}

func TestWindChartGeometry_Scaling(t *testing.T) {
	g := WindChartGeometry([]int{0, 10})

	require.Len(t, g.Points, 2)
	assert.Equal(t, Point{X: 175, Y: 38}, g.Points[0], "slowest sits on the bottom")
	assert.Equal(t, Point{X: 525, Y: 5}, g.Points[1], "fastest touches the top")
}

func TestWindChartGeometry_FullWindow(t *testing.T) {
	speeds := make([]int, 19)
	for i := range speeds {
		speeds[i] = i % 5
	}

	g := WindChartGeometry(speeds)

	require.Len(t, g.Points, 19)
	assert.Equal(t, 18, g.Points[0].X)
	assert.Equal(t, 682, g.Points[18].X)
	for i := 1; i < len(g.Points); i++ {
		assert.Greater(t, g.Points[i].X, g.Points[i-1].X)
	}
	for _, p := range g.Points {
		assert.GreaterOrEqual(t, p.Y, graphTop)
		assert.LessOrEqual(t, p.Y, graphBottom)
	}

	require.Len(t, g.Labels, 7)
	for i, idx := range LabelIndices {
		assert.Equal(t, g.Points[idx].X, g.Labels[i].X)
		assert.Equal(t, speeds[idx], g.Labels[i].Value)
	}
}

func TestWindChartGeometry_ShortSeriesLabels(t *testing.T) {
	g := WindChartGeometry([]int{1, 2, 3, 4, 5, 6, 7})

	assert.Len(t, g.Labels, 3) // indices 0, 3, 6
}

func TestWindChartGeometry_Empty(t *testing.T) {
	g := WindChartGeometry(nil)

	assert.Empty(t, g.Points)
	assert.Empty(t, g.Labels)
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		probability int
		expected    int
	}{
		{0, 2},
		{1, 2},
		{4, 2},
		{5, 3},
		{50, 30},
		{99, 59},
		{100, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, BarHeight(tt.probability), "probability %d", tt.probability)
	}

	for p := 0; p <= 100; p++ {
		assert.GreaterOrEqual(t, BarHeight(p), 2)
	}
}

func TestPrecipitationBarsAndWindSpeeds(t *testing.T) {
	display, err := DeriveAt(forecastFixture(), imperial, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	bars := PrecipitationBars(display.ChartHours)
	speeds := WindSpeeds(display.ChartHours)

	require.Len(t, bars, len(display.ChartHours))
	require.Len(t, speeds, len(display.ChartHours))
	assert.Equal(t, BarHeight(display.ChartHours[3].Precipitation), bars[3])
	assert.Equal(t, display.ChartHours[3].WindSpeed, speeds[3])
}
