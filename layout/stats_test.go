package layout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/stat"
)

func normal(seed int64, n int, mean, sd float64) []float64 {
	var (
		rnd  = rand.New(rand.NewSource(seed))
		list = make([]float64, n)
	)
	for i := range list {
		list[i] = rnd.NormFloat64()*sd + mean
	}
	return list
}

func TestHistogram(t *testing.T) {
	var (
		values = normal(1, 200, 50, 10)
		opts   = layout.DefaultOptions()
	)
	opts.BinMethod = stat.Sqrt

	h := layout.Histogram(values, charts.NewDimension(300, 200), opts)
	require.Len(t, h.Bars, 15)
	assert.Equal(t, len(values), h.Histogram.Total())

	var width float64
	for _, b := range h.Bars {
		assert.True(t, b.Rect.Valid())
		assert.InDelta(t, 200.0, b.Rect.Y+b.Rect.Height, 1e-9, "bars stand on the x axis")
		width += b.Rect.Width
	}
	assert.InDelta(t, 300.0, width, 1e-9)
	assert.GreaterOrEqual(t, h.Y.Domain.Max, float64(h.Histogram.MaxCount()))
	assert.NotEmpty(t, h.XTicks)
	assert.NotEmpty(t, h.YTicks)
}

func TestHistogram_Empty(t *testing.T) {
	h := layout.Histogram(nil, charts.NewDimension(300, 200), layout.DefaultOptions())
	assert.Empty(t, h.Bars)
	assert.False(t, h.X.Domain.Degenerate())
	assert.False(t, h.Y.Domain.Degenerate())
}

func TestDensity(t *testing.T) {
	opts := layout.DefaultOptions()
	opts.KDE.Samples = 50

	d := layout.Density(normal(2, 100, 0, 1), charts.NewDimension(400, 100), opts)
	require.Len(t, d.Samples, 51)
	require.Len(t, d.Path, 51)
	assert.InDelta(t, 0.0, d.Path[0].X, 1e-9)
	assert.InDelta(t, 400.0, d.Path[50].X, 1e-9)
	for _, p := range d.Path {
		assert.GreaterOrEqual(t, p.Y, -1e-9)
		assert.LessOrEqual(t, p.Y, 100+1e-9)
	}

	d = layout.Density(nil, charts.NewDimension(400, 100), opts)
	assert.Empty(t, d.Path)
}

func TestViolin(t *testing.T) {
	groups := []layout.ViolinGroup{
		{Name: "a", Values: normal(3, 80, 10, 2)},
		{Name: "b", Values: normal(4, 80, 14, 1)},
		{Name: "empty"},
	}
	opts := layout.DefaultOptions()
	opts.KDE.Samples = 30

	v := layout.Violin(groups, charts.NewDimension(300, 200), opts)
	require.Len(t, v.Shapes, 3)

	half := v.X.Bandwidth() / 2
	var widest float64
	for i, s := range v.Shapes[:2] {
		require.Len(t, s.Outline, 2*31)
		assert.InDelta(t, v.X.Position(i)+half, s.Center, 1e-9)
		for _, p := range s.Outline {
			assert.LessOrEqual(t, math.Abs(p.X-s.Center), half+1e-9)
			widest = math.Max(widest, math.Abs(p.X-s.Center))
		}
		assert.Equal(t, 80, s.Summary.Count)
		assert.LessOrEqual(t, s.Markers.Q3, s.Markers.Median, "larger values are higher up")
		assert.LessOrEqual(t, s.Markers.Median, s.Markers.Q1)
		assert.NotEmpty(t, s.Color)
	}
	assert.InDelta(t, half, widest, 1e-9, "the densest violin fills half the band")

	empty := v.Shapes[2]
	assert.Empty(t, empty.Outline)
	assert.Equal(t, 0, empty.Summary.Count)
}

func TestLineChart(t *testing.T) {
	points := make([]layout.XY, 1000)
	for i := range points {
		points[i] = charts.NumberPoint(float64(i), math.Sin(float64(i)/40)*20)
	}
	opts := layout.DefaultOptions()
	opts.Threshold = 100

	line := layout.LineChart(points, charts.NewDimension(500, 200), opts)
	require.Len(t, line.Points, 100)
	require.Len(t, line.Path, 100)
	assert.Equal(t, points[0], line.Points[0])
	assert.Equal(t, points[999], line.Points[99])
	for _, p := range line.Path {
		assert.GreaterOrEqual(t, p.X, -1e-9)
		assert.LessOrEqual(t, p.X, 500+1e-9)
		assert.GreaterOrEqual(t, p.Y, -1e-9)
		assert.LessOrEqual(t, p.Y, 200+1e-9)
	}

	opts.Threshold = 0
	line = layout.LineChart(points, charts.NewDimension(500, 200), opts)
	assert.Len(t, line.Path, 1000)
}

func TestLinePath_DropsNonFinite(t *testing.T) {
	var (
		x      = charts.NewLinear(charts.NumberDomain(0, 10), charts.NewRange(0, 100))
		y      = charts.NewLinear(charts.NumberDomain(0, 10), charts.NewRange(100, 0))
		points = []layout.XY{
			charts.NumberPoint(0, 0),
			charts.NumberPoint(5, math.NaN()),
			charts.NumberPoint(10, 10),
		}
	)
	path := layout.LinePath(points, x, y)
	assert.Equal(t, []layout.XY{
		charts.NumberPoint(0, 100),
		charts.NumberPoint(100, 0),
	}, path)
	assert.Empty(t, layout.LinePath(nil, x, y))
}
