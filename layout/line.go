package layout

import (
	"math"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/decimate"
	"github.com/midbel/slices"
)

type Line struct {
	X      charts.LinearScale
	Y      charts.LinearScale
	XTicks []float64
	YTicks []float64
	Points []XY
	Path   []XY
}

// LineChart computes the scales of a line series from its extent, reduces
// it to opts.Threshold points and maps it to pixels. Points must be sorted
// by X.
func LineChart(points []XY, dim charts.Dimension, opts Options) Line {
	var (
		res    Line
		xs     = make([]float64, 0, len(points))
		ys     = make([]float64, 0, len(points))
		width  = dim.Clamp().DrawingWidth()
		height = dim.Clamp().DrawingHeight()
	)
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	xdom := charts.Extent(xs).Widen()
	ydom := charts.Extent(ys).Nice(opts.ticks())
	if opts.Domain != nil {
		ydom = *opts.Domain
	}
	res.X = charts.NewLinear(xdom, charts.NewRange(0, width))
	res.Y = charts.NewLinear(ydom.Widen(), charts.NewRange(height, 0))
	res.XTicks = res.X.Ticks(opts.ticks())
	res.YTicks = res.Y.Ticks(opts.ticks())
	res.Points = Decimate(points, opts.Threshold, opts.Decimation)
	res.Path = LinePath(res.Points, res.X, res.Y)
	return res
}

// Decimate reduces points to at most threshold points. A threshold of 0
// keeps every point.
func Decimate(points []XY, threshold int, mode decimate.Mode) []XY {
	var (
		data = make([]decimate.Point, 0, len(points))
		list []XY
	)
	for _, p := range points {
		data = append(data, decimate.Point{X: p.X, Y: p.Y})
	}
	for _, p := range decimate.Downsample(data, threshold, mode) {
		list = append(list, charts.NumberPoint(p.X, p.Y))
	}
	return list
}

// LinePath maps points to pixels. Points with a non finite coordinate are
// dropped.
func LinePath(points []XY, x, y charts.LinearScale) []XY {
	list := make([]XY, 0, len(points))
	if len(points) == 0 {
		return list
	}
	add := func(p XY) {
		q := charts.Project[float64, float64](p, x, y)
		if math.IsNaN(q.X+q.Y) || math.IsInf(q.X+q.Y, 0) {
			return
		}
		list = append(list, q)
	}
	add(slices.Fst(points))
	for _, p := range slices.Rest(points) {
		add(p)
	}
	return list
}
