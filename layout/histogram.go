package layout

import (
	"math"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/stat"
)

type Bar struct {
	stat.Bin
	Rect charts.Rect
}

type HistogramBars struct {
	Histogram stat.Histogram
	X         charts.LinearScale
	Y         charts.LinearScale
	Bars      []Bar
	XTicks    []float64
	YTicks    []float64
}

// Histogram bins values with the method of opts and gives one bar per bin.
// Bar heights are the counts of the bins.
func Histogram(values []float64, dim charts.Dimension, opts Options) HistogramBars {
	var (
		hist = stat.MakeHistogram(values, opts.BinMethod, opts.Bins)
		res  = HistogramBars{
			Histogram: hist,
		}
		width  = dim.Clamp().DrawingWidth()
		height = dim.Clamp().DrawingHeight()
	)
	xdom := charts.NumberDomain(hist.Min, hist.Max)
	if n := len(hist.Bins); n > 0 {
		xdom = charts.NumberDomain(hist.Bins[0].Start, hist.Bins[n-1].End)
	}
	ydom := charts.NumberDomain(0, float64(hist.MaxCount())).Nice(opts.ticks())
	if opts.Domain != nil {
		ydom = *opts.Domain
	}
	res.X = charts.NewLinear(xdom.Widen(), charts.NewRange(0, width))
	res.Y = charts.NewLinear(ydom.Widen(), charts.NewRange(height, 0))
	res.XTicks = res.X.Ticks(opts.ticks())
	res.YTicks = res.Y.Ticks(opts.ticks())

	for _, b := range hist.Bins {
		var (
			x0 = res.X.Scale(b.Start)
			x1 = res.X.Scale(b.End)
			y0 = res.Y.Scale(0)
			y1 = res.Y.Scale(float64(b.Count))
		)
		res.Bars = append(res.Bars, Bar{
			Bin:  b,
			Rect: charts.NewRect(x0, math.Min(y0, y1), x1-x0, math.Abs(y1-y0)).Sanitize(),
		})
	}
	return res
}

type DensityCurve struct {
	Samples []stat.Sample
	X       charts.LinearScale
	Y       charts.LinearScale
	Path    []XY
}

// Density estimates the density of values over their extent and maps the
// samples to pixels. An override domain of opts replaces the extent.
func Density(values []float64, dim charts.Dimension, opts Options) DensityCurve {
	var (
		res    DensityCurve
		xdom   = charts.Extent(values)
		width  = dim.Clamp().DrawingWidth()
		height = dim.Clamp().DrawingHeight()
	)
	if opts.Domain != nil {
		xdom = *opts.Domain
	}
	res.Samples = stat.KDE(values, xdom.Min, xdom.Max, opts.KDE)
	if n := len(res.Samples); n > 0 {
		xdom = charts.NumberDomain(res.Samples[0].X, res.Samples[n-1].X)
	}
	ydom := charts.NumberDomain(0, stat.MaxDensity(res.Samples))
	res.X = charts.NewLinear(xdom.Widen(), charts.NewRange(0, width))
	res.Y = charts.NewLinear(ydom.Widen(), charts.NewRange(height, 0))
	res.Path = DensityPath(res.Samples, res.X, res.Y)
	return res
}

// DensityPath maps density samples through a pair of scales.
func DensityPath(samples []stat.Sample, x, y charts.LinearScale) []XY {
	list := make([]XY, 0, len(samples))
	for _, s := range samples {
		list = append(list, charts.NumberPoint(finite(x.Scale(s.X)), finite(y.Scale(s.Y))))
	}
	return list
}
