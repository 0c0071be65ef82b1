package stat

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

const DefaultSamples = 100

// Sample is the estimated density Y at X.
type Sample struct {
	X float64
	Y float64
}

type KDEOptions struct {
	// Bandwidth of the gaussian kernel. Silverman's rule is used when it is
	// not positive.
	Bandwidth float64
	// Samples is the number of intervals the domain is split into. The
	// density is evaluated at Samples+1 points.
	Samples int
}

// Silverman returns 1.06 * stddev * n^(-1/5). It falls back to a tenth of
// the span of the values (or 1) when the standard deviation is zero or not
// defined.
func Silverman(xs []float64) float64 {
	sd := StdDev(xs)
	if sd > 0 && !math.IsNaN(sd) {
		return 1.06 * sd * math.Pow(float64(len(xs)), -0.2)
	}
	var (
		lo = math.Inf(1)
		hi = math.Inf(-1)
	)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if span := hi - lo; span > 0 {
		return span / 10
	}
	return 1
}

// KDE estimates the density of values at evenly spaced points of
// [lo, hi] with a gaussian kernel. Its cost is O(samples * len(values)):
// compute it once per data change, not per frame.
func KDE(values []float64, lo, hi float64, opts KDEOptions) []Sample {
	xs := finite(values)
	if len(xs) == 0 {
		return nil
	}
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	h := opts.Bandwidth
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		h = Silverman(xs)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-3*h, hi+3*h
	}
	var (
		grid = vec.Linspace(lo, hi, opts.Samples+1)
		norm = 1 / (float64(len(xs)) * h * math.Sqrt(2*math.Pi))
		list = make([]Sample, len(grid))
	)
	for i, x := range grid {
		var sum float64
		for _, v := range xs {
			u := (x - v) / h
			sum += math.Exp(-0.5 * u * u)
		}
		list[i] = Sample{
			X: x,
			Y: sum * norm,
		}
	}
	return list
}

// MaxDensity returns the largest Y of samples.
func MaxDensity(samples []Sample) float64 {
	var y float64
	for _, s := range samples {
		y = math.Max(y, s.Y)
	}
	return y
}
