// Package stat computes the statistics behind histogram, density, box and
// violin charts. Every function works on plain slices and never modifies
// its input.
package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stats.Mean(xs)
}

// StdDev returns the sample standard deviation of xs (n-1 denominator). It
// is NaN for fewer than two values.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stats.StdDev(xs)
}

// Quantile returns the q-quantile of sorted by linear interpolation between
// the two closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	var (
		pos  = float64(len(sorted)-1) * q
		base = int(math.Floor(pos))
		rest = pos - float64(base)
	)
	if base < 0 {
		return sorted[0]
	}
	if base >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	if base+1 < len(sorted) {
		return sorted[base] + rest*(sorted[base+1]-sorted[base])
	}
	return sorted[base]
}

// Sorted returns a sorted copy of xs.
func Sorted(xs []float64) []float64 {
	list := make([]float64, len(xs))
	copy(list, xs)
	sort.Float64s(list)
	return list
}

// IQR returns the interquartile range of sorted.
func IQR(sorted []float64) float64 {
	return Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
}

// BoxSummary holds the markers drawn on box and violin charts.
type BoxSummary struct {
	Count        int
	Min          float64
	Q1           float64
	Median       float64
	Q3           float64
	Max          float64
	Mean         float64
	StdDev       float64
	LowerWhisker float64
	UpperWhisker float64
}

// Summary computes the box markers of xs. Whiskers extend to the most
// extreme values within 1.5 IQR of the quartiles.
func Summary(xs []float64) BoxSummary {
	sorted := Sorted(finite(xs))
	if len(sorted) == 0 {
		return BoxSummary{}
	}
	s := BoxSummary{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Mean:   Mean(sorted),
		StdDev: StdDev(sorted),
	}
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	var (
		fence = 1.5 * (s.Q3 - s.Q1)
		lo    = s.Q1 - fence
		hi    = s.Q3 + fence
	)
	s.LowerWhisker, s.UpperWhisker = s.Q1, s.Q3
	for _, v := range sorted {
		if v >= lo {
			s.LowerWhisker = v
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= hi {
			s.UpperWhisker = sorted[i]
			break
		}
	}
	return s
}

func finite(xs []float64) []float64 {
	list := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		list = append(list, x)
	}
	return list
}
