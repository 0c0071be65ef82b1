package stat

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

var ErrMethod = errors.New("unknown binning method")

// MaxBins bounds the number of bins of a histogram, whatever the rule or
// the count requested.
const MaxBins = 1000

// BinMethod selects how the number of bins is derived from the sample.
type BinMethod int

const (
	Sturges BinMethod = iota
	Sqrt
	FreedmanDiaconis
)

func ParseBinMethod(str string) (BinMethod, error) {
	switch strings.ToLower(str) {
	case "sturges", "":
		return Sturges, nil
	case "sqrt":
		return Sqrt, nil
	case "fd", "freedman-diaconis":
		return FreedmanDiaconis, nil
	default:
		return Sturges, fmt.Errorf("%s: %w", str, ErrMethod)
	}
}

func (m BinMethod) String() string {
	switch m {
	case Sturges:
		return "sturges"
	case Sqrt:
		return "sqrt"
	case FreedmanDiaconis:
		return "fd"
	default:
		return "unknown"
	}
}

// Bin counts the values of [Start, End). The last bin of a histogram also
// includes its End.
type Bin struct {
	Start   float64
	End     float64
	Count   int
	Density float64
}

func (b Bin) Width() float64 {
	return b.End - b.Start
}

type Histogram struct {
	Bins []Bin
	Min  float64
	Max  float64
}

// Total returns the number of values counted by the histogram.
func (h Histogram) Total() int {
	var n int
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// MaxCount returns the count of the fullest bin.
func (h Histogram) MaxCount() int {
	var n int
	for _, b := range h.Bins {
		n = max(n, b.Count)
	}
	return n
}

// MakeHistogram bins values. An explicit positive count wins over method.
// Non finite values are ignored.
func MakeHistogram(values []float64, method BinMethod, count int) Histogram {
	xs := finite(values)
	if len(xs) == 0 {
		return Histogram{}
	}
	var (
		lo, hi = stats.Bounds(xs)
		k      = count
		n      = len(xs)
	)
	if k <= 0 {
		k = binCount(xs, lo, hi, method)
	}
	k = min(MaxBins, max(1, k))

	width := (hi - lo) / float64(k)
	if hi == lo {
		k, width = 1, 1
	}
	bins := make([]Bin, k)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	if hi > lo {
		bins[k-1].End = hi
	}
	for _, v := range xs {
		x := int(math.Floor((v - lo) / width))
		x = min(k-1, max(0, x))
		bins[x].Count++
	}
	for i := range bins {
		bins[i].Density = float64(bins[i].Count) / float64(n) / width
	}
	return Histogram{
		Bins: bins,
		Min:  lo,
		Max:  hi,
	}
}

func binCount(xs []float64, lo, hi float64, method BinMethod) int {
	n := float64(len(xs))
	switch method {
	case Sqrt:
		return toCount(math.Ceil(math.Sqrt(n)))
	case FreedmanDiaconis:
		h := 2 * IQR(Sorted(xs)) * math.Pow(n, -1.0/3)
		if h <= 0 || math.IsNaN(h) {
			return binCount(xs, lo, hi, Sqrt)
		}
		return toCount(math.Ceil((hi - lo) / h))
	default:
		return toCount(math.Ceil(math.Log2(n) + 1))
	}
}

// toCount converts a bin count computed as a float, saturating at MaxBins
// before the conversion so that huge or infinite ratios never overflow.
func toCount(f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	if f >= MaxBins {
		return MaxBins
	}
	return int(f)
}
