package charts

import (
	"math"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// Interval is a numeric domain.
type Interval struct {
	Min float64
	Max float64
}

func NumberDomain(f, t float64) Interval {
	return Interval{
		Min: f,
		Max: t,
	}
}

// Extent returns the bounds of values. Non finite values are ignored and an
// empty input gives the zero interval.
func Extent(values []float64) Interval {
	xs := Finite(values)
	if len(xs) == 0 {
		return Interval{}
	}
	lo, hi := stats.Bounds(xs)
	return NumberDomain(lo, hi)
}

// Finite returns the values of xs that are neither NaN nor infinite.
func Finite(xs []float64) []float64 {
	list := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		list = append(list, x)
	}
	return list
}

func (i Interval) Extend() float64 {
	return i.Max - i.Min
}

func (i Interval) Degenerate() bool {
	return i.Min == i.Max
}

func (i Interval) Contains(v float64) bool {
	return v >= math.Min(i.Min, i.Max) && v <= math.Max(i.Min, i.Max)
}

// Widen turns a degenerate interval into a usable one: the value is widened
// by a small amount proportional to its magnitude, or by one when it is 0.
func (i Interval) Widen() Interval {
	if !i.Degenerate() {
		return i
	}
	delta := math.Abs(i.Min) * 1e-6
	if delta == 0 {
		delta = 1
	}
	return NumberDomain(i.Min-delta, i.Max+delta)
}

// Include extends the interval so that v is part of it.
func (i Interval) Include(v float64) Interval {
	x := i
	if v < x.Min {
		x.Min = v
	}
	if v > x.Max {
		x.Max = v
	}
	return x
}

func (i Interval) Merge(other Interval) Interval {
	x := i
	if other.Min < x.Min {
		x.Min = other.Min
	}
	if other.Max > x.Max {
		x.Max = other.Max
	}
	return x
}

// Nice extends the interval outward to multiples of the nice step used for
// count ticks.
func (i Interval) Nice(count int) Interval {
	if i.Degenerate() {
		return i
	}
	step := NiceStep(i.Min, i.Max, count)
	if step == 0 || math.IsNaN(step) {
		return i
	}
	return NumberDomain(round12(math.Floor(i.Min/step)*step), round12(math.Ceil(i.Max/step)*step))
}

func (i Interval) Values(c int) []float64 {
	return NiceTicks(i.Min, i.Max, c)
}

type TimeInterval struct {
	Min time.Time
	Max time.Time
}

func TimeDomain(f, t time.Time) TimeInterval {
	return TimeInterval{
		Min: f,
		Max: t,
	}
}

func (t TimeInterval) Merge(other TimeInterval) TimeInterval {
	n := t
	if t.Min.After(other.Min) {
		n.Min = other.Min
	}
	if t.Max.Before(other.Max) {
		n.Max = other.Max
	}
	return n
}

func (t TimeInterval) Diff(v time.Time) float64 {
	diff := v.Sub(t.Min)
	return float64(diff)
}

func (t TimeInterval) Extend() float64 {
	diff := t.Max.Sub(t.Min)
	return float64(diff)
}
