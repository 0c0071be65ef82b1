package charts

import (
	"math"
)

var multipliers = []float64{1, 2, 5, 10}

// NiceTicks returns evenly spaced values between min and max whose step is
// one of 1, 2, 5 or 10 times a power of ten. A degenerate range gives a
// single tick.
func NiceTicks(min, max float64, count int) []float64 {
	if min == max {
		return []float64{min}
	}
	if min > max {
		min, max = max, min
	}
	step := NiceStep(min, max, count)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{min, max}
	}
	var (
		ticks []float64
		first = math.Ceil(min/step) * step
		limit = max + step/2
	)
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > limit {
			break
		}
		ticks = append(ticks, round12(v))
	}
	return ticks
}

// NiceStep returns the spacing NiceTicks uses for the given bounds.
func NiceStep(min, max float64, count int) float64 {
	if count < 2 {
		count = 2
	}
	rough := math.Abs(max-min) / float64(count-1)
	if rough == 0 {
		return 0
	}
	var (
		pow10 = math.Pow(10, math.Floor(math.Log10(rough)))
		ratio = rough / pow10
		mult  = multipliers[len(multipliers)-1]
	)
	for _, m := range multipliers {
		if ratio <= m {
			mult = m
			break
		}
	}
	return mult * pow10
}

func round12(v float64) float64 {
	const prec = 1e12
	r := math.Round(v*prec) / prec
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}
