package charts

import (
	"math"
	"time"
)

// LogEpsilon is the smallest value a log scale accepts. Anything lower is
// clamped to it before the logarithm is taken.
const LogEpsilon = 1e-12

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

// Scaler maps a domain value to a pixel coordinate.
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

// Inverter is implemented by the continuous scales.
type Inverter[T ScalerConstraint] interface {
	Invert(float64) T
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type LinearScale struct {
	Range
	Domain Interval
}

func NewLinear(dom Interval, rg Range) LinearScale {
	return LinearScale{
		Range:  rg,
		Domain: dom,
	}
}

func (s LinearScale) Scale(v float64) float64 {
	return s.F + (v-s.Domain.Min)*s.Space()
}

// Space returns the slope of the scale. A degenerate domain uses a unit
// denominator.
func (s LinearScale) Space() float64 {
	return slope(s.Len(), s.Domain.Extend())
}

func (s LinearScale) Invert(px float64) float64 {
	sp := s.Space()
	if sp == 0 {
		return s.Domain.Min
	}
	return s.Domain.Min + (px-s.F)/sp
}

func (s LinearScale) Ticks(count int) []float64 {
	return NiceTicks(s.Domain.Min, s.Domain.Max, count)
}

func (s LinearScale) Values(count int) []float64 {
	return s.Ticks(count)
}

type LogScale struct {
	Range
	Domain Interval
}

func NewLog(dom Interval, rg Range) LogScale {
	return LogScale{
		Range:  rg,
		Domain: dom,
	}
}

func (s LogScale) Scale(v float64) float64 {
	return s.F + (logOf(v)-logOf(s.Domain.Min))*s.Space()
}

func (s LogScale) Space() float64 {
	return slope(s.Len(), logOf(s.Domain.Max)-logOf(s.Domain.Min))
}

func (s LogScale) Invert(px float64) float64 {
	sp := s.Space()
	if sp == 0 {
		return math.Max(s.Domain.Min, LogEpsilon)
	}
	return math.Exp(logOf(s.Domain.Min) + (px-s.F)/sp)
}

// Ticks returns powers of ten inside the domain. When the domain spans less
// than two decades, linear nice ticks are used instead.
func (s LogScale) Ticks(count int) []float64 {
	var (
		lo = math.Max(math.Min(s.Domain.Min, s.Domain.Max), LogEpsilon)
		hi = math.Max(math.Max(s.Domain.Min, s.Domain.Max), LogEpsilon)
		fe = int(math.Ceil(math.Log10(lo) - 1e-9))
		le = int(math.Floor(math.Log10(hi) + 1e-9))
	)
	if le-fe+1 < 2 {
		return NiceTicks(lo, hi, count)
	}
	if count < 2 {
		count = 2
	}
	stride := 1
	if n := le - fe + 1; n > count {
		stride = int(math.Ceil(float64(n) / float64(count)))
	}
	var ticks []float64
	for e := fe; e <= le; e += stride {
		ticks = append(ticks, math.Pow(10, float64(e)))
	}
	return ticks
}

func (s LogScale) Values(count int) []float64 {
	return s.Ticks(count)
}

func logOf(v float64) float64 {
	return math.Log(math.Max(v, LogEpsilon))
}

type TimeScale struct {
	Range
	Domain TimeInterval
}

func NewTime(dom TimeInterval, rg Range) TimeScale {
	return TimeScale{
		Range:  rg,
		Domain: dom,
	}
}

func (s TimeScale) Scale(v time.Time) float64 {
	return s.F + s.Domain.Diff(v)*s.Space()
}

func (s TimeScale) Space() float64 {
	return slope(s.Len(), s.Domain.Extend())
}

func (s TimeScale) Invert(px float64) time.Time {
	sp := s.Space()
	if sp == 0 {
		return s.Domain.Min
	}
	return s.Domain.Min.Add(time.Duration(math.Round((px - s.F) / sp)))
}

// Ticks computes nice ticks on epoch milliseconds.
func (s TimeScale) Ticks(count int) []time.Time {
	var (
		fst   = float64(s.Domain.Min.UnixMilli())
		lst   = float64(s.Domain.Max.UnixMilli())
		ticks = NiceTicks(fst, lst, count)
		all   = make([]time.Time, 0, len(ticks))
	)
	for _, t := range ticks {
		all = append(all, time.UnixMilli(int64(math.Round(t))).In(s.Domain.Min.Location()))
	}
	return all
}

func (s TimeScale) Values(count int) []time.Time {
	return s.Ticks(count)
}

type BandOptions struct {
	PaddingInner float64
	PaddingOuter float64
}

type BandScale struct {
	Range
	BandOptions
	Strings []string

	index map[string]int
}

func NewBand(str []string, rg Range, opts BandOptions) BandScale {
	s := BandScale{
		Range:   rg,
		Strings: make([]string, len(str)),
		index:   make(map[string]int, len(str)),
	}
	s.PaddingInner = clampUnit(opts.PaddingInner)
	s.PaddingOuter = clampUnit(opts.PaddingOuter)
	copy(s.Strings, str)
	for i, v := range s.Strings {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = i
	}
	return s
}

// Scale returns the start of the band allotted to v, or NaN when v is not
// part of the domain.
func (s BandScale) Scale(v string) float64 {
	x, ok := s.index[v]
	if !ok {
		return math.NaN()
	}
	return s.Position(x)
}

// Position returns the start of the band at index x.
func (s BandScale) Position(x int) float64 {
	var (
		step = s.Step()
		band = s.Bandwidth()
	)
	return s.F + s.PaddingOuter*step + float64(x)*step + (step-band)/2
}

func (s BandScale) Index(v string) (int, bool) {
	x, ok := s.index[v]
	return x, ok
}

func (s BandScale) Step() float64 {
	n := float64(len(s.Strings)) + 2*s.PaddingOuter
	if n == 0 {
		return 0
	}
	return s.Len() / n
}

func (s BandScale) Bandwidth() float64 {
	return s.Step() * (1 - s.PaddingInner)
}

func (s BandScale) Space() float64 {
	return s.Bandwidth()
}

func (s BandScale) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

func (s BandScale) Ticks() []string {
	return s.Strings
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

func slope(length, extend float64) float64 {
	if extend == 0 {
		return length
	}
	return length / extend
}
