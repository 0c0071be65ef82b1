// Package decimate reduces large line series to a smaller set of points that
// keeps their visual shape, using Largest-Triangle-Three-Buckets.
//
// Two selections are available. ModeExact is the algorithm described by
// Sveinn Steinarsson ("Downsampling Time Series for Visual Representation",
// 2013): the point kept in a bucket maximizes the area of the triangle made
// with the previously kept point and the average of the next bucket.
// ModeLegacy reproduces an older, cheaper selection that maximizes
// |(xa-xp)*(ya-yp)| against the previously kept point only.
package decimate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/midbel/slices"
)

var ErrMode = errors.New("unknown decimation mode")

type Point struct {
	X float64
	Y float64
}

type Mode int

const (
	ModeExact Mode = iota
	ModeLegacy
)

func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(str) {
	case "", "exact", "lttb":
		return ModeExact, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return ModeExact, fmt.Errorf("%s: %w", str, ErrMode)
	}
}

func (m Mode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}
	return "exact"
}

// Downsample returns at most threshold points of data. The first and last
// points are always kept. A threshold that is not positive or not lower
// than len(data) returns a copy of data.
func Downsample(data []Point, threshold int, mode Mode) []Point {
	if threshold <= 0 || threshold >= len(data) {
		return clone(data)
	}
	if threshold < 3 {
		ends := []Point{slices.Fst(data), slices.Lst(data)}
		return ends[:threshold]
	}
	if mode == ModeLegacy {
		return Legacy(data, threshold)
	}
	return LTTB(data, threshold)
}

// LTTB selects threshold points of data with the canonical algorithm.
func LTTB(data []Point, threshold int) []Point {
	if threshold <= 2 || threshold >= len(data) {
		return Downsample(data, threshold, ModeExact)
	}
	var (
		size    = len(data)
		every   = float64(size-2) / float64(threshold-2)
		sampled = make([]Point, 0, threshold)
		a       int
	)
	sampled = append(sampled, slices.Fst(data))
	for i := 0; i < threshold-2; i++ {
		var (
			avgFrom = int(float64(i+1)*every) + 1
			avgTo   = min(int(float64(i+2)*every)+1, size)
			avg     = average(data[avgFrom:avgTo])
			from    = int(float64(i)*every) + 1
			to      = int(float64(i+1)*every) + 1
			best    = -1.0
			next    = from
		)
		for j := from; j < to; j++ {
			area := triangle(data[a], data[j], avg)
			if area > best {
				best = area
				next = j
			}
		}
		sampled = append(sampled, data[next])
		a = next
	}
	return append(sampled, slices.Lst(data))
}

// Legacy selects threshold points of data using the approximate area
// |(xa-xp)*(ya-yp)| between a candidate a and the previously kept point p.
func Legacy(data []Point, threshold int) []Point {
	if threshold <= 2 || threshold >= len(data) {
		return Downsample(data, threshold, ModeLegacy)
	}
	var (
		size    = len(data)
		every   = float64(size-2) / float64(threshold-2)
		sampled = make([]Point, 0, threshold)
		prev    = slices.Fst(data)
	)
	sampled = append(sampled, prev)
	for i := 0; i < threshold-2; i++ {
		var (
			from = int(float64(i)*every) + 1
			to   = min(int(float64(i+1)*every)+1, size-1)
			best = -1.0
			pick = data[from]
		)
		for _, pt := range data[from:to] {
			area := math.Abs((pt.X - prev.X) * (pt.Y - prev.Y))
			if area > best {
				best = area
				pick = pt
			}
		}
		sampled = append(sampled, pick)
		prev = pick
	}
	return append(sampled, slices.Lst(data))
}

func triangle(a, b, c Point) float64 {
	return math.Abs((a.X-c.X)*(b.Y-a.Y)-(a.X-b.X)*(c.Y-a.Y)) * 0.5
}

func average(list []Point) Point {
	var p Point
	if len(list) == 0 {
		return p
	}
	for _, pt := range list {
		p.X += pt.X
		p.Y += pt.Y
	}
	p.X /= float64(len(list))
	p.Y /= float64(len(list))
	return p
}

func clone(data []Point) []Point {
	list := make([]Point, len(data))
	copy(list, data)
	return list
}
