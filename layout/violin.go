package layout

import (
	"math"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/stat"
)

type ViolinGroup struct {
	Name   string
	Color  string
	Values []float64
}

// Markers are the pixel positions, on the value axis, of a box summary.
type Markers struct {
	LowerWhisker float64
	Q1           float64
	Median       float64
	Q3           float64
	UpperWhisker float64
}

type ViolinShape struct {
	Name    string
	Color   string
	Center  float64
	Outline []XY
	Summary stat.BoxSummary
	Markers Markers
}

type Violins struct {
	X      charts.BandScale
	Y      charts.LinearScale
	Ticks  []float64
	Shapes []ViolinShape
}

// Violin estimates the density of each group on the shared value domain and
// draws it symmetrically around the center of the group band. The widest
// point of all violins fills half of the bandwidth on each side.
func Violin(groups []ViolinGroup, dim charts.Dimension, opts Options) Violins {
	var (
		res    Violins
		names  = make([]string, 0, len(groups))
		dom    charts.Interval
		first  = true
		width  = dim.Clamp().DrawingWidth()
		height = dim.Clamp().DrawingHeight()
	)
	for _, g := range groups {
		names = append(names, g.Name)
		if len(charts.Finite(g.Values)) == 0 {
			continue
		}
		ext := charts.Extent(g.Values)
		if first {
			dom, first = ext, false
		} else {
			dom = dom.Merge(ext)
		}
	}
	if opts.Domain != nil {
		dom = *opts.Domain
	}
	dom = dom.Widen()
	res.X = charts.NewBand(names, charts.NewRange(0, width), charts.BandOptions{
		PaddingInner: opts.PaddingInner,
		PaddingOuter: opts.PaddingOuter,
	})
	res.Y = charts.NewLinear(dom, charts.NewRange(height, 0))
	res.Ticks = res.Y.Ticks(opts.ticks())

	var (
		curves = make([][]stat.Sample, len(groups))
		peak   float64
	)
	for i, g := range groups {
		curves[i] = stat.KDE(g.Values, dom.Min, dom.Max, opts.KDE)
		peak = math.Max(peak, stat.MaxDensity(curves[i]))
	}
	half := res.X.Bandwidth() / 2
	for i, g := range groups {
		shape := ViolinShape{
			Name:    g.Name,
			Color:   charts.ResolveColor("", g.Color, opts.Colors, i, g.Name),
			Center:  res.X.Position(i) + half,
			Summary: stat.Summary(g.Values),
		}
		shape.Outline = outline(curves[i], shape.Center, half, peak, res.Y)
		if shape.Summary.Count > 0 {
			shape.Markers = Markers{
				LowerWhisker: res.Y.Scale(shape.Summary.LowerWhisker),
				Q1:           res.Y.Scale(shape.Summary.Q1),
				Median:       res.Y.Scale(shape.Summary.Median),
				Q3:           res.Y.Scale(shape.Summary.Q3),
				UpperWhisker: res.Y.Scale(shape.Summary.UpperWhisker),
			}
		}
		res.Shapes = append(res.Shapes, shape)
	}
	return res
}

// outline walks up the right side of the violin and back down its left
// side.
func outline(curve []stat.Sample, center, half, peak float64, y charts.LinearScale) []XY {
	if len(curve) == 0 {
		return nil
	}
	list := make([]XY, 0, 2*len(curve))
	offset := func(s stat.Sample) float64 {
		if peak <= 0 {
			return 0
		}
		return half * s.Y / peak
	}
	for _, s := range curve {
		list = append(list, charts.NumberPoint(finite(center+offset(s)), finite(y.Scale(s.X))))
	}
	for i := len(curve) - 1; i >= 0; i-- {
		s := curve[i]
		list = append(list, charts.NumberPoint(finite(center-offset(s)), finite(y.Scale(s.X))))
	}
	return list
}
