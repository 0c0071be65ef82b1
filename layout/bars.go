package layout

import (
	"math"

	charts "github.com/midbel/chartkit"
)

// Segment is the geometry of one datum of a bar chart. StackStart and
// StackEnd are in value units; Rect is in pixels, relative to the plot area.
type Segment struct {
	CategoryIndex int
	SeriesIndex   int
	Category      string
	SeriesID      string
	Color         string
	Value         float64
	StackStart    float64
	StackEnd      float64
	Rect          charts.Rect
}

type Bars struct {
	Mode       Mode
	Categories []string
	Series     []string
	X          charts.BandScale
	Y          charts.LinearScale
	Domain     charts.Interval
	Ticks      []float64
	Segments   []Segment
}

// Find returns the segment drawn for a category and a series.
func (b Bars) Find(category, series string) (Segment, bool) {
	for _, s := range b.Segments {
		if s.Category == category && s.SeriesID == series {
			return s, true
		}
	}
	return Segment{}, false
}

// Layout dispatches to the bar layout selected by opts.Mode.
func Layout(series []Series, dim charts.Dimension, opts Options) Bars {
	switch opts.Mode {
	case Stacked, Percent:
		return Stack(series, dim, opts)
	default:
		return Group(series, dim, opts)
	}
}

// Group lays out the visible series side by side inside each category. A
// series without a value for a category keeps its slot with a zero height
// bar.
func Group(series []Series, dim charts.Dimension, opts Options) Bars {
	var (
		tab = makeTable(series, opts.Hidden)
		res = prepare(tab, dim, opts)
		dom charts.Interval
	)
	res.Mode = Grouped
	for _, i := range tab.visible {
		for j := range tab.categories {
			v := tab.cells[i][j].Value
			dom = dom.Include(v)
		}
	}
	res.setDomain(dom, dim, opts)

	inner := charts.NewBand(res.Series, charts.NewRange(0, res.X.Bandwidth()), charts.BandOptions{
		PaddingInner: opts.GroupPadding,
	})
	for j, c := range tab.categories {
		for k, i := range tab.visible {
			var (
				v   = tab.cells[i][j].Value
				x   = res.X.Position(j) + inner.Position(k)
				seg = Segment{
					CategoryIndex: j,
					SeriesIndex:   i,
					Category:      c,
					SeriesID:      tab.series[i].key(),
					Color:         tab.color(i, j, opts),
					Value:         v,
					StackStart:    0,
					StackEnd:      v,
				}
			)
			seg.Rect = res.rect(x, inner.Bandwidth(), seg.StackStart, seg.StackEnd)
			res.Segments = append(res.Segments, seg)
		}
	}
	return res
}

// Stack piles the visible series of each category on top of each other,
// positive values upward from 0 and negative values downward from 0. In
// Percent mode values are first divided by the sum of the absolute values
// of their category and the domain is [0, 1].
func Stack(series []Series, dim charts.Dimension, opts Options) Bars {
	var (
		tab = makeTable(series, opts.Hidden)
		res = prepare(tab, dim, opts)
		dom charts.Interval
	)
	res.Mode = Stacked
	if opts.Mode == Percent {
		res.Mode = Percent
	}
	for j, c := range tab.categories {
		var (
			pos, neg float64
			total    float64
		)
		if res.Mode == Percent {
			for _, i := range tab.visible {
				total += math.Abs(tab.cells[i][j].Value)
			}
		}
		for _, i := range tab.visible {
			var (
				v   = tab.cells[i][j].Value
				seg = Segment{
					CategoryIndex: j,
					SeriesIndex:   i,
					Category:      c,
					SeriesID:      tab.series[i].key(),
					Color:         tab.color(i, j, opts),
					Value:         v,
				}
			)
			if res.Mode == Percent {
				v = 0
				if total > 0 {
					v = seg.Value / total
				}
			}
			if v >= 0 {
				seg.StackStart, seg.StackEnd = pos, pos+v
				pos = seg.StackEnd
			} else {
				seg.StackStart, seg.StackEnd = neg, neg+v
				neg = seg.StackEnd
			}
			res.Segments = append(res.Segments, seg)
		}
		dom = dom.Include(pos).Include(neg)
	}
	if res.Mode == Percent {
		dom = charts.NumberDomain(0, 1)
		opts.Domain = nil
	}
	res.setDomain(dom, dim, opts)
	for i := range res.Segments {
		seg := &res.Segments[i]
		seg.Rect = res.rect(res.X.Position(seg.CategoryIndex), res.X.Bandwidth(), seg.StackStart, seg.StackEnd)
	}
	return res
}

func prepare(tab table, dim charts.Dimension, opts Options) Bars {
	dim = dim.Clamp()
	return Bars{
		Categories: tab.categories,
		Series:     tab.visibleIDs(),
		X: charts.NewBand(tab.categories, charts.NewRange(0, dim.DrawingWidth()), charts.BandOptions{
			PaddingInner: opts.PaddingInner,
			PaddingOuter: opts.PaddingOuter,
		}),
	}
}

// setDomain installs the value scale. The domain always includes 0, the
// override of opts wins and a degenerate domain is widened.
func (b *Bars) setDomain(dom charts.Interval, dim charts.Dimension, opts Options) {
	if opts.Domain != nil {
		dom = *opts.Domain
	}
	dom = dom.Widen()
	height := dim.Clamp().DrawingHeight()

	b.Domain = dom
	b.Y = charts.NewLinear(dom, charts.NewRange(height, 0))
	b.Ticks = b.Y.Ticks(opts.ticks())
}

func (b Bars) rect(x, width, from, to float64) charts.Rect {
	var (
		y0 = b.Y.Scale(from)
		y1 = b.Y.Scale(to)
	)
	return charts.NewRect(x, math.Min(y0, y1), width, math.Abs(y1-y0)).Sanitize()
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
