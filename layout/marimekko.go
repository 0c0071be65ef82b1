package layout

import (
	"math"

	charts "github.com/midbel/chartkit"
)

// Column is one category of a Marimekko chart. Its width is its share of
// the grand total and its segments split its height by their share of the
// visible total of the category.
type Column struct {
	Category     string
	Index        int
	Total        float64
	VisibleTotal float64
	X            float64
	Width        float64
	Segments     []Segment
}

type Mekko struct {
	Columns []Column
	Gap     float64
	Width   float64
	Height  float64
}

// Marimekko lays out variable width stacked columns. Negative values count
// as 0. Hidden series leave no gap: shares are computed on visible totals.
// A category whose series are all hidden keeps its original share unless
// opts.CollapseHidden is set, in which case it gets no column.
func Marimekko(series []Series, dim charts.Dimension, opts Options) Mekko {
	var (
		tab  = makeTable(series, opts.Hidden)
		res  Mekko
		cols []Column
	)
	dim = dim.Clamp()
	res.Width = dim.DrawingWidth()
	res.Height = dim.DrawingHeight()

	for j, c := range tab.categories {
		col := Column{
			Category: c,
			Index:    j,
		}
		for i := range tab.series {
			col.Total += math.Max(0, tab.cells[i][j].Value)
		}
		for _, i := range tab.visible {
			col.VisibleTotal += math.Max(0, tab.cells[i][j].Value)
		}
		if col.VisibleTotal == 0 && col.Total > 0 && opts.CollapseHidden {
			continue
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return res
	}

	var (
		grand float64
		gap   = math.Max(0, finite(opts.ColumnGap))
	)
	for _, c := range cols {
		grand += share(c)
	}
	if n := float64(len(cols) - 1); n > 0 && gap*n > res.Width {
		gap = res.Width / n
	}
	res.Gap = gap

	var (
		avail = math.Max(0, res.Width-gap*float64(len(cols)-1))
		x     float64
	)
	for k := range cols {
		col := &cols[k]
		if grand > 0 {
			col.Width = avail * share(*col) / grand
		} else {
			col.Width = avail / float64(len(cols))
		}
		col.X = x
		x += col.Width + gap
		col.Segments = stackColumn(tab, *col, res.Height, opts)
	}
	res.Columns = cols
	return res
}

// share is the value that decides the width of a column.
func share(c Column) float64 {
	if c.VisibleTotal > 0 {
		return c.VisibleTotal
	}
	return c.Total
}

func stackColumn(tab table, col Column, height float64, opts Options) []Segment {
	var (
		list []Segment
		used float64
		acc  float64
	)
	for _, i := range tab.visible {
		var (
			v   = math.Max(0, tab.cells[i][col.Index].Value)
			h   float64
			seg = Segment{
				CategoryIndex: col.Index,
				SeriesIndex:   i,
				Category:      col.Category,
				SeriesID:      tab.series[i].key(),
				Color:         tab.color(i, col.Index, opts),
				Value:         v,
				StackStart:    acc,
				StackEnd:      acc + v,
			}
		)
		if col.VisibleTotal > 0 {
			h = height * v / col.VisibleTotal
		}
		seg.Rect = charts.NewRect(col.X, used, col.Width, h).Sanitize()
		used += h
		acc += v
		list = append(list, seg)
	}
	return list
}
