package layout

import (
	"sort"

	charts "github.com/midbel/chartkit"
)

type XY = charts.Point[float64, float64]

type Datum struct {
	Category string
	Value    float64
	Color    string
	ID       string
}

type Series struct {
	ID    string
	Name  string
	Color string
	Data  []Datum
}

// key identifies the series in the visibility set and for hashed colors.
func (s Series) key() string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name
}

// Hidden is the set of series currently toggled off.
type Hidden map[string]struct{}

func NewHidden(ids ...string) Hidden {
	h := make(Hidden, len(ids))
	for _, id := range ids {
		h[id] = struct{}{}
	}
	return h
}

func (h Hidden) Has(id string) bool {
	_, ok := h[id]
	return ok
}

func (h Hidden) sign(sig *charts.Signature) {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	sig.Int(len(ids))
	for _, id := range ids {
		sig.String(id)
	}
}

// Categories returns the categories of all series in order of first
// appearance.
func Categories(series []Series) []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for _, s := range series {
		for _, d := range s.Data {
			if _, ok := seen[d.Category]; ok {
				continue
			}
			seen[d.Category] = struct{}{}
			list = append(list, d.Category)
		}
	}
	return list
}

// cell is the value a series holds for one category. Values of repeated
// categories are summed.
type cell struct {
	Value float64
	Color string
	ID    string
	Found bool
}

type table struct {
	categories []string
	series     []Series
	visible    []int
	cells      [][]cell
}

func makeTable(series []Series, hidden Hidden) table {
	t := table{
		categories: Categories(series),
		series:     series,
	}
	index := make(map[string]int, len(t.categories))
	for i, c := range t.categories {
		index[c] = i
	}
	t.cells = make([][]cell, len(series))
	for i, s := range series {
		if !hidden.Has(s.key()) {
			t.visible = append(t.visible, i)
		}
		row := make([]cell, len(t.categories))
		for _, d := range s.Data {
			c := &row[index[d.Category]]
			c.Value += finite(d.Value)
			if !c.Found {
				c.Color = d.Color
				c.ID = d.ID
			}
			c.Found = true
		}
		t.cells[i] = row
	}
	return t
}

func (t table) visibleIDs() []string {
	ids := make([]string, 0, len(t.visible))
	for _, i := range t.visible {
		ids = append(ids, t.series[i].key())
	}
	return ids
}

func (t table) color(series, category int, opts Options) string {
	var (
		s = t.series[series]
		c = t.cells[series][category]
	)
	return charts.ResolveColor(c.Color, s.Color, opts.Colors, series, s.key())
}

// Signature returns the fingerprint of every input of a layout.
func Signature(series []Series, dim charts.Dimension, opts Options) uint64 {
	sig := charts.NewSignature()
	sig.Int(len(series))
	for _, s := range series {
		sig.String(s.ID).String(s.Name).String(s.Color).Int(len(s.Data))
		for _, d := range s.Data {
			sig.String(d.Category).Float(d.Value).String(d.Color).String(d.ID)
		}
	}
	sig.Float(dim.Width).
		Float(dim.Height).
		Float(dim.Top).
		Float(dim.Right).
		Float(dim.Bottom).
		Float(dim.Left)
	opts.sign(sig)
	return sig.Sum()
}
