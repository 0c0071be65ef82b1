package render

import (
	"strconv"

	"github.com/midbel/slices"
	"github.com/midbel/svg"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/layout"
)

const currentColor = "currentColor"

// Bars draws the segments of a bar layout.
func Bars(b layout.Bars) svg.Element {
	grp := getBaseGroup("", "bar", b.Mode.String())
	for _, s := range b.Segments {
		grp.Append(getRect(s.Rect, s.Color, s.Category+" - "+s.SeriesID))
	}
	return grp.AsElement()
}

// Mekko draws the columns of a Marimekko layout.
func Mekko(m layout.Mekko) svg.Element {
	grp := getBaseGroup("", "marimekko")
	for _, c := range m.Columns {
		col := getBaseGroup("", "column")
		for _, s := range c.Segments {
			col.Append(getRect(s.Rect, s.Color, s.Category+" - "+s.SeriesID))
		}
		grp.Append(col.AsElement())
	}
	return grp.AsElement()
}

// Histogram draws one rectangle per bin.
func Histogram(h layout.HistogramBars, color string) svg.Element {
	grp := getBaseGroup(color, "histogram")
	for _, b := range h.Bars {
		title := strconv.Itoa(b.Count)
		grp.Append(getRect(b.Rect, color, title))
	}
	return grp.AsElement()
}

// Density draws a density curve filled down to the x axis.
func Density(d layout.DensityCurve, color string) svg.Element {
	var (
		grp = getBaseGroup(color, "density")
		pat = getBasePath(true)
	)
	if len(d.Path) == 0 {
		return grp.AsElement()
	}
	var (
		fst   = slices.Fst(d.Path)
		lst   = slices.Lst(d.Path)
		floor = d.Y.Scale(0)
	)
	pat.AbsMoveTo(svg.NewPos(fst.X, floor))
	for _, p := range d.Path {
		pat.AbsLineTo(svg.NewPos(p.X, p.Y))
	}
	pat.AbsLineTo(svg.NewPos(lst.X, floor))
	pat.ClosePath()
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// Violins draws the outline of each violin with its quartiles and median.
func Violins(v layout.Violins) svg.Element {
	grp := getBaseGroup("", "violin")
	for _, s := range v.Shapes {
		g := getBaseGroup(s.Color, "violin-shape")
		g.Id = s.Name
		if len(s.Outline) > 0 {
			pat := getBasePath(true)
			pat.AbsMoveTo(toPos(slices.Fst(s.Outline)))
			for _, p := range slices.Rest(s.Outline) {
				pat.AbsLineTo(toPos(p))
			}
			pat.ClosePath()
			g.Append(pat.AsElement())
		}
		if s.Summary.Count > 0 {
			whisker := svg.NewLine(svg.NewPos(s.Center, s.Markers.LowerWhisker), svg.NewPos(s.Center, s.Markers.UpperWhisker))
			whisker.Stroke = svg.NewStroke("black", 1)
			g.Append(whisker.AsElement())

			var (
				w   = v.X.Bandwidth() / 10
				box svg.Rect
			)
			box.Pos = svg.NewPos(s.Center-w/2, s.Markers.Q3)
			box.Dim = svg.NewDim(w, s.Markers.Q1-s.Markers.Q3)
			box.Fill = newFill("black", 1)
			g.Append(box.AsElement())

			median := svg.NewLine(svg.NewPos(s.Center-w, s.Markers.Median), svg.NewPos(s.Center+w, s.Markers.Median))
			median.Stroke = svg.NewStroke("white", 2)
			g.Append(median.AsElement())
		}
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func toPos(p layout.XY) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func getRect(r charts.Rect, color, title string) svg.Element {
	var el svg.Rect
	el.Title = title
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.Width, r.Height)
	if color == "" {
		color = currentColor
	}
	el.Fill = newFill(color, 1)
	return el.AsElement()
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Stroke = svg.NewStroke(currentColor, 1)
	if fill {
		pat.Fill = newFill(currentColor, 0.5)
	} else {
		pat.Fill = newFill("none", 1)
	}
	return pat
}

func newFill(color string, opacity float64) svg.Fill {
	f := svg.NewFill(color)
	f.Opacity = opacity
	return f
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = newFill(color, 1)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
