// Package render draws the geometry computed by the layout package as SVG.
// It performs no numeric work of its own beyond placing what it is given.
package render

import (
	"bufio"
	"io"

	"github.com/midbel/svg"

	charts "github.com/midbel/chartkit"
)

const FontSize = 12.0

type Chart struct {
	Title string
	charts.Dimension

	Left   Axis
	Bottom Axis
}

func NewChart(title string, dim charts.Dimension) Chart {
	return Chart{
		Title:     title,
		Dimension: dim.Clamp(),
	}
}

// Render writes the chart with its axes and the given plot elements.
func (c Chart) Render(w io.Writer, set ...svg.Element) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))

	if c.Title != "" {
		el.Append(c.drawTitle())
	}
	el.Append(c.drawAxis())
	ar := c.getArea()
	for _, s := range set {
		if s == nil {
			continue
		}
		ar.Append(s)
	}
	el.Append(ar.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) getArea() svg.Group {
	return svg.NewGroup(svg.WithClass("area"), svg.WithTranslate(c.Padding.Left, c.Padding.Top))
}

func (c Chart) drawTitle() svg.Element {
	txt := svg.NewText(c.Title)
	txt.Font = svg.NewFont(FontSize * 1.4)
	txt.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
	txt.Anchor = "middle"
	txt.Fill = newFill("black", 1)
	txt.Shift.Y = middleShift(txt.Font.Size)
	return txt.AsElement()
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
