package charts

import (
	"math"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Dimension is the size of a chart and the padding around its plot area.
type Dimension struct {
	Width  float64
	Height float64
	Padding
}

func NewDimension(w, h float64) Dimension {
	return Dimension{
		Width:  w,
		Height: h,
	}
}

// DrawingWidth is the width of the plot area. It is never negative.
func (d Dimension) DrawingWidth() float64 {
	return clampSize(d.Width - d.Padding.Horizontal())
}

// DrawingHeight is the height of the plot area. It is never negative.
func (d Dimension) DrawingHeight() float64 {
	return clampSize(d.Height - d.Padding.Vertical())
}

// Clamp replaces negative or non finite sizes by 0.
func (d Dimension) Clamp() Dimension {
	x := d
	x.Width = clampSize(x.Width)
	x.Height = clampSize(x.Height)
	x.Top = clampSize(x.Top)
	x.Right = clampSize(x.Right)
	x.Bottom = clampSize(x.Bottom)
	x.Left = clampSize(x.Left)
	return x
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	}
}

// Sanitize replaces NaN or infinite coordinates by 0 and flips negative
// sizes so that the rectangle keeps covering the same area.
func (r Rect) Sanitize() Rect {
	x := Rect{
		X:      finiteOr(r.X, 0),
		Y:      finiteOr(r.Y, 0),
		Width:  finiteOr(r.Width, 0),
		Height: finiteOr(r.Height, 0),
	}
	if x.Width < 0 {
		x.X += x.Width
		x.Width = -x.Width
	}
	if x.Height < 0 {
		x.Y += x.Height
		x.Height = -x.Height
	}
	return x
}

func (r Rect) Valid() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}

func clampSize(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
