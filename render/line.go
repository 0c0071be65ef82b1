package render

import (
	"fmt"
	"strings"

	"github.com/midbel/slices"
	"github.com/midbel/svg"

	"github.com/midbel/chartkit/layout"
)

// Curve is the interpolation between two consecutive points of a line.
type Curve int

const (
	CurveLinear Curve = iota
	CurveStep
	CurveStepBefore
	CurveStepAfter
)

func ParseCurve(str string) (Curve, error) {
	switch strings.ToLower(str) {
	case "", "linear":
		return CurveLinear, nil
	case "step":
		return CurveStep, nil
	case "step-before":
		return CurveStepBefore, nil
	case "step-after":
		return CurveStepAfter, nil
	default:
		return CurveLinear, fmt.Errorf("%s: unknown curve", str)
	}
}

func (c Curve) String() string {
	switch c {
	case CurveStep:
		return "step"
	case CurveStepBefore:
		return "step-before"
	case CurveStepAfter:
		return "step-after"
	default:
		return "linear"
	}
}

var MarkerSize = 4.0

// Marker draws the symbol of a point at pos.
type Marker func(svg.Pos) svg.Element

func MarkerByName(name string) (Marker, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	case "diamond":
		return Diamond, nil
	default:
		return nil, fmt.Errorf("%s: unknown marker", name)
	}
}

func Circle(pos svg.Pos) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = newFill(currentColor, 1)
	el.Radius = MarkerSize / 2
	return el.AsElement()
}

func Square(pos svg.Pos) svg.Element {
	half := MarkerSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(MarkerSize, MarkerSize)
	el.Fill = newFill(currentColor, 1)
	return el.AsElement()
}

func Diamond(pos svg.Pos) svg.Element {
	half := MarkerSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(MarkerSize, MarkerSize)
	el.Fill = newFill(currentColor, 1)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half
	return el.AsElement()
}

type LineStyle struct {
	Color  string
	Curve  Curve
	Marker Marker
	// Fill closes the path on the bottom of the plot area.
	Fill bool
	// Label is written after the last point.
	Label string
}

// Line draws the path of a line layout.
func Line(l layout.Line, style LineStyle) svg.Element {
	var (
		grp = getBaseGroup(style.Color, "line", "line-"+style.Curve.String())
		pat = getBasePath(style.Fill)
	)
	if len(l.Path) == 0 {
		return grp.AsElement()
	}
	var (
		base = l.Y.F
		ori  = toPos(slices.Fst(l.Path))
	)
	if style.Fill {
		pat.AbsMoveTo(svg.NewPos(ori.X, base))
		pat.AbsLineTo(ori)
	} else {
		pat.AbsMoveTo(ori)
	}
	if style.Marker != nil {
		grp.Append(style.Marker(ori))
	}
	for _, p := range slices.Rest(l.Path) {
		pos := toPos(p)
		switch style.Curve {
		case CurveStep:
			mid := ori.X + (pos.X-ori.X)/2
			pat.AbsLineTo(svg.NewPos(mid, ori.Y))
			pat.AbsLineTo(svg.NewPos(mid, pos.Y))
		case CurveStepBefore:
			pat.AbsLineTo(svg.NewPos(ori.X, pos.Y))
		case CurveStepAfter:
			pat.AbsLineTo(svg.NewPos(pos.X, ori.Y))
		default:
		}
		pat.AbsLineTo(pos)
		if style.Marker != nil {
			grp.Append(style.Marker(pos))
		}
		ori = pos
	}
	if style.Fill {
		pat.AbsLineTo(svg.NewPos(ori.X, base))
	}
	grp.Append(pat.AsElement())
	if style.Label != "" {
		txt := getLineText(style.Label, ori.X, ori.Y)
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func getLineText(str string, x, y float64) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x+FontSize*0.4, y)
	txt.Anchor = "start"
	txt.Fill = newFill(currentColor, 1)
	txt.Shift.Y = middleShift(txt.Font.Size)
	return txt
}
