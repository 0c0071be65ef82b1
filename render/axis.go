package render

import (
	"strconv"

	"github.com/midbel/svg"

	charts "github.com/midbel/chartkit"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

// NumberAxis draws ticks computed by a linear scale.
type NumberAxis struct {
	Orientation
	Scaler         charts.LinearScale
	Ticks          []float64
	Format         func(float64) string
	WithOuterTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	for _, f := range a.Ticks {
		if !a.Scaler.Domain.Contains(f) {
			continue
		}
		pos := a.Scaler.Scale(f)
		grp := svg.NewGroup(svg.WithTranslate(pos, 0))
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		tick := lineTick(a.Orientation, 0, FontSize*0.8, d.Stroke)
		grp.Append(tick.AsElement())

		text := tickText(a.Orientation, format(f), 0, font)
		grp.Append(text.AsElement())
		if a.WithOuterTicks {
			sk := d.Stroke
			sk.Opacity = 0.05
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

// CategoryAxis draws one label at the center of each band.
type CategoryAxis struct {
	Orientation
	Scaler charts.BandScale
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		align = a.Scaler.Bandwidth() / 2
		font  = svg.NewFont(FontSize)
	)
	for _, s := range a.Scaler.Ticks() {
		var (
			pos  = a.Scaler.Scale(s)
			text = tickText(a.Orientation, s, align, font)
			grp  = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		tick := lineTick(a.Orientation, align, FontSize*0.8, d.Stroke)
		grp.Append(tick.AsElement())
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		shift  = hangingShift(font.Size)
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		shift = middleShift(font.Size)
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		shift = middleShift(font.Size)
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		shift = 0
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Shift.Y = shift
	text.Font = font
	text.Fill = newFill("black", 1)
	text.Anchor = anchor
	return text
}

// middleShift moves a text drawn on its alphabetic baseline so that its
// middle sits on the requested position.
func middleShift(size float64) float64 {
	return size * 0.35
}

// hangingShift moves a text so that its top sits on the requested position.
func hangingShift(size float64) float64 {
	return size * 0.8
}
