// Package layout turns data series into pixel geometry: grouped, stacked
// and normalized bars, variable width (Marimekko) columns, histogram bars,
// density curves, violins and line paths.
//
// Every function is pure. Its result is rebuilt from scratch on each call
// and can be handed as is to a renderer. Use a Cache to skip recomputation
// when the inputs did not change.
package layout

import (
	"errors"
	"fmt"
	"strings"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/decimate"
	"github.com/midbel/chartkit/stat"
)

var ErrMode = errors.New("unknown stacking mode")

// Mode tells how the series of a bar chart share a category.
type Mode int

const (
	Grouped Mode = iota
	Stacked
	Percent
)

func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(str) {
	case "grouped", "group", "":
		return Grouped, nil
	case "stacked", "stack":
		return Stacked, nil
	case "percent", "normalized", "100%":
		return Percent, nil
	default:
		return Grouped, fmt.Errorf("%s: %w", str, ErrMode)
	}
}

func (m Mode) String() string {
	switch m {
	case Grouped:
		return "grouped"
	case Stacked:
		return "stacked"
	case Percent:
		return "percent"
	default:
		return "unknown"
	}
}

// Options configures every layout. The zero value is usable; DefaultOptions
// gives the values charts are usually drawn with.
type Options struct {
	Mode Mode
	// PaddingInner and PaddingOuter are the paddings, as a ratio of the step,
	// of the band scale over categories.
	PaddingInner float64
	PaddingOuter float64
	// GroupPadding is the inner padding between the series of a group.
	GroupPadding float64

	Colors charts.Assigner
	Hidden Hidden
	// Domain replaces the computed value domain when set. It is ignored by
	// the percent mode whose domain is always [0, 1].
	Domain *charts.Interval
	Ticks  int

	ColumnGap      float64
	CollapseHidden bool

	BinMethod stat.BinMethod
	Bins      int
	KDE       stat.KDEOptions

	Threshold  int
	Decimation decimate.Mode
}

func DefaultOptions() Options {
	return Options{
		Mode:         Grouped,
		PaddingInner: 0.1,
		PaddingOuter: 0.05,
		GroupPadding: 0.05,
		Colors:       charts.Assigner{Palette: charts.Category10},
		Ticks:        5,
		ColumnGap:    2,
		BinMethod:    stat.Sturges,
		KDE: stat.KDEOptions{
			Samples: stat.DefaultSamples,
		},
	}
}

func (o Options) ticks() int {
	if o.Ticks < 2 {
		return 5
	}
	return o.Ticks
}

// sign writes every option into sig.
func (o Options) sign(sig *charts.Signature) {
	sig.Int(int(o.Mode)).
		Float(o.PaddingInner).
		Float(o.PaddingOuter).
		Float(o.GroupPadding).
		Bool(o.Colors.Hash).
		Int(len(o.Colors.Palette))
	for _, c := range o.Colors.Palette {
		sig.String(c)
	}
	o.Hidden.sign(sig)
	sig.Bool(o.Domain != nil)
	if o.Domain != nil {
		sig.Float(o.Domain.Min).Float(o.Domain.Max)
	}
	sig.Int(o.Ticks).
		Float(o.ColumnGap).
		Bool(o.CollapseHidden).
		Int(int(o.BinMethod)).
		Int(o.Bins).
		Float(o.KDE.Bandwidth).
		Int(o.KDE.Samples).
		Int(o.Threshold).
		Int(int(o.Decimation))
}
