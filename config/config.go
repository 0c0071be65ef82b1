// Package config reads the description of a chart from a YAML file and the
// environment, and resolves it once into the options used by the layouts.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/decimate"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/render"
	"github.com/midbel/chartkit/stat"
)

// EnvPrefix is the prefix of the environment variables read by FromEnv.
const EnvPrefix = "CHARTKIT"

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTicks  = 7
	DefaultMargin = 60
	DefaultSteps  = 8
)

var (
	ErrUnknownType    = errors.New("unknown chart type")
	ErrUnknownPalette = errors.New("unknown palette")
)

type OptionError struct {
	Option string
	Value  string
	Err    error
}

func (e OptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("option %s: invalid value %q: %s", e.Option, e.Value, e.Err)
	}
	return fmt.Sprintf("option %s: invalid value %q", e.Option, e.Value)
}

func (e OptionError) Unwrap() error {
	return e.Err
}

type Kind int

const (
	Bar Kind = iota
	Marimekko
	Histogram
	Density
	Violin
	Line
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Marimekko:
		return "marimekko"
	case Histogram:
		return "histogram"
	case Density:
		return "density"
	case Violin:
		return "violin"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

type Padding struct {
	Top    *float64 `yaml:"top"`
	Right  *float64 `yaml:"right"`
	Bottom *float64 `yaml:"bottom"`
	Left   *float64 `yaml:"left"`
}

// Chart is the description of a chart as written by users. Unset fields get
// their default in Resolve.
type Chart struct {
	Type   string  `yaml:"type" envconfig:"TYPE"`
	Title  string  `yaml:"title" envconfig:"TITLE"`
	Width  float64 `yaml:"width" envconfig:"WIDTH"`
	Height float64 `yaml:"height" envconfig:"HEIGHT"`
	Ticks  int     `yaml:"ticks" envconfig:"TICKS"`

	Padding Padding `yaml:"padding" envconfig:"PADDING"`

	PaddingInner *float64  `yaml:"padding-inner" envconfig:"PADDING_INNER"`
	PaddingOuter *float64  `yaml:"padding-outer" envconfig:"PADDING_OUTER"`
	GroupPadding *float64  `yaml:"group-padding" envconfig:"GROUP_PADDING"`
	Domain       []float64 `yaml:"domain" envconfig:"DOMAIN"`

	Palette string   `yaml:"palette" envconfig:"PALETTE"`
	Colors  []string `yaml:"colors" envconfig:"COLORS"`
	Hash    bool     `yaml:"hash" envconfig:"HASH"`

	Gradient      []string `yaml:"gradient" envconfig:"GRADIENT"`
	GradientSteps int      `yaml:"gradient-steps" envconfig:"GRADIENT_STEPS"`

	Hidden  []string `yaml:"hidden" envconfig:"HIDDEN"`

	ColumnGap      *float64 `yaml:"column-gap" envconfig:"COLUMN_GAP"`
	CollapseHidden bool     `yaml:"collapse-hidden" envconfig:"COLLAPSE_HIDDEN"`

	Method    string  `yaml:"method" envconfig:"METHOD"`
	Bins      int     `yaml:"bins" envconfig:"BINS"`
	Bandwidth float64 `yaml:"bandwidth" envconfig:"BANDWIDTH"`
	Samples   int     `yaml:"samples" envconfig:"SAMPLES"`

	Threshold  int    `yaml:"threshold" envconfig:"THRESHOLD"`
	Decimation string `yaml:"decimation" envconfig:"DECIMATION"`
	Curve      string `yaml:"curve" envconfig:"CURVE"`
	Marker     string `yaml:"marker" envconfig:"MARKER"`
	Fill       bool   `yaml:"fill" envconfig:"FILL"`
}

// Settings is a resolved chart description.
type Settings struct {
	Kind      Kind
	Title     string
	Dimension charts.Dimension
	Layout    layout.Options
	Line      render.LineStyle
}

// Load reads a chart description from file. Unknown keys are rejected.
func Load(file string) (Chart, error) {
	r, err := os.Open(file)
	if err != nil {
		return Chart{}, err
	}
	defer r.Close()
	c, err := Decode(r)
	if err != nil {
		return c, fmt.Errorf("%s: %w", file, err)
	}
	slog.Debug("configuration loaded", "file", file, "type", c.Type)
	return c, nil
}

func Decode(r io.Reader) (Chart, error) {
	var (
		c   Chart
		dec = yaml.NewDecoder(r)
	)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, err
	}
	return c, nil
}

// FromEnv overrides the fields of c for which an environment variable
// prefixed with EnvPrefix is set.
func FromEnv(c *Chart) error {
	return envconfig.Process(EnvPrefix, c)
}

// Resolve checks the description and applies every default.
func (c Chart) Resolve() (Settings, error) {
	var (
		set  Settings
		opts = layout.DefaultOptions()
		err  error
	)
	set.Title = c.Title
	if set.Kind, opts.Mode, err = parseType(c.Type); err != nil {
		return set, err
	}

	set.Dimension = charts.Dimension{
		Width:  orDefault(c.Width, DefaultWidth),
		Height: orDefault(c.Height, DefaultHeight),
		Padding: charts.Padding{
			Top:    deref(c.Padding.Top, DefaultMargin),
			Right:  deref(c.Padding.Right, DefaultMargin),
			Bottom: deref(c.Padding.Bottom, DefaultMargin),
			Left:   deref(c.Padding.Left, DefaultMargin),
		},
	}
	set.Dimension = set.Dimension.Clamp()

	opts.Ticks = DefaultTicks
	if c.Ticks > 0 {
		opts.Ticks = c.Ticks
	}
	opts.PaddingInner = deref(c.PaddingInner, opts.PaddingInner)
	opts.PaddingOuter = deref(c.PaddingOuter, opts.PaddingOuter)
	opts.GroupPadding = deref(c.GroupPadding, opts.GroupPadding)
	opts.ColumnGap = deref(c.ColumnGap, opts.ColumnGap)
	opts.CollapseHidden = c.CollapseHidden

	switch len(c.Domain) {
	case 0:
	case 2:
		dom := charts.NumberDomain(c.Domain[0], c.Domain[1])
		opts.Domain = &dom
	default:
		return set, OptionError{
			Option: "domain",
			Value:  fmt.Sprint(c.Domain),
			Err:    fmt.Errorf("expected 2 values, got %d", len(c.Domain)),
		}
	}

	if opts.Colors, err = c.assigner(); err != nil {
		return set, err
	}
	opts.Hidden = layout.NewHidden(c.Hidden...)

	if opts.BinMethod, err = stat.ParseBinMethod(c.Method); err != nil {
		return set, OptionError{Option: "method", Value: c.Method, Err: err}
	}
	if c.Bins < 0 {
		return set, OptionError{Option: "bins", Value: fmt.Sprint(c.Bins)}
	}
	opts.Bins = c.Bins
	opts.KDE.Bandwidth = c.Bandwidth
	if c.Samples > 0 {
		opts.KDE.Samples = c.Samples
	}

	if c.Threshold < 0 {
		return set, OptionError{Option: "threshold", Value: fmt.Sprint(c.Threshold)}
	}
	opts.Threshold = c.Threshold
	if opts.Decimation, err = decimate.ParseMode(c.Decimation); err != nil {
		return set, OptionError{Option: "decimation", Value: c.Decimation, Err: err}
	}
	set.Line.Fill = c.Fill
	set.Line.Color = opts.Colors.Assign(0, "")
	if set.Line.Curve, err = render.ParseCurve(c.Curve); err != nil {
		return set, OptionError{Option: "curve", Value: c.Curve, Err: err}
	}
	if set.Line.Marker, err = render.MarkerByName(c.Marker); err != nil {
		return set, OptionError{Option: "marker", Value: c.Marker, Err: err}
	}

	set.Layout = opts
	return set, nil
}

func (c Chart) assigner() (charts.Assigner, error) {
	a := charts.Assigner{
		Hash: c.Hash,
	}
	if len(c.Colors) > 0 {
		a.Palette = append(a.Palette, c.Colors...)
		return a, nil
	}
	if len(c.Gradient) > 0 {
		g, err := charts.NewGradient(c.Gradient...)
		if err != nil {
			return a, OptionError{Option: "gradient", Value: strings.Join(c.Gradient, ","), Err: err}
		}
		if c.GradientSteps < 0 {
			return a, OptionError{Option: "gradient-steps", Value: fmt.Sprint(c.GradientSteps)}
		}
		steps := c.GradientSteps
		if steps == 0 {
			steps = DefaultSteps
		}
		a.Palette = g.Palette(steps)
		return a, nil
	}
	p, ok := charts.PaletteByName(c.Palette)
	if !ok {
		return a, fmt.Errorf("%s: %w", c.Palette, ErrUnknownPalette)
	}
	a.Palette = p
	return a, nil
}

func parseType(str string) (Kind, layout.Mode, error) {
	switch strings.ToLower(str) {
	case "bar", "grouped", "":
		return Bar, layout.Grouped, nil
	case "stacked":
		return Bar, layout.Stacked, nil
	case "percent":
		return Bar, layout.Percent, nil
	case "marimekko", "mekko":
		return Marimekko, layout.Stacked, nil
	case "histogram":
		return Histogram, layout.Grouped, nil
	case "density":
		return Density, layout.Grouped, nil
	case "violin":
		return Violin, layout.Grouped, nil
	case "line":
		return Line, layout.Grouped, nil
	default:
		return Bar, layout.Grouped, fmt.Errorf("%s: %w", str, ErrUnknownType)
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func deref(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
