package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
	"github.com/midbel/chartkit/decimate"
	"github.com/midbel/chartkit/layout"
	"github.com/midbel/chartkit/render"
	"github.com/midbel/chartkit/stat"
)

const sample = `
type: stacked
title: sales
width: 640
height: 480
padding:
  top: 10
  left: 40
padding-inner: 0.2
domain: [0, 100]
colors: ["#111111", "#222222"]
hash: true
hidden: [north]
method: fd
threshold: 500
decimation: legacy
curve: step-after
marker: square
`

func TestDecodeResolve(t *testing.T) {
	c, err := config.Decode(strings.NewReader(sample))
	require.NoError(t, err)

	set, err := c.Resolve()
	require.NoError(t, err)

	assert.Equal(t, config.Bar, set.Kind)
	assert.Equal(t, "sales", set.Title)
	assert.Equal(t, 640.0, set.Dimension.Width)
	assert.Equal(t, 480.0, set.Dimension.Height)
	assert.Equal(t, charts.Padding{
		Top:    10,
		Right:  config.DefaultMargin,
		Bottom: config.DefaultMargin,
		Left:   40,
	}, set.Dimension.Padding)

	opts := set.Layout
	assert.Equal(t, layout.Stacked, opts.Mode)
	assert.Equal(t, 0.2, opts.PaddingInner)
	assert.Equal(t, layout.DefaultOptions().PaddingOuter, opts.PaddingOuter)
	require.NotNil(t, opts.Domain)
	assert.Equal(t, charts.NumberDomain(0, 100), *opts.Domain)
	assert.Equal(t, charts.Palette{"#111111", "#222222"}, opts.Colors.Palette)
	assert.True(t, opts.Colors.Hash)
	assert.True(t, opts.Hidden.Has("north"))
	assert.Equal(t, stat.FreedmanDiaconis, opts.BinMethod)
	assert.Equal(t, 500, opts.Threshold)
	assert.Equal(t, decimate.ModeLegacy, opts.Decimation)
	assert.Equal(t, config.DefaultTicks, opts.Ticks)

	assert.Equal(t, render.CurveStepAfter, set.Line.Curve)
	assert.NotNil(t, set.Line.Marker)
	assert.Equal(t, "#111111", set.Line.Color)
}

func TestResolve_Defaults(t *testing.T) {
	set, err := config.Chart{}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, config.Bar, set.Kind)
	assert.Equal(t, layout.Grouped, set.Layout.Mode)
	assert.Equal(t, float64(config.DefaultWidth), set.Dimension.Width)
	assert.Equal(t, float64(config.DefaultHeight), set.Dimension.Height)
	assert.Equal(t, charts.Category10, set.Layout.Colors.Palette)
	assert.Nil(t, set.Layout.Domain)
	assert.Equal(t, stat.Sturges, set.Layout.BinMethod)
}

func TestResolve_Errors(t *testing.T) {
	_, err := config.Chart{Type: "pie"}.Resolve()
	assert.ErrorIs(t, err, config.ErrUnknownType)

	_, err = config.Chart{Palette: "rainbow"}.Resolve()
	assert.ErrorIs(t, err, config.ErrUnknownPalette)

	tests := []struct {
		Chart  config.Chart
		Option string
	}{
		{
			Chart:  config.Chart{Domain: []float64{1}},
			Option: "domain",
		},
		{
			Chart:  config.Chart{Bins: -1},
			Option: "bins",
		},
		{
			Chart:  config.Chart{Threshold: -10},
			Option: "threshold",
		},
		{
			Chart:  config.Chart{Method: "scott"},
			Option: "method",
		},
		{
			Chart:  config.Chart{Decimation: "minmax"},
			Option: "decimation",
		},
		{
			Chart:  config.Chart{Curve: "cubic"},
			Option: "curve",
		},
		{
			Chart:  config.Chart{Marker: "star"},
			Option: "marker",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Option, func(t *testing.T) {
			_, err := tt.Chart.Resolve()
			require.Error(t, err)

			var oe config.OptionError
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, tt.Option, oe.Option)
		})
	}

	_, err = config.Chart{Method: "scott"}.Resolve()
	assert.ErrorIs(t, err, stat.ErrMethod)

	_, err = config.Chart{Decimation: "minmax"}.Resolve()
	assert.ErrorIs(t, err, decimate.ErrMode)
}

func TestResolve_Gradient(t *testing.T) {
	c, err := config.Decode(strings.NewReader("type: violin\ngradient: [\"#000000\", \"#ffffff\"]\ngradient-steps: 5\n"))
	require.NoError(t, err)

	set, err := c.Resolve()
	require.NoError(t, err)
	p := set.Layout.Colors.Palette
	require.Len(t, p, 5)
	assert.Equal(t, "#000000", p[0])
	assert.Equal(t, "#ffffff", p[4])
	assert.Equal(t, "#000000", set.Line.Color)

	v := layout.Violin([]layout.ViolinGroup{
		{Name: "a", Values: []float64{1, 2, 3}},
		{Name: "b", Values: []float64{2, 3, 4}},
	}, charts.NewDimension(200, 100), set.Layout)
	require.Len(t, v.Shapes, 2)
	assert.Equal(t, p[0], v.Shapes[0].Color)
	assert.Equal(t, p[1], v.Shapes[1].Color)

	set, err = config.Chart{Gradient: []string{"#000", "#fff"}}.Resolve()
	require.NoError(t, err)
	assert.Len(t, set.Layout.Colors.Palette, config.DefaultSteps)

	set, err = config.Chart{Colors: []string{"#123456"}, Gradient: []string{"#000", "#fff"}}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, charts.Palette{"#123456"}, set.Layout.Colors.Palette, "explicit colors win")

	for _, c := range []config.Chart{
		{Gradient: []string{"#00"}},
		{Gradient: []string{"#000"}, GradientSteps: -1},
	} {
		_, err := c.Resolve()
		var oe config.OptionError
		require.True(t, errors.As(err, &oe))
		assert.Contains(t, oe.Option, "gradient")
	}
}

func TestResolve_Types(t *testing.T) {
	tests := map[string]config.Kind{
		"bar":       config.Bar,
		"Percent":   config.Bar,
		"mekko":     config.Marimekko,
		"histogram": config.Histogram,
		"density":   config.Density,
		"violin":    config.Violin,
		"line":      config.Line,
	}
	for str, kind := range tests {
		set, err := config.Chart{Type: str}.Resolve()
		require.NoError(t, err, str)
		assert.Equal(t, kind, set.Kind, str)
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("type: bar\nwidht: 100\n"))
	assert.Error(t, err)

	c, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Chart{}, c)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "chart.yml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o644))

	c, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "stacked", c.Type)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("CHARTKIT_WIDTH", "1024")
	t.Setenv("CHARTKIT_HIDDEN", "a,b")
	t.Setenv("CHARTKIT_PADDING_INNER", "0.3")

	c := config.Chart{
		Width: 640,
		Title: "kept",
	}
	require.NoError(t, config.FromEnv(&c))
	assert.Equal(t, 1024.0, c.Width)
	assert.Equal(t, "kept", c.Title)
	assert.Equal(t, []string{"a", "b"}, c.Hidden)
	require.NotNil(t, c.PaddingInner)
	assert.Equal(t, 0.3, *c.PaddingInner)

	t.Setenv("CHARTKIT_BINS", "many")
	assert.Error(t, config.FromEnv(&c))
}
