package charts_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/midbel/chartkit"
)

func TestPalette(t *testing.T) {
	assert.Len(t, charts.Category10, 10)
	assert.Len(t, charts.Tableau10, 10)
	assert.Len(t, charts.Pastel8, 8)
	assert.Equal(t, "#1f77b4", charts.Category10[0])

	p, ok := charts.PaletteByName("Tableau10")
	assert.True(t, ok)
	assert.Equal(t, charts.Tableau10, p)
	_, ok = charts.PaletteByName("rainbow")
	assert.False(t, ok)
}

func TestAssigner_Index(t *testing.T) {
	a := charts.Assigner{
		Palette: charts.Palette{"a", "b", "c"},
	}
	assert.Equal(t, "a", a.Assign(0, "x"))
	assert.Equal(t, "b", a.Assign(4, "x"))
	assert.Equal(t, "c", a.Assign(-1, ""))

	var empty charts.Assigner
	assert.Equal(t, charts.Category10[3], empty.Assign(3, ""), "empty palette falls back to Category10")
}

func TestHashID(t *testing.T) {
	assert.Equal(t, int32(0), charts.HashID(""))
	assert.Equal(t, int32(97), charts.HashID("a"))
	assert.Equal(t, int32(3105), charts.HashID("ab"))
	assert.Equal(t, int32(99162322), charts.HashID("hello"))
	assert.Equal(t, int32(-2147483648), charts.HashID("polygenelubricants"), "arithmetic wraps to 32 bits")
}

func TestAssigner_Hash(t *testing.T) {
	a := charts.Assigner{
		Palette: charts.Palette{"a", "b", "c"},
		Hash:    true,
	}
	assert.Equal(t, "a", a.Assign(0, "ab"))
	assert.Equal(t, a.Assign(0, "ab"), a.Assign(7, "ab"), "color depends on the id only")
	assert.Equal(t, "c", a.Assign(0, "polygenelubricants"))
	assert.Equal(t, "b", a.Assign(1, ""), "no id falls back to the index")
}

func TestResolveColor(t *testing.T) {
	a := charts.Assigner{
		Palette: charts.Palette{"a", "b"},
	}
	assert.Equal(t, "red", charts.ResolveColor("red", "blue", a, 1, "s"))
	assert.Equal(t, "blue", charts.ResolveColor("", "blue", a, 1, "s"))
	assert.Equal(t, "b", charts.ResolveColor("", "", a, 1, "s"))
}

func TestGradient(t *testing.T) {
	g, err := charts.NewGradient("#000000", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#000000", g.Map(0))
	assert.Equal(t, "#ffffff", g.Map(1))
	assert.Equal(t, "#000000", g.Map(-3), "values are clamped")
	assert.Equal(t, "#ffffff", g.Map(7))

	p := g.Palette(3)
	require.Len(t, p, 3)
	assert.Equal(t, "#000000", p[0])
	assert.Equal(t, "#ffffff", p[2])
	assert.NotEqual(t, p[0], p[1], "colors are blended between stops")
	assert.NotEqual(t, p[2], p[1])
	assert.Equal(t, p[1][1:3], p[1][3:5], "grey stays grey")
	assert.Equal(t, charts.Palette{"#000000"}, g.Palette(1))

	g, err = charts.NewGradient("#ff0000", "#00ff00", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", g.Map(0.5))
	assert.Equal(t, "#0000ff", g.Map(1))

	g, err = charts.NewGradient("#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", g.Map(0.7))
	assert.Empty(t, g.Palette(0))

	_, err = charts.NewGradient()
	assert.Error(t, err)
	_, err = charts.NewGradient("#12")
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := charts.ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, c)
	assert.Equal(t, "#aabbcc", charts.FormatHex(c))

	_, err = charts.ParseHex("#zzzzzz")
	assert.Error(t, err)
}
