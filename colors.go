package charts

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/aclements/go-gg/palette"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
	Pastel8    Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	Pastel8 = splitColorString("b3e2cdfdcdaccbd5e8f4cae4e6f5c9fff2aef1e2cccccccc")
}

// PaletteByName returns one of the built-in palettes.
func PaletteByName(name string) (Palette, bool) {
	switch strings.ToLower(name) {
	case "category10", "":
		return Category10, true
	case "tableau10":
		return Tableau10, true
	case "pastel8":
		return Pastel8, true
	default:
		return nil, false
	}
}

func (p Palette) At(index int) string {
	if len(p) == 0 {
		return Category10.At(index)
	}
	index %= len(p)
	if index < 0 {
		index += len(p)
	}
	return p[index]
}

// Assigner gives a color to a series or a datum. When Hash is set and an id
// is available, the color depends only on the id so that it stays stable
// when items are hidden or reordered.
type Assigner struct {
	Palette Palette
	Hash    bool
}

func (a Assigner) Assign(index int, id string) string {
	if a.Hash && id != "" {
		h := int64(HashID(id))
		if h < 0 {
			h = -h
		}
		return a.Palette.At(int(h % int64(a.paletteLen())))
	}
	return a.Palette.At(index)
}

func (a Assigner) paletteLen() int {
	if len(a.Palette) == 0 {
		return len(Category10)
	}
	return len(a.Palette)
}

// HashID computes h = h*31 + c over the UTF-16 code units of id with
// wrapping 32-bit signed arithmetic.
func HashID(id string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(id)) {
		h = h*31 + int32(c)
	}
	return h
}

// ResolveColor picks the first non empty color of the chain: datum color,
// then series color, then the assigner.
func ResolveColor(datum, series string, a Assigner, index int, id string) string {
	if datum != "" {
		return datum
	}
	if series != "" {
		return series
	}
	return a.Assign(index, id)
}

// Gradient maps values of [0, 1] to colors interpolated between stops.
//
// palette.RGBGradient never blends inside its first segment, so the first
// stop is stored twice and values are shifted past that segment in Map.
type Gradient struct {
	grad palette.RGBGradient
}

func NewGradient(colors ...string) (Gradient, error) {
	var g Gradient
	if len(colors) == 0 {
		return g, fmt.Errorf("gradient: no colors given")
	}
	for i, c := range colors {
		rgba, err := ParseHex(c)
		if err != nil {
			return g, err
		}
		if i == 0 {
			g.grad.Colors = append(g.grad.Colors, rgba)
		}
		g.grad.Colors = append(g.grad.Colors, rgba)
	}
	return g, nil
}

func (g Gradient) Map(x float64) string {
	if len(g.grad.Colors) == 0 {
		return ""
	}
	if x < 0 || x != x {
		x = 0
	} else if x > 1 {
		x = 1
	}
	k := float64(len(g.grad.Colors) - 1)
	if k <= 1 {
		return FormatHex(g.grad.Colors[0])
	}
	return FormatHex(g.grad.Map((1 + x*(k-1)) / k))
}

// Palette samples n colors evenly spaced along the gradient, both ends
// included.
func (g Gradient) Palette(n int) Palette {
	if n <= 0 || len(g.grad.Colors) == 0 {
		return nil
	}
	if n == 1 {
		return Palette{g.Map(0)}
	}
	p := make(Palette, n)
	for i := range p {
		p[i] = g.Map(float64(i) / float64(n-1))
	}
	return p
}

// ParseHex parses colors written as #rgb or #rrggbb.
func ParseHex(str string) (color.RGBA, error) {
	var (
		c   = color.RGBA{A: 0xff}
		hex = strings.TrimPrefix(str, "#")
	)
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return c, fmt.Errorf("%s: invalid color", str)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return c, fmt.Errorf("%s: invalid color: %w", str, err)
	}
	c.R = uint8(n >> 16)
	c.G = uint8(n >> 8)
	c.B = uint8(n)
	return c, nil
}

func FormatHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
