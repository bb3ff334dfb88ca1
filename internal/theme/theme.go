package theme

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Name identifies one of the page theme colors.
type Name string

const (
	Purple Name = "purple"
	Blue   Name = "blue"
	Green  Name = "green"
	Orange Name = "orange"
	Pink   Name = "pink"
)

// Palette lists the selectable themes in picker order.
var Palette = []Name{Purple, Blue, Green, Orange, Pink}

// RGB is a 24-bit theme color.
type RGB struct {
	R, G, B uint8
}

// Tailwind 600 shades.
var table = map[Name]RGB{
	Purple: {147, 51, 234},
	Blue:   {37, 99, 235},
	Green:  {22, 163, 74},
	Orange: {234, 88, 12},
	Pink:   {219, 39, 119},
}

// Lookup returns the RGB triple for a known theme name.
func Lookup(name Name) (RGB, bool) {
	c, ok := table[name]
	return c, ok
}

// Resolve returns the triple for name, or the triple for fallback when name
// is not a known theme. An unknown fallback resolves to purple.
func Resolve(name, fallback Name) RGB {
	if c, ok := table[name]; ok {
		return c
	}
	if c, ok := table[fallback]; ok {
		return c
	}
	return table[Purple]
}

// Known reports whether name is part of the palette.
func Known(name Name) bool {
	_, ok := table[name]
	return ok
}

func index(name Name) int {
	for i, n := range Palette {
		if n == name {
			return i
		}
	}
	return -1
}

// Next returns the theme after name in the palette, wrapping around.
// Unknown names start from the first entry.
func Next(name Name) Name {
	i := index(name)
	if i < 0 {
		return Palette[0]
	}
	return Palette[(i+1)%len(Palette)]
}

// Prev returns the theme before name in the palette, wrapping around.
func Prev(name Name) Name {
	i := index(name)
	if i < 0 {
		return Palette[len(Palette)-1]
	}
	return Palette[(i+len(Palette)-1)%len(Palette)]
}

// NRGBA returns the color with the given opacity (0..1) as straight alpha.
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	a := math.Round(math.Max(0, math.Min(1, alpha)) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Colorful converts the triple into a go-colorful color for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the "#rrggbb" form.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Mix blends c toward other by t (0 keeps c, 1 yields other) in Lab space.
func (c RGB) Mix(other RGB, t float64) RGB {
	r, g, b := c.Colorful().BlendLab(other.Colorful(), t).Clamped().RGB255()
	return RGB{r, g, b}
}
