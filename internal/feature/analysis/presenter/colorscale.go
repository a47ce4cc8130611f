package presenter

import (
	"fmt"
	"math"
)

// RGB is a 24-bit colour.
type RGB struct{ R, G, B uint8 }

// Hex returns the CSS form "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// luminance is the WCAG relative luminance in [0, 1].
func (c RGB) luminance() float64 {
	lin := func(v uint8) float64 {
		x := float64(v) / 255
		if x <= 0.03928 {
			return x / 12.92
		}
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Palette is a sequential colour scale from Light (column minimum) to Dark
// (column maximum).
type Palette struct {
	Name  string
	Light RGB
	Dark  RGB
}

// Sequential palettes, endpoints taken from the ColorBrewer single-hue scales.
var (
	Greens  = Palette{Name: "Greens", Light: RGB{0xf7, 0xfc, 0xf5}, Dark: RGB{0x00, 0x44, 0x1b}}
	Oranges = Palette{Name: "Oranges", Light: RGB{0xff, 0xf5, 0xeb}, Dark: RGB{0x7f, 0x27, 0x04}}
	Blues   = Palette{Name: "Blues", Light: RGB{0xf7, 0xfb, 0xff}, Dark: RGB{0x08, 0x30, 0x6b}}
	Purples = Palette{Name: "Purples", Light: RGB{0xfc, 0xfb, 0xfd}, Dark: RGB{0x3f, 0x00, 0x7d}}
)

// At interpolates the palette at t, clamped to [0, 1].
func (p Palette) At(t float64) RGB {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return RGB{
		R: mix(p.Light.R, p.Dark.R),
		G: mix(p.Light.G, p.Dark.G),
		B: mix(p.Light.B, p.Dark.B),
	}
}

// Scale maps the finite values of one column onto a palette.
type Scale struct {
	palette  Palette
	min, max float64
	empty    bool
}

// NewScale computes the column range of values, ignoring NaN and infinities.
func NewScale(p Palette, values []float64) Scale {
	s := Scale{palette: p, min: math.Inf(1), max: math.Inf(-1), empty: true}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.empty = false
		s.min = math.Min(s.min, v)
		s.max = math.Max(s.max, v)
	}
	return s
}

// Color returns the background for v. ok is false for values that are not
// coloured. A column with a single distinct value uses the middle of the palette.
func (s Scale) Color(v float64) (c RGB, ok bool) {
	if s.empty || math.IsNaN(v) || math.IsInf(v, 0) {
		return RGB{}, false
	}
	if s.max == s.min {
		return s.palette.At(0.5), true
	}
	return s.palette.At((v - s.min) / (s.max - s.min)), true
}

// TextColor picks white or black text for legibility on bg.
func TextColor(bg RGB) RGB {
	if bg.luminance() < 0.408 {
		return RGB{0xff, 0xff, 0xff}
	}
	return RGB{0x00, 0x00, 0x00}
}
