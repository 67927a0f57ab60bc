// Package style defines the value records describing how drawables are
// painted: colors, per-kind style records with optional fields, and the
// merge operation implementing layered style resolution.
package style

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an alpha channel.
// Channels are 0..255, Alpha is 0..1.
type Color struct {
	R, G, B int
	Alpha   float64
}

// RGB builds an opaque color. This is the documented 3-tuple to 4-tuple
// widening: alpha defaults to 1.
func RGB(r, g, b int) Color { return Color{r, g, b, 1} }

// RGBA builds a color with an explicit alpha in [0, 1].
func RGBA(r, g, b int, alpha float64) Color { return Color{r, g, b, alpha} }

// Hex parses colors of the form "#rgb" or "#rrggbb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color: %w", err)
	}
	r, g, b := c.RGB255()
	return Color{int(r), int(g), int(b), 1}, nil
}

// Validate checks channel and alpha ranges.
func (c Color) Validate() error {
	for _, ch := range [...]struct {
		name string
		v    int
	}{{"R", c.R}, {"G", c.G}, {"B", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return fmt.Errorf("color: channel %s value %d out of range [0, 255]", ch.name, ch.v)
		}
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("color: alpha value %v out of range [0, 1]", c.Alpha)
	}
	return nil
}

// NRGBA converts to the standard library color type, scaling the extra
// opacity factor into the alpha channel.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	a := c.Alpha * opacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{
		R: uint8(c.R),
		G: uint8(c.G),
		B: uint8(c.B),
		A: uint8(a*255 + 0.5),
	}
}

// Lighten blends the color toward white in Lab space by t in [0, 1].
// Used to derive the weak variants of theme colors.
func (c Color) Lighten(t float64) Color {
	return c.blend(colorful.Color{R: 1, G: 1, B: 1}, t)
}

// Darken blends the color toward black in Lab space by t in [0, 1].
func (c Color) Darken(t float64) Color {
	return c.blend(colorful.Color{}, t)
}

func (c Color) blend(target colorful.Color, t float64) Color {
	from := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := from.BlendLab(target, t).Clamped().RGB255()
	return Color{int(r), int(g), int(b), c.Alpha}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, c.Alpha)
}
