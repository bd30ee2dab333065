// Package palette holds the garden's color helpers: random palette picks,
// linear RGB blends and edge darkening.
package palette

import (
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA returns the opaque color.RGBA for c.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WithAlpha returns c as a non-premultiplied color with alpha in [0,1].
func (c Color) WithAlpha(a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Pick returns a uniformly random entry of list. list must not be empty.
func Pick(list []Color) Color {
	return list[rand.IntN(len(list))]
}

// Mix linearly interpolates a toward b. ratio is clamped to [0,1] and each
// channel is rounded to the nearest integer.
func Mix(a, b Color, ratio float64) Color {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, ratio).Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}

// Darken subtracts amount from every channel, flooring at zero.
func Darken(c Color, amount uint8) Color {
	sub := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return Color{R: sub(c.R), G: sub(c.G), B: sub(c.B)}
}
