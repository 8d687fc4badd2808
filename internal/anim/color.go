package anim

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

// RotateHue advances the hue of c by deg degrees and pins it to a fully
// saturated, mid-lightness, opaque colour.
func RotateHue(c mosaic.Color, deg float64) mosaic.Color {
	h, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	out := colorful.Hsl(h, 1, 0.5).Clamped()
	return mosaic.Color{R: out.R, G: out.G, B: out.B, A: 1}
}

// Hue returns the hue of c in degrees.
func Hue(c mosaic.Color) float64 {
	h, _, _ := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return h
}
