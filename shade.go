package mandel

import "image/color"

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of points that did not escape.
var Black = RGB{}

// Shade maps an escape time to a color: red is b×4, green and blue are b.
//
// The red channel wraps modulo 256, so limits above 63 fold back toward dark
// red instead of saturating.
func Shade(b uint8) RGB {
	return RGB{R: b * 4, G: b, B: b}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}
