// Package palette turns kernel intensities into display colours.
package palette

import (
	"image"
	"image/color"

	"github.com/mazznoer/colorgrad"
)

// Span is the intensity that maps to the brightest palette entry. The kernel
// never produces more than 230, so the ramp is stretched to use all of it.
const Span = 230

// Magma is matplotlib's "magma" sampled per raw intensity.
var Magma = build(colorgrad.Magma())

func build(grad colorgrad.Gradient) (lut [256]color.RGBA) {
	for i := range lut {
		t := float64(i) / Span
		if t > 1 {
			t = 1
		}
		r, g, b := grad.At(t).Clamped().RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return lut
}

// Colorize writes src through the palette into dst as RGBA quads. dst must
// hold at least 4*len(src) bytes.
func Colorize(dst []byte, src []uint8) {
	for i, v := range src {
		c := Magma[v]
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}
}

// Image returns a new RGBA image of a w×h intensity grid.
func Image(src []uint8, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Colorize(img.Pix, src[:w*h])
	return img
}
