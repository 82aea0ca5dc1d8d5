// Package fractal is the escape-time kernel: it maps a rectangle of the
// complex plane onto a grid of 8-bit intensities.
//
// Everything here is a pure function of its arguments. A render reads only the
// viewport it is given and writes only the buffer it allocates, so any number
// of renders may run at once.
package fractal

import (
	"fmt"
	"image"
	"math"
)

// MaxIter is the iteration cap used by the interactive explorer.
const MaxIter = 512

// Viewport is a rectangle of the complex plane.
type Viewport struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Home is the view the explorer starts from.
var Home = Viewport{
	Xmin: -2.0,
	Xmax: 1.0,
	Ymin: -1.5,
	Ymax: 1.5,
}

// Valid reports whether v has positive, finite extent on both axes. NaN and
// infinite bounds are never valid.
func (v Viewport) Valid() bool {
	w, h := v.Width(), v.Height()
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

func (v Viewport) Width() float64  { return v.Xmax - v.Xmin }
func (v Viewport) Height() float64 { return v.Ymax - v.Ymin }

// Center returns the midpoint of v.
func (v Viewport) Center() (x, y float64) {
	return (v.Xmin + v.Xmax) / 2, (v.Ymin + v.Ymax) / 2
}

// Scaled returns v with both ranges multiplied by f, recentred on the same
// midpoint.
func (v Viewport) Scaled(f float64) Viewport {
	xMid, yMid := v.Center()
	xRange := v.Width() * f
	yRange := v.Height() * f
	return Viewport{
		Xmin: xMid - xRange/2,
		Xmax: xMid + xRange/2,
		Ymin: yMid - yRange/2,
		Ymax: yMid + yRange/2,
	}
}

// Translated returns v shifted by dx, dy.
func (v Viewport) Translated(dx, dy float64) Viewport {
	return Viewport{
		Xmin: v.Xmin + dx,
		Xmax: v.Xmax + dx,
		Ymin: v.Ymin + dy,
		Ymax: v.Ymax + dy,
	}
}

// Step returns the distance between neighbouring pixel centres for a w×h grid
// whose first and last pixels sit on the viewport edges.
func (v Viewport) Step(w, h int) (sx, sy float64) {
	return v.Width() / float64(w-1), v.Height() / float64(h-1)
}

// Point maps pixel (x, y) of a w×h grid to the complex plane.
func (v Viewport) Point(x, y, w, h int) (cx, cy float64) {
	sx, sy := v.Step(w, h)
	return v.Xmin + float64(x)*sx, v.Ymin + float64(y)*sy
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", v.Xmin, v.Xmax, v.Ymin, v.Ymax)
}

// Resolution is the size of a render in pixels.
type Resolution struct {
	Width, Height int
}

func (r Resolution) Pixels() int { return r.Width * r.Height }

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Buffer holds one intensity per pixel, row major.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a zeroed w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the intensity at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Row returns the slice backing row y.
func (b *Buffer) Row(y int) []uint8 {
	off := y * b.Width
	return b.Pix[off : off+b.Width]
}

// Gray wraps the buffer as an image without copying.
func (b *Buffer) Gray() *image.Gray {
	return &image.Gray{
		Pix:    b.Pix,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}
