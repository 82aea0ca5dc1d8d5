package fractal

import "math"

// escapeRadiusSq is the bailout on |z|². Smooth colouring takes
// log2(log(|z|²)/2 / log 2), which needs |z|² > 1 at escape; any radius above 1
// keeps that argument positive. Lowering it to 1 or below requires guarding
// the logs in Escape.
const escapeRadiusSq = 4.0

// colorFreq sets how fast intensity cycles with the smooth iteration count.
const colorFreq = 0.16

// peakIntensity is the amplitude of the intensity wave before clamping.
const peakIntensity = 230

var invLn2 = 1 / math.Ln2

// Escape iterates z ← z² + c from z = 0 and returns the smooth (normalized)
// iteration count. escaped is false when c survived maxIter updates, in which
// case smooth is exactly maxIter.
func Escape(cx, cy float64, maxIter int) (smooth float64, escaped bool) {
	var zx, zy, zx2, zy2 float64
	n := 0
	for n < maxIter {
		zx2, zy2 = zx*zx, zy*zy
		if zx2+zy2 > escapeRadiusSq {
			break
		}
		zy = 2*zx*zy + cy
		zx = zx2 - zy2 + cx
		n++
	}
	if n >= maxIter {
		return float64(maxIter), false
	}

	logZn := math.Log(zx2+zy2) / 2
	nu := math.Log(logZn*invLn2) * invLn2
	return float64(n) + 1 - nu, true
}

// Intensity maps a smooth iteration count to a brightness. The mapping is a
// clamped sine, so brightness cycles rather than growing with depth.
func Intensity(smooth float64) uint8 {
	v := math.Sin(colorFreq*smooth) * peakIntensity
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Pixel is Escape followed by Intensity.
func Pixel(cx, cy float64, maxIter int) uint8 {
	s, _ := Escape(cx, cy, maxIter)
	return Intensity(s)
}
