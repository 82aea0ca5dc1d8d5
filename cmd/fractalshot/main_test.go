package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"fractalzoom/fractal"
	"fractalzoom/internal/palette"
)

func TestRunWritesPalettedPNG(t *testing.T) {
	var out bytes.Buffer
	opt := options{view: fractal.Home, size: 64, iter: 64}
	if err := run(&out, opt); err != nil {
		t.Fatalf("run: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("expected 64x64, got %s", b)
	}

	cx, cy := fractal.Home.Point(32, 32, 64, 64)
	want := palette.Magma[fractal.Pixel(cx, cy, 64)]
	r, g, b, _ := img.At(32, 32).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Fatalf("expected centre colour %v, got %v", want, img.At(32, 32))
	}
}

func TestRunGray(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, options{view: fractal.Home, size: 16, iter: 32, gray: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Fatalf("expected *image.Gray, got %T", img)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []options{
		{view: fractal.Viewport{Xmin: 1, Xmax: 1, Ymin: 0, Ymax: 1}, size: 16, iter: 8},
		{view: fractal.Home, size: 1, iter: 8},
		{view: fractal.Home, size: 16, iter: 0},
	}
	for i, opt := range tests {
		if err := run(&bytes.Buffer{}, opt); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
