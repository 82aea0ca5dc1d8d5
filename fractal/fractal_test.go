package fractal

import (
	"bytes"
	"math"
	"testing"
)

func TestEscapeOriginNeverEscapes(t *testing.T) {
	smooth, escaped := Escape(0, 0, MaxIter)
	if escaped {
		t.Fatal("expected origin to stay bounded")
	}
	if smooth != MaxIter {
		t.Fatalf("expected smooth=%d, got %v", MaxIter, smooth)
	}

	want := Intensity(float64(MaxIter))
	if got := Pixel(0, 0, MaxIter); got != want {
		t.Fatalf("expected intensity %d, got %d", want, got)
	}
	// sin(0.16*512)*230 ≈ 54.3
	if want != 54 {
		t.Fatalf("expected interior intensity 54, got %d", want)
	}
}

func TestEscapeFarPointEscapesOnFirstStep(t *testing.T) {
	smooth, escaped := Escape(100, 100, MaxIter)
	if !escaped {
		t.Fatal("expected 100+100i to escape")
	}
	if smooth >= 1 {
		t.Fatalf("expected smooth iteration below 1, got %v", smooth)
	}
	// One update lands on c itself, |z|² = 20000.
	want := 2 - math.Log2(math.Log2(math.Sqrt(20000)))
	if math.Abs(smooth-want) > 1e-12 {
		t.Fatalf("expected smooth=%v, got %v", want, smooth)
	}
	if got := Intensity(smooth); got != 0 {
		t.Fatalf("expected negative smooth to clamp to 0, got %d", got)
	}
}

func TestEscapeSmoothDecreasesAwayFromSet(t *testing.T) {
	// Left of the tip at -2 every point escapes after one update, and the
	// smooth count falls off gradually with distance.
	prev, _ := Escape(-2.01, 0, MaxIter)
	for i := 1; i <= 200; i++ {
		cx := -2.01 - float64(i)*0.005
		s, escaped := Escape(cx, 0, MaxIter)
		if !escaped {
			t.Fatalf("expected %v to escape", cx)
		}
		if s >= prev {
			t.Fatalf("expected smooth to decrease at cx=%v: %v >= %v", cx, s, prev)
		}
		if prev-s > 0.05 {
			t.Fatalf("smooth dropped by %v at cx=%v", prev-s, cx)
		}
		prev = s
	}
}

func TestIntensityClamps(t *testing.T) {
	tests := []struct {
		smooth float64
		want   uint8
	}{
		{0, 0},
		{-3, 0},
		{3 * math.Pi / 2 / colorFreq, 0},
	}
	for _, tt := range tests {
		if got := Intensity(tt.smooth); got != tt.want {
			t.Fatalf("Intensity(%v): expected %d, got %d", tt.smooth, tt.want, got)
		}
	}
	if got := Intensity(math.Pi / 2 / colorFreq); got < 229 || got > 230 {
		t.Fatalf("expected peak intensity near 230, got %d", got)
	}
}

func TestViewportPointMapsCorners(t *testing.T) {
	v := Home
	x, y := v.Point(0, 0, 1024, 1024)
	if x != v.Xmin || y != v.Ymin {
		t.Fatalf("expected top-left (%v,%v), got (%v,%v)", v.Xmin, v.Ymin, x, y)
	}
	x, y = v.Point(1023, 1023, 1024, 1024)
	if math.Abs(x-v.Xmax) > 1e-12 || math.Abs(y-v.Ymax) > 1e-12 {
		t.Fatalf("expected bottom-right (%v,%v), got (%v,%v)", v.Xmax, v.Ymax, x, y)
	}
}

func TestViewportValid(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		v    Viewport
		want bool
	}{
		{Home, true},
		{Viewport{Xmin: 1, Xmax: 1, Ymin: 0, Ymax: 1}, false},
		{Viewport{Xmin: 0, Xmax: 1, Ymin: 1, Ymax: 0}, false},
		{Viewport{Xmin: -inf, Xmax: inf, Ymin: 0, Ymax: 1}, false},
		{Viewport{Xmin: -math.MaxFloat64, Xmax: math.MaxFloat64, Ymin: 0, Ymax: 1}, false},
		{Viewport{Xmin: math.NaN(), Xmax: 1, Ymin: 0, Ymax: 1}, false},
	}
	for i, tt := range tests {
		if got := tt.v.Valid(); got != tt.want {
			t.Fatalf("case %d %s: expected %v, got %v", i, tt.v, tt.want, got)
		}
	}
}

func TestViewportScaledKeepsCenter(t *testing.T) {
	v := Viewport{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}
	cx, cy := v.Center()
	s := v.Scaled(0.25)
	sx, sy := s.Center()
	if math.Abs(sx-cx) > 1e-15 || math.Abs(sy-cy) > 1e-15 {
		t.Fatalf("expected centre (%v,%v), got (%v,%v)", cx, cy, sx, sy)
	}
	if math.Abs(s.Width()-v.Width()*0.25) > 1e-15 {
		t.Fatalf("expected width %v, got %v", v.Width()*0.25, s.Width())
	}
	if !s.Valid() {
		t.Fatal("expected scaled viewport to stay valid")
	}
}

func TestRenderCenterPixelInsideCardioid(t *testing.T) {
	buf := Render(Home, Resolution{Width: 1024, Height: 1024}, MaxIter)
	if buf.Width != 1024 || buf.Height != 1024 || len(buf.Pix) != 1024*1024 {
		t.Fatalf("unexpected buffer shape %dx%d len=%d", buf.Width, buf.Height, len(buf.Pix))
	}

	cx, cy := Home.Point(512, 512, 1024, 1024)
	if math.Abs(cx+0.5) > 0.01 || math.Abs(cy) > 0.01 {
		t.Fatalf("expected centre near -0.5+0i, got %v%+vi", cx, cy)
	}
	if _, escaped := Escape(cx, cy, MaxIter); escaped {
		t.Fatal("expected centre pixel inside the main cardioid")
	}
	want := Intensity(float64(MaxIter))
	if got := buf.At(512, 512); got != want {
		t.Fatalf("expected centre intensity %d, got %d", want, got)
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	v := Viewport{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}
	res := Resolution{Width: 96, Height: 80}

	ref := Renderer{Workers: 1}.Render(v, res, 256)
	for _, workers := range []int{0, 2, 7, 64} {
		got := Renderer{Workers: workers}.Render(v, res, 256)
		if !bytes.Equal(ref.Pix, got.Pix) {
			t.Fatalf("workers=%d: buffer differs from single-worker render", workers)
		}
	}
	again := Renderer{Workers: 1}.Render(v, res, 256)
	if !bytes.Equal(ref.Pix, again.Pix) {
		t.Fatal("expected repeated render to be identical")
	}
}

func TestRenderMatchesPixel(t *testing.T) {
	v := Home
	res := Resolution{Width: 17, Height: 9}
	buf := Render(v, res, 64)
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			cx, cy := v.Point(x, y, res.Width, res.Height)
			if want, got := Pixel(cx, cy, 64), buf.At(x, y); want != got {
				t.Fatalf("pixel (%d,%d): expected %d, got %d", x, y, want, got)
			}
		}
	}
}

func TestRenderDegenerateResolution(t *testing.T) {
	buf := Render(Home, Resolution{Width: 1, Height: 5}, MaxIter)
	if buf.Width != 1 || buf.Height != 5 {
		t.Fatalf("expected 1x5, got %dx%d", buf.Width, buf.Height)
	}
	for i, p := range buf.Pix {
		if p != 0 {
			t.Fatalf("expected zeroed pixel %d, got %d", i, p)
		}
	}
}

func TestBufferGrayShares(t *testing.T) {
	buf := NewBuffer(4, 3)
	g := buf.Gray()
	buf.Pix[2*4+1] = 200
	if got := g.GrayAt(1, 2).Y; got != 200 {
		t.Fatalf("expected gray view to share pixels, got %d", got)
	}
}
