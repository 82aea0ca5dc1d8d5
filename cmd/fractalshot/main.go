// Command fractalshot renders one viewport to a PNG with the explorer's kernel
// and palette.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"fractalzoom/fractal"
	"fractalzoom/internal/palette"
)

type options struct {
	view    fractal.Viewport
	size    int
	iter    int
	workers int
	gray    bool
}

func main() {
	var (
		opt     options
		outPath = flag.String("out", "mandel.png", "Output PNG file.")
	)
	flag.Float64Var(&opt.view.Xmin, "xmin", fractal.Home.Xmin, "Left edge of the viewport.")
	flag.Float64Var(&opt.view.Xmax, "xmax", fractal.Home.Xmax, "Right edge of the viewport.")
	flag.Float64Var(&opt.view.Ymin, "ymin", fractal.Home.Ymin, "Top edge of the viewport.")
	flag.Float64Var(&opt.view.Ymax, "ymax", fractal.Home.Ymax, "Bottom edge of the viewport.")
	flag.IntVar(&opt.size, "size", 1024, "Image edge in pixels.")
	flag.IntVar(&opt.iter, "iter", fractal.MaxIter, "Iteration cap per pixel.")
	flag.IntVar(&opt.workers, "workers", 0, "Render goroutines (0 = GOMAXPROCS).")
	flag.BoolVar(&opt.gray, "gray", false, "Write raw intensities instead of the magma palette.")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fatalf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Create(*outPath)
	if err != nil {
		fatalf("create %s: %v", *outPath, err)
	}
	start := time.Now()
	if err := run(f, opt); err != nil {
		_ = f.Close()
		fatalf("render: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("close %s: %v", *outPath, err)
	}
	log.Info("wrote image",
		zap.String("path", *outPath),
		zap.Stringer("view", opt.view),
		zap.Int("size", opt.size),
		zap.Duration("took", time.Since(start)),
	)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(w io.Writer, opt options) error {
	if !opt.view.Valid() {
		return fmt.Errorf("empty viewport %s", opt.view)
	}
	if opt.size < 2 || opt.size > 16384 {
		return fmt.Errorf("size out of range: %d", opt.size)
	}
	if opt.iter <= 0 {
		return fmt.Errorf("iter must be positive, got %d", opt.iter)
	}

	r := fractal.Renderer{Workers: opt.workers}
	buf := r.Render(opt.view, fractal.Resolution{Width: opt.size, Height: opt.size}, opt.iter)

	var img image.Image
	if opt.gray {
		img = buf.Gray()
	} else {
		img = palette.Image(buf.Pix, buf.Width, buf.Height)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
