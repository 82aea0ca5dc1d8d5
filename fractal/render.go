package fractal

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Renderer fills buffers using a bounded number of goroutines, one row per
// work item.
type Renderer struct {
	// Workers caps concurrent rows. Zero or negative means GOMAXPROCS.
	Workers int
}

var defaultRenderer Renderer

// Render fills a new buffer for v at res using the default renderer.
func Render(v Viewport, res Resolution, maxIter int) *Buffer {
	return defaultRenderer.Render(v, res, maxIter)
}

// Render fills a new buffer for v at res. It returns only after every row is
// written. The result does not depend on Workers.
//
// Resolutions smaller than 2×2 have no pixel step and come back zeroed.
func (r Renderer) Render(v Viewport, res Resolution, maxIter int) *Buffer {
	buf := NewBuffer(res.Width, res.Height)
	if res.Width < 2 || res.Height < 2 {
		return buf
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sx, sy := v.Step(res.Width, res.Height)

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < res.Height; y++ {
		row := buf.Row(y)
		cy := v.Ymin + float64(y)*sy
		g.Go(func() error {
			for x := range row {
				row[x] = Pixel(v.Xmin+float64(x)*sx, cy, maxIter)
			}
			return nil
		})
	}
	// Rows never fail; Wait is the barrier.
	_ = g.Wait()
	return buf
}
