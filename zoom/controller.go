// Package zoom owns the explorer's view: the rectangle being shown, the zoom
// direction and speed, and the render resolution derived from that speed.
package zoom

import (
	"math"

	"fractalzoom/fractal"
)

const (
	// MaxDim is the render size while idle or zooming slowly.
	MaxDim = 1024
	// MinDim is the floor the render size drops to at high zoom speed.
	MinDim = 128

	// zoomStep is the per-tick zoom base, raised to the speed multiplier.
	zoomStep = 1.001
	// speedStep multiplies the speed on each repeated zoom intent.
	speedStep = 1.001
	// panFraction is the share of the axis range one pan moves.
	panFraction = 0.1

	initialSpeed = 1.0
)

// Direction is the active zoom direction.
type Direction uint8

const (
	None Direction = iota
	In
	Out
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "unknown"
	}
}

// State is a copy of the controller taken at one instant. The frame loop
// renders from a State so the kernel never sees a half-updated view.
type State struct {
	View       fractal.Viewport
	Res        fractal.Resolution
	Direction  Direction
	Speed      float64
	ZoomFactor float64
}

// Controller is not safe for concurrent use. The frame loop owns it.
type Controller struct {
	view  fractal.Viewport
	res   fractal.Resolution
	dir   Direction
	speed float64
	// factor is the accumulated per-tick scale applied to the view ranges.
	factor float64

	quit bool
}

// New returns an idle controller showing view at full resolution.
func New(view fractal.Viewport) *Controller {
	return &Controller{
		view:   view,
		res:    Resolution(initialSpeed),
		speed:  initialSpeed,
		factor: 1,
	}
}

// Resolution returns the square render size for a speed multiplier. Faster
// zooms render smaller, never below MinDim.
func Resolution(speed float64) fractal.Resolution {
	scale := (speed - 1) * 100
	dim := int(MaxDim / (1 + scale))
	if dim < MinDim {
		dim = MinDim
	}
	if dim > MaxDim {
		dim = MaxDim
	}
	return fractal.Resolution{Width: dim, Height: dim}
}

func (c *Controller) View() fractal.Viewport  { return c.view }
func (c *Controller) Res() fractal.Resolution { return c.res }
func (c *Controller) Direction() Direction    { return c.dir }
func (c *Controller) Speed() float64          { return c.speed }
func (c *Controller) ZoomFactor() float64     { return c.factor }
func (c *Controller) Quitting() bool          { return c.quit }

// Snapshot copies the current state.
func (c *Controller) Snapshot() State {
	return State{
		View:       c.view,
		Res:        c.res,
		Direction:  c.dir,
		Speed:      c.speed,
		ZoomFactor: c.factor,
	}
}

// StartZoomIn begins zooming in at base speed, cancelling any zoom out.
func (c *Controller) StartZoomIn() { c.start(In) }

// StartZoomOut begins zooming out at base speed, cancelling any zoom in.
func (c *Controller) StartZoomOut() { c.start(Out) }

func (c *Controller) start(d Direction) {
	if c.dir != d {
		c.factor = 1
	}
	c.dir = d
	c.speed = initialSpeed
}

// ZoomIn handles a zoom-in key press: the first press starts the zoom, each
// repeat while it is running speeds it up.
func (c *Controller) ZoomIn() { c.press(In) }

// ZoomOut is ZoomIn for the other direction.
func (c *Controller) ZoomOut() { c.press(Out) }

func (c *Controller) press(d Direction) {
	if c.dir == d {
		c.speed *= speedStep
		return
	}
	c.start(d)
}

// StopZoom ends any zoom and drops the speed back to base.
func (c *Controller) StopZoom() {
	c.dir = None
	c.speed = initialSpeed
	c.factor = 1
}

// ResetView stops zooming and returns to full resolution. The view rectangle
// is left where it is.
func (c *Controller) ResetView() {
	c.StopZoom()
	c.res = Resolution(c.speed)
}

// Quit asks the frame loop to stop after the current tick.
func (c *Controller) Quit() { c.quit = true }

// Tick advances one frame of zoom. Idle ticks leave the view and resolution
// untouched.
//
// A step that would leave the view empty or non-finite (the range collapsing
// below float64 resolution, or overflowing) is not taken: the zoom stops as
// if p had been pressed and the view stays where it was.
func (c *Controller) Tick() {
	factor := c.factor
	switch c.dir {
	case In:
		factor *= math.Pow(zoomStep, c.speed)
	case Out:
		factor /= math.Pow(zoomStep, c.speed)
	default:
		c.factor = 1
		return
	}

	next := c.view.Scaled(factor)
	if !next.Valid() {
		c.ResetView()
		return
	}
	c.factor = factor
	c.res = Resolution(c.speed)
	c.view = next
}

func (c *Controller) PanLeft()  { c.pan(-panFraction*c.view.Width(), 0) }
func (c *Controller) PanRight() { c.pan(panFraction*c.view.Width(), 0) }
func (c *Controller) PanUp()    { c.pan(0, -panFraction*c.view.Height()) }
func (c *Controller) PanDown()  { c.pan(0, panFraction*c.view.Height()) }

func (c *Controller) pan(dx, dy float64) {
	c.view = c.view.Translated(dx, dy)
}
