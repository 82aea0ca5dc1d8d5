// Package app runs the explorer: one control goroutine that, once per frame,
// applies queued key intents, advances the zoom controller, renders, hands the
// frame to the surface and sleeps out the rest of the frame interval.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fractalzoom/fractal"
	"fractalzoom/hal"
	"fractalzoom/zoom"
)

// Config holds the session parameters.
type Config struct {
	FPS     int
	MaxIter int
	// Workers caps render goroutines; zero means GOMAXPROCS.
	Workers int
	// MaxTicks stops the loop after that many ticks (0 = until quit).
	MaxTicks uint64
	Home     fractal.Viewport
}

// DefaultConfig is 30 frames per second, 512 iterations, the classic view.
func DefaultConfig() Config {
	return Config{
		FPS:     30,
		MaxIter: fractal.MaxIter,
		Home:    fractal.Home,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.MaxIter <= 0 {
		c.MaxIter = d.MaxIter
	}
	if !c.Home.Valid() {
		c.Home = d.Home
	}
	return c
}

// Loop is one exploration session. It is driven from a single goroutine.
type Loop struct {
	cfg      Config
	interval time.Duration

	ctl      *zoom.Controller
	renderer fractal.Renderer

	surf  hal.Surface
	kbd   hal.Keyboard
	clock hal.Clock
	log   *zap.Logger
	m     *Metrics

	seq   uint64
	ticks uint64
}

// New builds a loop against h. m may be nil.
func New(h hal.HAL, cfg Config, m *Metrics) *Loop {
	cfg = cfg.withDefaults()
	log := h.Logger()
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		cfg:      cfg,
		interval: time.Second / time.Duration(cfg.FPS),
		ctl:      zoom.New(cfg.Home),
		renderer: fractal.Renderer{Workers: cfg.Workers},
		surf:     h.Surface(),
		kbd:      h.Keyboard(),
		clock:    h.Clock(),
		log:      log,
		m:        m,
	}
}

// Controller exposes the view state, mainly for tests and the HUD.
func (l *Loop) Controller() *zoom.Controller { return l.ctl }

// Ticks returns how many ticks have completed.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Interval is the target frame time.
func (l *Loop) Interval() time.Duration { return l.interval }

// Run presents an initial frame, then ticks until a quit intent, ctx
// cancellation or the tick budget ends the session. The surface is closed on
// every return path. Cancellation is observed between ticks only.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := l.surf.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close surface: %w", cerr)
		}
	}()

	l.log.Info("frame loop starting",
		zap.Int("fps", l.cfg.FPS),
		zap.Int("max_iter", l.cfg.MaxIter),
		zap.Stringer("view", l.cfg.Home),
	)

	if err := l.guard(l.renderAndPresent); err != nil {
		return err
	}

	for {
		switch {
		case l.ctl.Quitting():
			l.log.Info("quit requested", zap.Uint64("ticks", l.ticks))
			return nil
		case ctx.Err() != nil:
			l.log.Info("frame loop cancelled", zap.Uint64("ticks", l.ticks), zap.Error(ctx.Err()))
			return nil
		case l.cfg.MaxTicks > 0 && l.ticks >= l.cfg.MaxTicks:
			l.log.Info("tick budget reached", zap.Uint64("ticks", l.ticks))
			return nil
		}

		start := l.clock.Now()
		if err := l.guard(l.Step); err != nil {
			return err
		}
		elapsed := l.clock.Now().Sub(start)
		l.m.observeFrame(elapsed, l.interval)

		if elapsed < l.interval {
			l.clock.Sleep(l.interval - elapsed)
		} else {
			l.log.Debug("frame overran",
				zap.Uint64("tick", l.ticks),
				zap.Duration("elapsed", elapsed),
				zap.Duration("interval", l.interval),
			)
		}
	}
}

// Step runs one tick: queued intents, zoom advance, render, present.
func (l *Loop) Step() error {
	l.drainInput()
	l.ctl.Tick()
	l.ticks++
	return l.renderAndPresent()
}

func (l *Loop) drainInput() {
	if l.kbd == nil {
		return
	}
	ch := l.kbd.Events()
	for {
		select {
		case ev := <-ch:
			in, ok := zoom.IntentForRune(ev.Rune)
			if !ok {
				continue
			}
			l.ctl.Apply(in)
			l.log.Debug("intent",
				zap.Stringer("intent", in),
				zap.Stringer("direction", l.ctl.Direction()),
				zap.Float64("speed", l.ctl.Speed()),
			)
		default:
			return
		}
	}
}

func (l *Loop) renderAndPresent() error {
	st := l.ctl.Snapshot()

	start := l.clock.Now()
	buf := l.renderer.Render(st.View, st.Res, l.cfg.MaxIter)
	took := l.clock.Now().Sub(start)
	l.m.observeRender(st, took)

	l.seq++
	f := hal.Frame{Seq: l.seq, Buf: buf, State: st, Render: took}
	if err := l.surf.Present(f); err != nil {
		return fmt.Errorf("present frame %d: %w", l.seq, err)
	}
	return nil
}
