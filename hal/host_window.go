//go:build cgo

package hal

import (
	"context"
	"errors"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"fractalzoom/internal/buildinfo"
	"fractalzoom/internal/palette"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	// Size is the window edge in pixels; frames are stretched to fill it.
	Size int
	HUD  bool
}

// RunWindow opens a desktop window, runs session on its own goroutine against
// a HAL backed by that window, and blocks until both have finished. Closing
// the window cancels the session's context.
func RunWindow(cfg WindowConfig, log *zap.Logger, session func(context.Context, HAL) error) error {
	if cfg.Size <= 0 {
		cfg.Size = 768
	}
	h := newHostHAL(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &hostGame{
		h:      h,
		size:   cfg.Size,
		cancel: cancel,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	if cfg.HUD {
		g.hud = newHUD(cfg.Size, 4)
	}
	// The session starts on the first Update, once RunGame holds the window.
	// If the window cannot be opened, the session never runs and RunGame's
	// error is returned.
	go func() {
		defer close(g.done)
		g.err = runWhenReady(ctx, g.ready, h, session)
	}()

	ebiten.SetWindowTitle(buildinfo.Title())
	ebiten.SetWindowSize(cfg.Size, cfg.Size)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)

	cancel()
	<-g.done
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.err
}

type hostGame struct {
	h    *hostHAL
	size int
	hud  *hud

	cancel    context.CancelFunc
	ready     chan struct{}
	readyOnce sync.Once
	done      chan struct{}
	err       error

	seq     uint64
	frame   Frame
	rgba    []byte
	fbImg   *ebiten.Image
	hudImg  *ebiten.Image
	hudSeen uint64
}

func (g *hostGame) Update() error {
	g.readyOnce.Do(func() { close(g.ready) })
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		g.cancel()
	}
	g.h.kbd.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	f, ok := g.h.surf.snapshot()
	if !ok {
		return
	}
	if f.Seq != g.seq || g.fbImg == nil {
		g.upload(f)
	}

	w, h := g.frame.Buf.Width, g.frame.Buf.Height
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.size)/float64(w), float64(g.size)/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.fbImg, op)

	if g.hud != nil {
		if g.hudImg == nil || g.hudSeen != g.seq {
			img := g.hud.draw(hudLines(g.frame, ebiten.ActualFPS()))
			if g.hudImg == nil {
				g.hudImg = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
			}
			g.hudImg.WritePixels(img.Pix)
			g.hudSeen = g.seq
		}
		screen.DrawImage(g.hudImg, nil)
	}
}

// upload colours f and copies it to the GPU image, reallocating when the
// frame size changed.
func (g *hostGame) upload(f Frame) {
	w, h := f.Buf.Width, f.Buf.Height
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.rgba = make([]byte, w*h*4)
	}
	palette.Colorize(g.rgba, f.Buf.Pix)
	g.fbImg.WritePixels(g.rgba)
	g.frame = f
	g.seq = f.Seq
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
