// Package hal is the explorer's only contact with the outside world: the
// surface frames are shown on, the keyboard intents come from, the clock the
// frame loop paces against, and the logger.
package hal

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"fractalzoom/fractal"
	"fractalzoom/zoom"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrClosed         = errors.New("surface closed")
)

// Frame is one finished render handed to a Surface. The sender gives up the
// buffer: it must not be written after Present.
type Frame struct {
	Seq    uint64
	Buf    *fractal.Buffer
	State  zoom.State
	Render time.Duration
}

// Surface shows frames. Consecutive frames may differ in size.
type Surface interface {
	Present(f Frame) error
	Close() error
}

// KeyEvent is a typed character.
type KeyEvent struct {
	Rune rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Clock is the time source the frame loop paces against.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// HAL bundles the collaborators a session runs against.
type HAL interface {
	Logger() *zap.Logger
	Surface() Surface
	Keyboard() Keyboard
	Clock() Clock
}
