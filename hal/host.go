package hal

import (
	"context"

	"go.uber.org/zap"
)

type hostHAL struct {
	log  *zap.Logger
	surf *hostSurface
	kbd  *hostKeyboard
	clk  hostClock
}

// New returns a host HAL whose surface keeps the latest frame for a window or
// headless consumer to pick up.
func New(log *zap.Logger) HAL {
	return newHostHAL(log)
}

func newHostHAL(log *zap.Logger) *hostHAL {
	if log == nil {
		log = zap.NewNop()
	}
	return &hostHAL{
		log:  log,
		surf: newHostSurface(),
		kbd:  newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.log }
func (h *hostHAL) Surface() Surface    { return h.surf }
func (h *hostHAL) Keyboard() Keyboard  { return h.kbd }
func (h *hostHAL) Clock() Clock        { return h.clk }

// runWhenReady calls session once ready is closed. If ctx ends first the
// session never runs and nil is returned; the caller reports why.
func runWhenReady(ctx context.Context, ready <-chan struct{}, h HAL, session func(context.Context, HAL) error) error {
	select {
	case <-ready:
	case <-ctx.Done():
		return nil
	}
	return session(ctx, h)
}
