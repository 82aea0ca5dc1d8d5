package hal

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Keys is typed into the keyboard one rune per KeyEvery.
	Keys     string
	KeyEvery time.Duration
}

// RunHeadless runs session against a host HAL with no window. Frames are kept
// by the surface and counted; keys come from cfg.Keys.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, log *zap.Logger, session func(context.Context, HAL) error) error {
	if cfg.KeyEvery <= 0 {
		cfg.KeyEvery = time.Second / 30
	}
	h := newHostHAL(log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	typed := make(chan struct{})
	go func() {
		defer close(typed)
		typeKeys(ctx, h.kbd, cfg.Keys, cfg.KeyEvery)
	}()

	err := session(ctx, h)
	cancel()
	<-typed

	presents, closed := h.surf.stats()
	h.log.Info("headless session finished",
		zap.Uint64("frames", presents),
		zap.Bool("surface_closed", closed),
	)
	if f, ok := h.surf.snapshot(); ok {
		h.log.Info("last frame",
			zap.Uint64("seq", f.Seq),
			zap.Stringer("view", f.State.View),
			zap.Stringer("res", f.State.Res),
		)
	}
	return err
}

func typeKeys(ctx context.Context, kbd *hostKeyboard, keys string, every time.Duration) {
	if keys == "" {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for _, r := range keys {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			kbd.push(r)
		}
	}
}
