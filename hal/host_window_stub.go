//go:build !cgo

package hal

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Size int
	HUD  bool
}

// RunWindow fails on builds without cgo; use -headless there.
func RunWindow(_ WindowConfig, _ *zap.Logger, _ func(context.Context, HAL) error) error {
	return fmt.Errorf("window mode requires cgo (build with CGO_ENABLED=1): %w", ErrNotImplemented)
}
