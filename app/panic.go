package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
)

// PanicError is a panic recovered from inside a tick.
type PanicError struct {
	Tick  uint64
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in tick %d: %v", e.Tick, e.Value)
}

// guard runs fn and turns a panic into a *PanicError, logging it with its
// stack. A panicking tick ends the session.
func (l *Loop) guard(fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		pe := &PanicError{Tick: l.ticks, Value: v, Stack: debug.Stack()}
		var lines []string
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
		l.log.Error("frame loop panic",
			zap.Uint64("tick", pe.Tick),
			zap.Any("panic", v),
			zap.Strings("stack", lines),
		)
		err = pe
	}()
	return fn()
}
