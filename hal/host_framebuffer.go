package hal

import (
	"fmt"
	"sync"
)

// hostSurface holds the most recently presented frame. The window or headless
// runner reads it from another goroutine.
type hostSurface struct {
	mu       sync.Mutex
	latest   Frame
	have     bool
	closed   bool
	presents uint64
}

func newHostSurface() *hostSurface {
	return &hostSurface{}
}

func (s *hostSurface) Present(f Frame) error {
	if f.Buf == nil {
		return fmt.Errorf("present frame %d: nil buffer", f.Seq)
	}
	if n := f.Buf.Width * f.Buf.Height; len(f.Buf.Pix) != n {
		return fmt.Errorf("present frame %d: %dx%d buffer holds %d pixels", f.Seq, f.Buf.Width, f.Buf.Height, len(f.Buf.Pix))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.latest = f
	s.have = true
	s.presents++
	return nil
}

func (s *hostSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// snapshot returns the latest frame, if any.
func (s *hostSurface) snapshot() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.have
}

func (s *hostSurface) stats() (presents uint64, closed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents, s.closed
}
