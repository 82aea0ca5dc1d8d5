package hal

import "time"

// hostClock is wall time.
type hostClock struct{}

func (hostClock) Now() time.Time        { return time.Now() }
func (hostClock) Sleep(d time.Duration) { time.Sleep(d) }
