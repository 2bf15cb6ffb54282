package retry

import "time"

// Clock abstracts timer creation so backoff waits can be driven
// deterministically in tests. Production code uses RealClock.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer abstracts time.Timer for fake clocks.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock is a Clock backed by the time package. The zero value is ready
// to use and safe for concurrent use.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }

// NewTimer creates a timer that fires after d.
func (RealClock) NewTimer(d time.Duration) Timer {
	return &realTimer{inner: time.NewTimer(d)}
}

type realTimer struct {
	inner *time.Timer
}

func (t *realTimer) C() <-chan time.Time { return t.inner.C }
func (t *realTimer) Stop() bool          { return t.inner.Stop() }
