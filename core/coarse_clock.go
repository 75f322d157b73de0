package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNanos     atomic.Int64
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once. The goroutine runs for the
// lifetime of the process; this is intentional because logging
// typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseNanos.Store(time.Now().UnixNano())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				coarseNanos.Store(time.Now().UnixNano())
			}
		}()
	})
}

// CoarseNow returns the most recently cached wall-clock time in Unix
// nanoseconds. Producers stamp record headers with it instead of paying
// for a time syscall on every log call. Returns 0 until StartCoarseClock
// has been called.
func CoarseNow() int64 {
	return coarseNanos.Load()
}
