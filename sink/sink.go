package sink

import (
	"io"
	"os"
	"sync"
)

// Sink receives rendered log lines from the consumer, one complete line
// per Write call, in drain order.
type Sink interface {
	// Write forwards one rendered line
	Write(p []byte) error

	// Close flushes and releases resources
	Close() error
}

// isConcurrentSafeWriter returns true if the writer is known to be safe
// for concurrent Write calls, allowing the sink to skip locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// WriterSink adapts any io.Writer to the Sink interface. Writes are
// serialized with a mutex unless the writer is known to be safe for
// concurrent use; the lock is held only for the actual I/O.
type WriterSink struct {
	mu             sync.Mutex
	w              io.Writer
	concurrentSafe bool
}

// NewWriterSink wraps w. Set concurrentSafe for writers that are
// goroutine-safe on their own; it is detected automatically for
// io.Discard and *os.File.
func NewWriterSink(w io.Writer, concurrentSafe bool) *WriterSink {
	return &WriterSink{
		w:              w,
		concurrentSafe: concurrentSafe || isConcurrentSafeWriter(w),
	}
}

// Write forwards one rendered line to the underlying writer.
func (s *WriterSink) Write(p []byte) error {
	if s.concurrentSafe {
		_, err := s.w.Write(p)
		return err
	}
	s.mu.Lock()
	_, err := s.w.Write(p)
	s.mu.Unlock()
	return err
}

// Close is a no-op; the caller owns the wrapped writer.
func (s *WriterSink) Close() error {
	return nil
}

// Discard returns a sink that throws every line away. Used by benchmarks
// and as a safe default.
func Discard() Sink {
	return NewWriterSink(io.Discard, true)
}
