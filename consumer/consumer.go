package consumer

import (
	"bytes"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/ring"
	"github.com/latelog/latelog/sink"
)

// pre-formatted level strings to avoid multiple Write calls
var levelBrackets = [...]string{
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
}

// Config holds consumer configuration
type Config struct {
	// Store to drain (required)
	Store *ring.Store
	// Sink receiving rendered lines (default: sink.Discard). The
	// consumer does not close the sink; the caller owns it.
	Sink sink.Sink
	// Levels prefixes each line with the record's level bracket
	Levels bool
	// Timestamps prefixes each line with the record's coarse timestamp
	Timestamps bool
	// TimestampFormat is the time layout used with Timestamps
	// (default: RFC3339)
	TimestampFormat string
	// PollInterval is how long the background loop sleeps when the
	// store is empty (default: 100µs)
	PollInterval time.Duration
	// DrainTimeout bounds the flush performed by Close (default: 5s)
	DrainTimeout time.Duration
}

// Consumer drains completed slots in sequence order, renders them via
// each record's descriptor, and forwards the text to the sink. Not safe
// for concurrent use: one consumer, one goroutine at a time.
type Consumer struct {
	store        *ring.Store
	sink         sink.Sink
	levels       bool
	timestamps   bool
	tsFormat     string
	pollInterval time.Duration
	drainTimeout time.Duration

	buf     bytes.Buffer // reused render buffer; single consumer, no pool needed
	sinkErr atomic.Pointer[error]

	closed    chan struct{}
	wg        sync.WaitGroup
	started   bool
	closeOnce sync.Once
	closeErr  error
}

// New creates a consumer for the given store.
func New(cfg Config) *Consumer {
	if cfg.Sink == nil {
		cfg.Sink = sink.Discard()
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 100 * time.Microsecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	c := &Consumer{
		store:        cfg.Store,
		sink:         cfg.Sink,
		levels:       cfg.Levels,
		timestamps:   cfg.Timestamps,
		tsFormat:     cfg.TimestampFormat,
		pollInterval: cfg.PollInterval,
		drainTimeout: cfg.DrainTimeout,
		closed:       make(chan struct{}),
	}
	c.buf.Grow(256)
	return c
}

// render formats one record into the reused buffer and forwards it.
func (c *Consumer) render(rec *ring.Record) error {
	c.buf.Reset()
	if c.timestamps {
		ts := time.Unix(0, rec.Nanos)
		c.buf.Write(ts.AppendFormat(c.buf.AvailableBuffer(), c.tsFormat))
		c.buf.WriteByte(' ')
	}
	if c.levels {
		if int(rec.Level) < len(levelBrackets) && rec.Level >= 0 {
			c.buf.WriteString(levelBrackets[rec.Level])
		} else {
			c.buf.WriteString("[UNKNOWN] ")
		}
	}
	if err := rec.Desc.Render(rec.Payload, &c.buf); err != nil {
		// Undecodable payload: count it, forward nothing.
		c.store.Stats().IncrementCorrupt()
		return err
	}
	c.buf.WriteByte('\n')
	return c.sink.Write(c.buf.Bytes())
}

// DrainOne drains the next completed record, waiting up to timeout for
// one to appear. A zero timeout makes a single non-blocking attempt.
// Returns false, with no side effects, when no record was ready in time.
func (c *Consumer) DrainOne(timeout time.Duration) (bool, error) {
	drained, err := c.store.TryDrain(c.render)
	if drained || err != nil || timeout <= 0 {
		return drained, err
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		time.Sleep(c.pollInterval)
		drained, err = c.store.TryDrain(c.render)
		if drained || err != nil {
			return drained, err
		}
	}
	return false, nil
}

// DrainAll drains until no completed slot remains and returns the number
// of records drained. Render and sink errors do not stop the drain; they
// are combined into the returned error. Used for flush-on-shutdown.
func (c *Consumer) DrainAll() (int, error) {
	var (
		n    int
		errs error
	)
	for {
		drained, err := c.store.TryDrain(c.render)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		if !drained {
			return n, errs
		}
		if err == nil {
			n++
		}
	}
}

// Start launches the background drain loop. Call at most once.
func (c *Consumer) Start() {
	c.started = true
	c.wg.Add(1)
	go c.process()
}

// process is the background drain loop.
func (c *Consumer) process() {
	defer c.wg.Done()
	for {
		select {
		case <-c.closed:
			return
		default:
			drained, err := c.store.TryDrain(c.render)
			if err != nil {
				e := err
				c.sinkErr.Store(&e)
			}
			if !drained {
				time.Sleep(c.pollInterval)
			}
		}
	}
}

// Err returns the most recent render or sink error seen by the
// background loop, if any. Errors never stop the loop; a failing log
// line must not wedge the pipeline.
func (c *Consumer) Err() error {
	if e := c.sinkErr.Load(); e != nil {
		return *e
	}
	return nil
}

// Close stops the background loop and flushes remaining records, bounded
// by DrainTimeout. Producers must already be stopped. Safe for repeated
// and concurrent calls; only the first performs the drain, the rest wait
// for it and return the same result.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)
		if c.started {
			c.wg.Wait()
		}

		deadline := time.Now().Add(c.drainTimeout)
		for time.Now().Before(deadline) {
			drained, err := c.store.TryDrain(c.render)
			if err != nil {
				c.closeErr = multierr.Append(c.closeErr, err)
			}
			if !drained {
				break
			}
		}
	})
	return c.closeErr
}
