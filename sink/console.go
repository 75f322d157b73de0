package sink

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ConsoleSink writes rendered lines to stdout or stderr. When the
// destination is a terminal each line is written through unbuffered so
// it appears immediately; when output is piped or redirected, lines go
// through a bufio.Writer and are flushed on Close.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
	buf *bufio.Writer // nil when writing to a terminal
}

// ConsoleConfig holds console sink configuration
type ConsoleConfig struct {
	// UseStderr writes to stderr instead of stdout
	UseStderr bool
	// BufferSize is the bufio buffer size for non-terminal output
	// (default: 32KiB)
	BufferSize int
}

// NewConsoleSink creates a console sink, detecting whether the
// destination is a terminal.
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	f := os.Stdout
	if cfg.UseStderr {
		f = os.Stderr
	}
	s := &ConsoleSink{out: f}
	if !term.IsTerminal(int(f.Fd())) {
		if cfg.BufferSize <= 0 {
			cfg.BufferSize = 32 * 1024
		}
		s.buf = bufio.NewWriterSize(f, cfg.BufferSize)
		s.out = s.buf
	}
	return s
}

// Write forwards one rendered line.
func (s *ConsoleSink) Write(p []byte) error {
	s.mu.Lock()
	_, err := s.out.Write(p)
	s.mu.Unlock()
	return err
}

// Close flushes any buffered output. The underlying std stream is not
// closed.
func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		return s.buf.Flush()
	}
	return nil
}
