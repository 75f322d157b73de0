package sink

import (
	"bufio"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// FileSink appends rendered lines to a file through a buffered writer.
// There is no rotation or retention handling; that is out of scope for
// the pipeline and belongs to external tooling.
type FileSink struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
}

// FileConfig holds file sink configuration
type FileConfig struct {
	// Path of the log file; created if missing, appended to otherwise
	Path string
	// BufferSize is the bufio buffer size (default: 64KiB)
	BufferSize int
}

// NewFileSink opens (or creates) the file in append mode.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Path == "" {
		return nil, errors.New("sink: file path is required")
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 64 * 1024
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "sink: open %s", cfg.Path)
	}
	return &FileSink{
		file: f,
		buf:  bufio.NewWriterSize(f, cfg.BufferSize),
	}, nil
}

// Write appends one rendered line to the file buffer.
func (s *FileSink) Write(p []byte) error {
	s.mu.Lock()
	_, err := s.buf.Write(p)
	s.mu.Unlock()
	return err
}

// Flush pushes buffered lines to the OS without closing the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Flush()
}

// Close flushes buffered lines, syncs and closes the file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.buf.Flush(); err != nil {
		return errors.Wrap(err, "sink: flush")
	}
	if err := s.file.Sync(); err != nil {
		return errors.Wrap(err, "sink: sync")
	}
	return errors.Wrap(s.file.Close(), "sink: close")
}
