package natssink

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// Config holds NATS sink configuration
type Config struct {
	// URL of the NATS server (default: nats.DefaultURL)
	URL string
	// Subject to publish rendered lines to
	Subject string
	// Name identifies the connection on the server (default: "latelog")
	Name string
	// MaxReconnects limits reconnection attempts (default: 10)
	MaxReconnects int
	// ReconnectWait is the delay between reconnection attempts
	// (default: 2s)
	ReconnectWait time.Duration
}

// Sink publishes each rendered line as one NATS message.
type Sink struct {
	conn    *nats.Conn
	subject string
}

// New connects to the NATS server and returns a sink publishing to
// cfg.Subject.
func New(cfg Config) (*Sink, error) {
	if cfg.Subject == "" {
		return nil, errors.New("natssink: subject is required")
	}
	if cfg.URL == "" {
		cfg.URL = nats.DefaultURL
	}
	if cfg.Name == "" {
		cfg.Name = "latelog"
	}
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = 10
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = 2 * time.Second
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "natssink: connect %s", cfg.URL)
	}
	return &Sink{conn: conn, subject: cfg.Subject}, nil
}

// Write publishes one rendered line. Publishing is fire-and-forget; the
// client copies the line into its outbound buffer and flushes in the
// background, so the consumer is not stalled by the network on every
// line.
func (s *Sink) Write(p []byte) error {
	return errors.Wrap(s.conn.Publish(s.subject, p), "natssink: publish")
}

// Close flushes pending messages and closes the connection.
func (s *Sink) Close() error {
	if err := s.conn.Flush(); err != nil {
		s.conn.Close()
		return errors.Wrap(err, "natssink: flush")
	}
	s.conn.Close()
	return nil
}
