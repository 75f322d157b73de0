package sink

import "go.uber.org/multierr"

// Multi fans each rendered line out to multiple child sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fan-out sink over the given children.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write forwards the line to every child. All children are attempted
// even when one fails; the errors are combined.
func (m *Multi) Write(p []byte) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Write(p))
	}
	return err
}

// Close closes every child, combining their errors.
func (m *Multi) Close() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
