package config

import (
	"time"

	"go.uber.org/multierr"

	"github.com/latelog/latelog/consumer"
	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/logger"
	"github.com/latelog/latelog/ring"
	"github.com/latelog/latelog/sink"
	"github.com/latelog/latelog/sink/natssink"
)

// Pipeline bundles the assembled components. The logger is handed to
// producers; the consumer runs in the background until Close.
type Pipeline struct {
	Logger   *logger.Logger
	Store    *ring.Store
	Consumer *consumer.Consumer
	sink     sink.Sink
}

// Build assembles a running pipeline from the configuration: sink,
// store, background consumer, and the producer-side logger.
func (c *Config) Build() (*Pipeline, error) {
	level, err := c.ParseLevel()
	if err != nil {
		return nil, err
	}
	storeCfg, err := c.StoreConfig()
	if err != nil {
		return nil, err
	}
	snk, err := c.buildSink()
	if err != nil {
		return nil, err
	}

	if c.Consumer.Timestamps {
		core.StartCoarseClock()
	}

	store := ring.NewStore(storeCfg)
	cons := consumer.New(consumer.Config{
		Store:        store,
		Sink:         snk,
		Levels:       c.Consumer.Levels,
		Timestamps:   c.Consumer.Timestamps,
		DrainTimeout: time.Duration(c.Consumer.DrainTimeoutMS) * time.Millisecond,
	})
	cons.Start()

	return &Pipeline{
		Logger:   logger.NewBuilder().WithStore(store).WithLevel(level).Build(),
		Store:    store,
		Consumer: cons,
		sink:     snk,
	}, nil
}

// buildSink constructs the configured destination.
func (c *Config) buildSink() (sink.Sink, error) {
	switch c.Sink.Type {
	case "", "console":
		return sink.NewConsoleSink(sink.ConsoleConfig{}), nil
	case "stderr":
		return sink.NewConsoleSink(sink.ConsoleConfig{UseStderr: true}), nil
	case "file":
		return sink.NewFileSink(sink.FileConfig{Path: c.Sink.Path})
	case "nats":
		return natssink.New(natssink.Config{URL: c.Sink.URL, Subject: c.Sink.Subject})
	case "discard":
		return sink.Discard(), nil
	default:
		// Validate rejects unknown types before Build is reachable.
		return nil, nil
	}
}

// Close flushes remaining records and closes the sink. Producers must
// already have stopped logging; shutdown order is producers first, then
// the pipeline.
func (p *Pipeline) Close() error {
	err := p.Consumer.Close()
	return multierr.Append(err, p.sink.Close())
}
