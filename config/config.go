package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/ring"
)

// Config is the root configuration for a latelog pipeline.
type Config struct {
	Ring     RingConfig     `yaml:"ring"`
	Consumer ConsumerConfig `yaml:"consumer"`
	Sink     SinkConfig     `yaml:"sink"`
	Level    string         `yaml:"level"`
}

// RingConfig contains record store settings.
type RingConfig struct {
	// Slots is the number of ring slots; rounded up to a power of two
	Slots int `yaml:"slots"`
	// SlotCapacity is the payload capacity per slot in bytes
	SlotCapacity int `yaml:"slot_capacity"`
	// Policy applied on a full ring: block, drop, or overwrite
	Policy string `yaml:"policy"`
	// BlockTimeoutMS bounds the block policy's spin, in milliseconds
	BlockTimeoutMS int `yaml:"block_timeout_ms"`
}

// ConsumerConfig contains drain loop settings.
type ConsumerConfig struct {
	// Levels prefixes each line with the record's level bracket
	Levels bool `yaml:"levels"`
	// Timestamps prefixes each line with the record's coarse timestamp
	Timestamps bool `yaml:"timestamps"`
	// DrainTimeoutMS bounds the flush performed on Close, in milliseconds
	DrainTimeoutMS int `yaml:"drain_timeout_ms"`
}

// SinkConfig selects and configures the output destination.
type SinkConfig struct {
	// Type is one of: console, stderr, file, nats, discard
	Type string `yaml:"type"`
	// Path of the log file (file sink)
	Path string `yaml:"path"`
	// URL of the NATS server (nats sink)
	URL string `yaml:"url"`
	// Subject to publish to (nats sink)
	Subject string `yaml:"subject"`
}

// Default returns a Config with working defaults: a blocking 1024-slot
// ring with 128-byte slots, level brackets on, console output.
func Default() *Config {
	return &Config{
		Ring: RingConfig{
			Slots:          1024,
			SlotCapacity:   128,
			Policy:         "block",
			BlockTimeoutMS: 100,
		},
		Consumer: ConsumerConfig{
			Levels:         true,
			DrainTimeoutMS: 5000,
		},
		Sink: SinkConfig{
			Type: "console",
		},
		Level: "debug",
	}
}

// Load reads and validates a YAML config file, starting from defaults.
// The LATELOG_CONFIG environment variable, when set, overrides path.
func Load(path string) (*Config, error) {
	cfg := Default()

	if v := os.Getenv("LATELOG_CONFIG"); v != "" {
		path = v
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: reading file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parsing file")
	}

	if v := os.Getenv("LATELOG_LEVEL"); v != "" {
		cfg.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config: validating")
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if _, err := ring.ParsePolicy(c.Ring.Policy); err != nil {
		errs = append(errs, "ring.policy must be block, drop, or overwrite")
	}
	if c.Ring.Slots < 0 {
		errs = append(errs, "ring.slots must not be negative")
	}
	if c.Ring.SlotCapacity < 0 {
		errs = append(errs, "ring.slot_capacity must not be negative")
	}
	if _, err := c.ParseLevel(); err != nil {
		errs = append(errs, "level must be debug, info, warn, or error")
	}

	switch c.Sink.Type {
	case "", "console", "stderr", "discard":
	case "file":
		if c.Sink.Path == "" {
			errs = append(errs, "sink.path is required for the file sink")
		}
	case "nats":
		if c.Sink.Subject == "" {
			errs = append(errs, "sink.subject is required for the nats sink")
		}
	default:
		errs = append(errs, "sink.type must be console, stderr, file, nats, or discard")
	}

	if len(errs) > 0 {
		return errors.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ParseLevel converts the configured level string into a core.Level.
func (c *Config) ParseLevel() (core.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug", "":
		return core.DebugLevel, nil
	case "info":
		return core.InfoLevel, nil
	case "warn":
		return core.WarnLevel, nil
	case "error":
		return core.ErrorLevel, nil
	default:
		return core.DebugLevel, errors.Errorf("config: unknown level %q", c.Level)
	}
}

// StoreConfig returns the store configuration derived from the file.
func (c *Config) StoreConfig() (ring.Config, error) {
	policy, err := ring.ParsePolicy(c.Ring.Policy)
	if err != nil {
		return ring.Config{}, err
	}
	return ring.Config{
		Slots:        c.Ring.Slots,
		SlotCapacity: c.Ring.SlotCapacity,
		Policy:       policy,
		BlockTimeout: time.Duration(c.Ring.BlockTimeoutMS) * time.Millisecond,
	}, nil
}
