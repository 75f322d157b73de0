package logger

import (
	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/format"
	"github.com/latelog/latelog/ring"
)

// Logger is the producer-side front end (immutable)
type Logger struct {
	store    *ring.Store
	registry *format.Registry
	level    core.Level
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	store    *ring.Store
	registry *format.Registry
	level    core.Level
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.DebugLevel, // log everything by default
	}
}

// WithStore sets the record store log calls publish into
func (b *Builder) WithStore(s *ring.Store) *Builder {
	b.store = s
	return b
}

// WithRegistry sets the descriptor registry. Loggers sharing a registry
// share call-site descriptors; the default is a fresh registry.
func (b *Builder) WithRegistry(r *format.Registry) *Builder {
	b.registry = r
	return b
}

// WithLevel sets the minimum level; calls below it exit before any
// encoding work.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	registry := b.registry
	if registry == nil {
		registry = format.NewRegistry()
	}
	return &Logger{
		store:    b.store,
		registry: registry,
		level:    b.level,
	}
}

// Logf publishes one record at the given level. The descriptor is
// resolved through the registry, keyed on the format string; only the
// first call for a given call site pays the registration cost. Arity
// and kind errors are returned, ring-full outcomes follow the store's
// policy, and none of them ever panic the caller.
func (l *Logger) Logf(level core.Level, formatString string, args ...core.Arg) error {
	// Level check before any other work.
	if level < l.level || l.store == nil {
		return nil
	}
	d, err := l.registry.GetOrCreate(formatString, args)
	if err != nil {
		return err
	}
	return l.store.Append(d, level, args...)
}

// Debugf logs at DebugLevel
func (l *Logger) Debugf(formatString string, args ...core.Arg) error {
	return l.Logf(core.DebugLevel, formatString, args...)
}

// Infof logs at InfoLevel
func (l *Logger) Infof(formatString string, args ...core.Arg) error {
	return l.Logf(core.InfoLevel, formatString, args...)
}

// Warnf logs at WarnLevel
func (l *Logger) Warnf(formatString string, args ...core.Arg) error {
	return l.Logf(core.WarnLevel, formatString, args...)
}

// Errorf logs at ErrorLevel
func (l *Logger) Errorf(formatString string, args ...core.Arg) error {
	return l.Logf(core.ErrorLevel, formatString, args...)
}
