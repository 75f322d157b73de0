package logger

import (
	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/format"
)

// Site is a precompiled call site: its descriptor is resolved once when
// the site is created, so Log performs no cache lookup at all. It is the
// Go rendition of the per-call-site static formatter the deferred-logging
// design is built around. Sites are immutable and safe for concurrent
// use.
type Site struct {
	logger *Logger
	desc   *format.Descriptor
	level  core.Level
}

// NewSite registers a call site for the given format string and argument
// kinds. Arity or kind violations are reported here, before the site can
// ever publish a record. New sites log at InfoLevel; use WithLevel for a
// different severity.
func (l *Logger) NewSite(formatString string, kinds ...core.Kind) (*Site, error) {
	d, err := format.NewDescriptor(formatString, kinds...)
	if err != nil {
		return nil, err
	}
	return &Site{logger: l, desc: d, level: core.InfoLevel}, nil
}

// MustSite is NewSite panicking on error. Appropriate for package-level
// site variables, where a bad format string is a programming error that
// should fail loudly at startup.
func (l *Logger) MustSite(formatString string, kinds ...core.Kind) *Site {
	s, err := l.NewSite(formatString, kinds...)
	if err != nil {
		panic(err)
	}
	return s
}

// WithLevel returns a copy of the site logging at the given level.
func (s *Site) WithLevel(level core.Level) *Site {
	return &Site{logger: s.logger, desc: s.desc, level: level}
}

// Log publishes one record for this site. Argument kinds must match the
// registered sequence; a mismatch is rejected by the store before
// anything is written.
func (s *Site) Log(args ...core.Arg) error {
	if s.level < s.logger.level || s.logger.store == nil {
		return nil
	}
	return s.logger.store.Append(s.desc, s.level, args...)
}
