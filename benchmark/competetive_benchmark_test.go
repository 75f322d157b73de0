package benchmark

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/latelog/latelog/consumer"
	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/logger"
	"github.com/latelog/latelog/ring"
	"github.com/latelog/latelog/sink"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
//
// The comparison is deliberately asymmetric in one respect: the other
// frameworks format inline on the calling goroutine, while latelog only
// encodes raw argument bytes and leaves formatting to the background
// consumer. That asymmetry is the design under test.
// ---------------------------------------------------------------------------

// newDeferredPipeline returns a producer-side site backed by a running
// consumer that renders to io.Discard.
func newDeferredPipeline(b *testing.B) (*logger.Site, func()) {
	store := ring.NewStore(ring.Config{
		Slots:        1 << 14,
		Policy:       ring.Block,
		BlockTimeout: time.Second,
	})
	cons := consumer.New(consumer.Config{
		Store: store,
		Sink:  sink.NewWriterSink(io.Discard, true),
	})
	cons.Start()
	log := logger.NewBuilder().WithStore(store).WithLevel(core.DebugLevel).Build()
	site := log.MustSite("request handled status=% latency_ms=% bytes=%",
		core.KindInt, core.KindInt64, core.KindInt)
	return site, func() {
		if err := cons.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

// newZapLogger returns a zap.Logger that writes text to io.Discard.
func newZapLogger(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level))
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes to io.Discard.
func newZerologLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(io.Discard).Level(level)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message with three numeric values
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoThreeValues(b *testing.B) {
	b.Run("latelog", func(b *testing.B) {
		site, done := newDeferredPipeline(b)
		defer done()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkErr = site.Log(core.Int(200), core.Int64(150), core.Int(4096))
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				zap.Int("status", 200),
				zap.Int64("latency_ms", 150),
				zap.Int("bytes", 4096),
			)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				slog.Int("status", 200),
				slog.Int64("latency_ms", 150),
				slog.Int("bytes", 4096),
			)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithFields(logrus.Fields{
				"status":     200,
				"latency_ms": 150,
				"bytes":      4096,
			}).Info("request handled")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().
				Int("status", 200).
				Int64("latency_ms", 150).
				Int("bytes", 4096).
				Msg("request handled")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Disabled level (measure level-check overhead)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("latelog", func(b *testing.B) {
		store := ring.NewStore(ring.Config{Slots: 64})
		log := logger.NewBuilder().WithStore(store).WithLevel(core.ErrorLevel).Build()
		site := log.MustSite("should be skipped %", core.KindInt).
			WithLevel(core.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkErr = site.Log(core.Int(i))
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped", zap.Int("i", i))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(slog.LevelError)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped", slog.Int("i", i))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithField("i", i).Debug("should be skipped")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Int("i", i).Msg("should be skipped")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Parallel / high-concurrency logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("latelog", func(b *testing.B) {
		site, done := newDeferredPipeline(b)
		defer done()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				sinkErr = site.Log(core.Int(200), core.Int64(150), core.Int(4096))
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("request handled",
					zap.Int("status", 200),
					zap.Int64("latency_ms", 150),
					zap.Int("bytes", 4096),
				)
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("request handled",
					slog.Int("status", 200),
					slog.Int64("latency_ms", 150),
					slog.Int("bytes", 4096),
				)
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.WithFields(logrus.Fields{
					"status":     200,
					"latency_ms": 150,
					"bytes":      4096,
				}).Info("request handled")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().
					Int("status", 200).
					Int64("latency_ms", 150).
					Int("bytes", 4096).
					Msg("request handled")
			}
		})
	})
}
