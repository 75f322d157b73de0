// Package sink provides the destinations the consumer forwards rendered
// log lines to.
//
// A Sink receives complete rendered lines in drain order via a single
// Write operation. The pipeline core makes no assumption about the
// destination beyond that contract; a Write that can block indefinitely
// is the sink's own documented behavior.
//
// Built-in sinks:
//
//   - WriterSink wraps any io.Writer, serializing Write calls unless the
//     writer is known to be safe for concurrent use.
//   - ConsoleSink writes to stdout or stderr and buffers output when the
//     destination is not a terminal, flushing on Close.
//   - FileSink appends to a file through a buffered writer and syncs on
//     Close. It deliberately does not rotate; rotation and retention are
//     out of scope for this pipeline.
//   - Multi fans a line out to several child sinks and aggregates their
//     Close errors.
//
// The natssink subpackage publishes lines to a NATS subject for
// shipping logs off-host.
package sink
