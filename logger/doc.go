// Package logger is the call-site API of the pipeline.
//
// A log call does two things only: resolve the descriptor for its format
// string and argument kinds (cached after the first call), and copy the
// raw argument bytes into a ring slot. No text is formatted on the
// caller's path; rendering happens later on the consumer side.
//
// Two entry points are offered. Logf and its level variants key the
// descriptor cache on the format string itself, the closest Go
// equivalent of a per-call-site static formatter.
// Site goes one step further: it resolves the descriptor once, up front,
// and hands back a handle whose Log method skips the cache lookup
// entirely. Prefer Site on genuinely hot paths.
//
// Arity violations surface at first use: Logf returns the error, MustSite
// panics. A mismatched call site is a programming error and is rejected
// before any record reaches the store.
package logger
