// Package format provides the deferred-rendering side of the pipeline:
// the Descriptor bound to one call site's format string and argument
// kinds, and the Registry that creates each descriptor at most once.
//
// A Descriptor is created lazily on the first execution of a call site
// and lives for the process lifetime. Creation validates that the number
// of % placeholders in the format string equals the number of bound
// argument kinds; a mismatch is rejected before any record can reference
// the descriptor. Go has no compile-time placeholder counting against a
// string literal, so the check runs once at first use and is cached.
//
// Render decodes a record payload strictly left to right: each literal
// segment of the format string is emitted, then the next argument is
// decoded at its fixed byte width and emitted in its place. Descriptors
// are immutable after creation and safely shared by all goroutines.
package format
