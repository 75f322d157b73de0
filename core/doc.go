// Package core defines the shared types used across the latelog pipeline.
//
// It provides the Kind type enumerating the fixed-width argument types the
// pipeline can carry, the Arg type that packs any supported value into a
// single tagged machine word, and the codec that serializes an argument
// tuple into a record payload and decodes it back to text.
//
// Arg is deliberately interface-free: values are stored as raw bits in a
// uint64 so that a log call never boxes its arguments onto the heap. Only
// trivially-copyable, fixed-width kinds are supported; anything
// variable-width (strings, slices) is rejected at registration time, not
// silently truncated at encode time.
//
// The package also carries the Level type for severity tagging and a
// coarse clock that caches time.Now in the background so producers can
// timestamp records without a syscall on the hot path.
package core
