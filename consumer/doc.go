// Package consumer drains the record store and turns records back into
// text.
//
// Exactly one consumer may drain a given store. Records are rendered in
// the exact sequence order they were published, regardless of which
// producer wrote them, and forwarded to the sink one line per record.
//
// The consumer can be driven two ways: cooperatively, by calling
// DrainOne or DrainAll from the caller's own loop, or as a background
// goroutine via Start. Close stops the background loop and flushes
// whatever is still queued, bounded by DrainTimeout, so shutdown never
// hangs on a slow sink. Producers must be stopped before Close; tearing
// down the store while producers may still reserve slots is a contract
// violation, not a handled case.
package consumer
