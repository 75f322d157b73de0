// Package ring implements the record store: a fixed-size ring of
// preallocated slots handed off from any number of producers to a single
// consumer.
//
// Each slot carries an atomic state word that encodes whose turn the
// slot is. For the sequence number t landing on slot index t mod N the
// states are:
//
//	t     free, reservable for sequence t
//	t+1   published, readable by the consumer
//	t+2   claimed by the consumer, being rendered
//	t+N   consumed; equivalently, free for sequence t+N
//
// Producers reserve by validating the slot is free and then winning a
// CAS on the tail cursor, so sequence numbers are strictly increasing
// and dropped calls never leave gaps the consumer would stall on. The
// publish store and the consumer's claim form the release/acquire pair
// that guarantees the consumer never observes a partially written
// payload.
//
// When the ring is full the configured Policy decides the outcome:
// Block spins until a slot frees (bounded by BlockTimeout), Drop rejects
// the new record, Overwrite retires the oldest unread record in place.
// Every outcome is counted in Stats; a full ring never blocks or crashes
// unrelated producers.
package ring
