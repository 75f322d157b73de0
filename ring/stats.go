package ring

import "sync/atomic"

// Stats tracks store counters. All counters are atomic; producers and the
// consumer update them without coordination.
type Stats struct {
	published   atomic.Uint64
	drained     atomic.Uint64
	dropped     atomic.Uint64
	blocked     atomic.Uint64
	overwritten atomic.Uint64
	oversized   atomic.Uint64
	corrupt     atomic.Uint64
}

// IncrementPublished counts a successfully published record.
func (s *Stats) IncrementPublished() { s.published.Add(1) }

// IncrementDrained counts a record rendered and forwarded by the consumer.
func (s *Stats) IncrementDrained() { s.drained.Add(1) }

// IncrementDropped counts a record rejected because the ring was full.
func (s *Stats) IncrementDropped() { s.dropped.Add(1) }

// IncrementBlocked counts a producer that hit the block timeout.
func (s *Stats) IncrementBlocked() { s.blocked.Add(1) }

// IncrementOverwritten counts an unread record retired by a producer.
func (s *Stats) IncrementOverwritten() { s.overwritten.Add(1) }

// IncrementOversized counts a call rejected for exceeding slot capacity.
func (s *Stats) IncrementOversized() { s.oversized.Add(1) }

// IncrementCorrupt counts a slot skipped due to an invariant violation.
func (s *Stats) IncrementCorrupt() { s.corrupt.Add(1) }

// Reset resets all counters to zero.
func (s *Stats) Reset() {
	s.published.Store(0)
	s.drained.Store(0)
	s.dropped.Store(0)
	s.blocked.Store(0)
	s.overwritten.Store(0)
	s.oversized.Store(0)
	s.corrupt.Store(0)
}

// Snapshot is a point-in-time copy of the store counters.
type Snapshot struct {
	Published   uint64
	Drained     uint64
	Dropped     uint64
	Blocked     uint64
	Overwritten uint64
	Oversized   uint64
	Corrupt     uint64
}

// GetSnapshot returns a snapshot of the current counters.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Published:   s.published.Load(),
		Drained:     s.drained.Load(),
		Dropped:     s.dropped.Load(),
		Blocked:     s.blocked.Load(),
		Overwritten: s.overwritten.Load(),
		Oversized:   s.oversized.Load(),
		Corrupt:     s.corrupt.Load(),
	}
}
