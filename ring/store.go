package ring

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/latelog/latelog/core"
	"github.com/latelog/latelog/format"
)

var (
	// ErrRingFull is returned when the configured policy rejects a record
	// because no slot freed in time. Not exceptional; an expected,
	// policy-driven outcome that callers may ignore.
	ErrRingFull = errors.New("ring: no free slot")
	// ErrPayloadTooLarge is returned when the encoded argument bytes
	// would exceed slot capacity. The record is rejected before any
	// write; nothing partial ever reaches the consumer.
	ErrPayloadTooLarge = errors.New("ring: encoded payload exceeds slot capacity")
	// ErrArgMismatch is returned when an argument tuple does not encode
	// to the exact width the descriptor was registered with.
	ErrArgMismatch = errors.New("ring: arguments do not match descriptor kinds")
)

// Config holds record store configuration
type Config struct {
	// Slots is the number of ring slots (default: 1024). Rounded up to a
	// power of two, minimum 4.
	Slots int
	// SlotCapacity is the payload capacity per slot in bytes (default: 128)
	SlotCapacity int
	// Policy applied when the ring is full (default: Block)
	Policy Policy
	// BlockTimeout bounds the spin of the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// Strict panics on internal invariant violations instead of
	// skip-and-count. Meant for tests and debug builds.
	Strict bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Slots <= 0 {
		cfg.Slots = 1024
	}
	if cfg.Slots < 4 {
		cfg.Slots = 4
	}
	cfg.Slots = nextPowerOfTwo(cfg.Slots)
	if cfg.SlotCapacity <= 0 {
		cfg.SlotCapacity = 128
	}
	if cfg.SlotCapacity < 8 {
		cfg.SlotCapacity = 8
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// slot holds one record: the state word gating ownership, the header,
// and the preallocated payload buffer. Header fields are plain because
// the state transitions order all access to them.
type slot struct {
	state   atomic.Uint64
	desc    *format.Descriptor
	seq     uint64
	level   core.Level
	nanos   int64
	size    uint32
	payload []byte
}

// Store is the concurrent hand-off structure between producers and the
// single consumer. See the package documentation for the slot state
// protocol.
type Store struct {
	slots        []slot
	mask         uint64
	n            uint64
	tail         atomic.Uint64 // next sequence number to reserve
	head         uint64        // consumer cursor; touched only by the consumer
	policy       Policy
	blockTimeout time.Duration
	strict       bool
	capacity     int
	stats        Stats
}

// NewStore creates a record store with all slot memory preallocated.
// No per-record allocation happens afterwards; slots are recycled.
func NewStore(cfg Config) *Store {
	applyDefaults(&cfg)

	s := &Store{
		slots:        make([]slot, cfg.Slots),
		mask:         uint64(cfg.Slots - 1),
		n:            uint64(cfg.Slots),
		policy:       cfg.Policy,
		blockTimeout: cfg.BlockTimeout,
		strict:       cfg.Strict,
		capacity:     cfg.SlotCapacity,
	}
	payload := make([]byte, cfg.Slots*cfg.SlotCapacity)
	for i := range s.slots {
		s.slots[i].state.Store(uint64(i))
		s.slots[i].payload = payload[i*cfg.SlotCapacity : (i+1)*cfg.SlotCapacity : (i+1)*cfg.SlotCapacity]
	}
	return s
}

// Capacity returns the payload capacity of one slot in bytes.
func (s *Store) Capacity() int {
	return s.capacity
}

// NumSlots returns the number of ring slots.
func (s *Store) NumSlots() int {
	return int(s.n)
}

// Stats returns the store's counters.
func (s *Store) Stats() *Stats {
	return &s.stats
}

// Append reserves the next slot, encodes the argument tuple into it, and
// publishes it to the consumer. Safe for any number of concurrent
// producers. On a full ring the configured policy decides the outcome;
// oversized or mismatched tuples are rejected before any slot is touched.
func (s *Store) Append(d *format.Descriptor, level core.Level, args ...core.Arg) error {
	size := core.SizeOf(args)
	if size > s.capacity {
		s.stats.IncrementOversized()
		return errors.Wrapf(ErrPayloadTooLarge, "%d bytes, capacity %d", size, s.capacity)
	}
	if !d.MatchArgs(args) {
		return errors.Wrapf(ErrArgMismatch, "format %q", d.Format())
	}

	seq, ok := s.reserve()
	if !ok {
		return errors.WithStack(ErrRingFull)
	}

	sl := &s.slots[seq&s.mask]
	sl.desc = d
	sl.seq = seq
	sl.level = level
	sl.nanos = core.CoarseNow()
	sl.size = uint32(size)
	core.Encode(sl.payload, args)

	// Publish: release-store makes header and payload visible to the
	// consumer as one unit.
	sl.state.Store(seq + 1)
	s.stats.IncrementPublished()
	return nil
}

// reserve atomically claims the next sequence number. The slot is
// validated as free before the tail CAS, so a rejected call leaves no
// sequence gap behind for the consumer to stall on.
func (s *Store) reserve() (uint64, bool) {
	var deadline time.Time
	for {
		t := s.tail.Load()
		sl := &s.slots[t&s.mask]
		st := sl.state.Load()

		switch {
		case st == t:
			// Free for this sequence; win the tail to own it.
			if s.tail.CompareAndSwap(t, t+1) {
				return t, true
			}

		case st > t:
			// Stale tail read; another producer claimed t and already
			// published. Retry with a fresh tail.

		default:
			// st < t: the previous occupant (sequence t-n) has not been
			// drained. The ring is full; apply the policy.
			switch s.policy {
			case Drop:
				s.stats.IncrementDropped()
				return 0, false

			case Overwrite:
				// Steal only a published, unread occupant. A claimed but
				// unpublished slot (st == t-n) or one mid-read by the
				// consumer (st == t-n+2) is spun on instead.
				if st == t-s.n+1 {
					if sl.state.CompareAndSwap(st, t) {
						s.stats.IncrementOverwritten()
					}
				} else {
					runtime.Gosched()
				}

			default: // Block
				if deadline.IsZero() {
					deadline = time.Now().Add(s.blockTimeout)
				} else if time.Now().After(deadline) {
					s.stats.IncrementBlocked()
					s.stats.IncrementDropped()
					return 0, false
				}
				runtime.Gosched()
			}
		}
	}
}

// Record is the consumer's view of one published slot. Payload aliases
// the slot buffer and is valid only for the duration of the TryDrain
// callback.
type Record struct {
	Desc    *format.Descriptor
	Seq     uint64
	Level   core.Level
	Nanos   int64
	Payload []byte
}

// TryDrain claims the next published record in sequence order, invokes
// fn with its contents, and recycles the slot. It returns false when no
// record is ready. Must only ever be called from a single consumer
// goroutine at a time.
//
// Slots stolen by the Overwrite policy are skipped silently (the
// producer already counted them). A slot whose header violates the store
// invariants is handled per Strict: panic, or count and skip.
func (s *Store) TryDrain(fn func(*Record) error) (bool, error) {
	for {
		h := s.head
		sl := &s.slots[h&s.mask]
		st := sl.state.Load()

		switch {
		case st == h+1:
			// Published. Claim it so an overwriting producer cannot
			// retire it mid-read.
			if !sl.state.CompareAndSwap(h+1, h+2) {
				continue
			}
			if sl.seq != h || sl.desc == nil {
				s.corrupt(fmt.Sprintf("slot %d: header seq %d at cursor %d", h&s.mask, sl.seq, h))
				sl.state.Store(h + s.n)
				s.head = h + 1
				continue
			}
			rec := Record{
				Desc:    sl.desc,
				Seq:     sl.seq,
				Level:   sl.level,
				Nanos:   sl.nanos,
				Payload: sl.payload[:sl.size],
			}
			err := fn(&rec)
			sl.state.Store(h + s.n) // recycle
			s.head = h + 1
			if err != nil {
				return true, err
			}
			s.stats.IncrementDrained()
			return true, nil

		case st == h:
			// Not yet published (or nothing reserved). No data.
			return false, nil

		case st >= h+s.n:
			// Occupant overwritten by a producer; skip ahead.
			s.head = h + 1

		default:
			// Neither pending, published, nor recycled: internal bug.
			s.corrupt(fmt.Sprintf("slot %d: state %d at cursor %d", h&s.mask, st, h))
			s.head = h + 1
			return false, nil
		}
	}
}

// corrupt reports an invariant violation per the Strict setting.
func (s *Store) corrupt(msg string) {
	if s.strict {
		panic("ring: corrupt slot state: " + msg)
	}
	s.stats.IncrementCorrupt()
}
