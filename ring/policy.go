package ring

import "github.com/pkg/errors"

// Policy defines how Append behaves when the ring has no free slot.
type Policy int

const (
	// Block spins until a slot frees, bounded by BlockTimeout. Default,
	// since silent data loss in a logging system is a correctness
	// concern for its consumers.
	Block Policy = iota
	// Drop rejects the new record and increments the dropped counter.
	Drop
	// Overwrite retires the oldest unread record in place and increments
	// the overwritten counter.
	Overwrite
)

// String returns the string representation of the policy
func (p Policy) String() string {
	switch p {
	case Block:
		return "block"
	case Drop:
		return "drop"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "block", "":
		return Block, nil
	case "drop":
		return Drop, nil
	case "overwrite":
		return Overwrite, nil
	default:
		return Block, errors.Errorf("ring: unknown overflow policy %q", s)
	}
}
