package format

import (
	"sync"
	"sync/atomic"

	"github.com/latelog/latelog/core"
)

// Registry caches one Descriptor per call site. The cache is keyed by the
// format string; call sites that share a format string but pass different
// kind sequences still get distinct descriptors, stored side by side
// under the same key.
//
// The hit path is lock-free: a sync.Map load plus a kind comparison.
// Only the first caller for a given (format, kinds) pair pays any
// synchronization cost, and creation happens at most once even under
// concurrent first use.
type Registry struct {
	sites sync.Map // format string -> *siteEntry
}

// siteEntry holds the descriptors registered under one format string.
// The slice is copy-on-write: readers load it atomically, writers
// replace it under mu. In practice it has exactly one element; a second
// appears only when two call sites share a format string with different
// argument kinds.
type siteEntry struct {
	mu    sync.Mutex
	descs atomic.Pointer[[]*Descriptor]
}

// NewRegistry creates an empty descriptor registry. Tests construct
// their own registries for isolation; production code typically shares
// one per pipeline.
func NewRegistry() *Registry {
	return &Registry{}
}

// GetOrCreate returns the descriptor for the call site identified by
// format and the kind sequence of args, creating it exactly once on
// first use. Arity and kind validation happen during creation, so an
// invalid call site fails here and never reaches the record store.
func (r *Registry) GetOrCreate(format string, args []core.Arg) (*Descriptor, error) {
	if e, ok := r.sites.Load(format); ok {
		entry := e.(*siteEntry)
		if d := entry.match(args); d != nil {
			return d, nil
		}
		return entry.create(format, args)
	}

	e, _ := r.sites.LoadOrStore(format, &siteEntry{})
	entry := e.(*siteEntry)
	if d := entry.match(args); d != nil {
		return d, nil
	}
	return entry.create(format, args)
}

// match scans the published descriptors for one whose kind sequence
// matches args. Lock-free.
func (e *siteEntry) match(args []core.Arg) *Descriptor {
	descs := e.descs.Load()
	if descs == nil {
		return nil
	}
	for _, d := range *descs {
		if d.MatchArgs(args) {
			return d
		}
	}
	return nil
}

// create builds and publishes a descriptor under mu. The re-check after
// locking makes creation at-most-once when several goroutines race on
// the same first use.
func (e *siteEntry) create(format string, args []core.Arg) (*Descriptor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if d := e.match(args); d != nil {
		return d, nil
	}

	kinds := make([]core.Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind
	}
	d, err := NewDescriptor(format, kinds...)
	if err != nil {
		return nil, err
	}

	var next []*Descriptor
	if cur := e.descs.Load(); cur != nil {
		next = append(next, *cur...)
	}
	next = append(next, d)
	e.descs.Store(&next)
	return d, nil
}

// Size returns the number of format strings with at least one registered
// descriptor.
func (r *Registry) Size() int {
	n := 0
	r.sites.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
