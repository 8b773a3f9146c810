// Package pqheap sentinel errors and construction options.
package pqheap

import "errors"

// Sentinel errors for pqheap operations.
var (
	// ErrNilCompare indicates NewFunc was called without a comparator.
	ErrNilCompare = errors.New("pqheap: comparator must not be nil")
	// ErrNilItem indicates a nil *Item was offered to an AdaptableQueue.
	ErrNilItem = errors.New("pqheap: item must not be nil")
	// ErrItemBound indicates the Item already sits in a queue; an Item can
	// occupy at most one heap position at a time.
	ErrItemBound = errors.New("pqheap: item is already bound to a queue position")
	// ErrLengthMismatch indicates bulk construction received values and
	// priorities slices of different lengths.
	ErrLengthMismatch = errors.New("pqheap: values and priorities must have equal length")
)

// Options contains tunable parameters for a new heap or adaptable queue.
type Options struct {
	// Max selects max-ordering: the largest element surfaces at the root.
	// The default is min-ordering.
	Max bool
	// InitialCapacity pre-sizes the backing array.
	InitialCapacity int
}

// Option mutates Options before construction.
type Option func(*Options)

// DefaultOptions returns the default construction parameters: min-ordering
// with the backing array's default capacity.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxHeap orders the heap so the largest element is polled first.
func WithMaxHeap() Option {
	return func(o *Options) { o.Max = true }
}

// WithCapacity pre-sizes the backing array for n elements. Panics if n is
// negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("pqheap: WithCapacity requires a non-negative capacity")
	}

	return func(o *Options) { o.InitialCapacity = n }
}
