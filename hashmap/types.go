// Package hashmap sentinel errors, options and the slot model.
package hashmap

import "errors"

// Sentinel errors for hashmap operations.
var (
	// ErrNilHasher indicates New was called without a hash function.
	ErrNilHasher = errors.New("hashmap: hasher must not be nil")
)

// Hasher converts a key to a 64-bit hash code. It must be deterministic for
// the lifetime of the map: equal keys must always produce equal codes. The
// map runs every code through an avalanche mixer, so a Hasher may be as
// simple as an identity cast.
type Hasher[K any] func(K) uint64

// Options contains tunable parameters for a new Map.
type Options struct {
	// InitialCapacity is rounded up to the nearest prime in the capacity
	// ladder. Values at or below the smallest prime select it; values above
	// the largest prime are clamped to it.
	InitialCapacity int
}

// Option mutates Options before construction.
type Option func(*Options)

// DefaultOptions returns the default construction parameters: the smallest
// prime capacity (11 slots).
func DefaultOptions() Options {
	return Options{InitialCapacity: 0}
}

// WithCapacity requests room for at least n slots before the first resize.
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("hashmap: WithCapacity requires a non-negative capacity")
	}

	return func(o *Options) { o.InitialCapacity = n }
}

// slotState tracks the lifecycle of a table slot.
type slotState uint8

const (
	// slotEmpty marks a slot that has never held an entry; probing stops here.
	slotEmpty slotState = iota
	// slotOccupied marks a live entry.
	slotOccupied
	// slotTombstone marks a removed entry. Probes pass through it, and an
	// insertion on the same chain may reuse it.
	slotTombstone
)

// slot is one cell of the table. key and value are zeroed when the slot is
// not occupied so the garbage collector can reclaim what they point at.
type slot[K comparable, V any] struct {
	key   K
	value V
	state slotState
}
