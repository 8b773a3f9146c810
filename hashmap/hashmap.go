package hashmap

import (
	"math/bits"

	"github.com/katalvlaran/structures/arraylist"
	"github.com/katalvlaran/structures/core"
)

// loadFactor is the resize trigger: physically-used slots (live + tombstones)
// divided by capacity. Tombstones count because they lengthen probe chains
// just like live entries do.
const loadFactor = 0.66

// primes is the capacity ladder. Each step roughly doubles, and the last
// entry is the largest 32-bit signed prime; the table never grows past it.
var primes = [...]int{
	11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853, 25717,
	51437, 102877, 205759, 411527, 823117, 1646237, 3292489, 6584983,
	13169977, 26339969, 52679969, 105359939, 210719881, 421439783,
	842879579, 1685759167, 2147483647,
}

// Map is an open-addressing hash map. The zero value is not usable; construct
// with New.
type Map[K comparable, V any] struct {
	hash       Hasher[K]
	table      []slot[K, V]
	primeIndex int
	// physical counts occupied + tombstone slots and drives resize timing.
	physical int
	// logical counts live entries only and is what Len reports.
	logical int
}

// New returns an empty Map that hashes keys with hash.
func New[K comparable, V any](hash Hasher[K], opts ...Option) (*Map[K, V], error) {
	if hash == nil {
		return nil, ErrNilHasher
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Map[K, V]{
		hash:       hash,
		primeIndex: primeIndexFor(o.InitialCapacity),
	}
	m.table = make([]slot[K, V], primes[m.primeIndex])

	return m, nil
}

// Len reports the number of live entries.
func (m *Map[K, V]) Len() int { return m.logical }

// IsEmpty reports whether the Map holds no live entries.
func (m *Map[K, V]) IsEmpty() bool { return m.logical == 0 }

// Capacity reports the current slot-table size.
func (m *Map[K, V]) Capacity() int { return len(m.table) }

// Clear removes every entry, keeping the current capacity.
func (m *Map[K, V]) Clear() {
	m.table = make([]slot[K, V], len(m.table))
	m.physical = 0
	m.logical = 0
}

// Put inserts key with value, or replaces the value when key is already
// present, returning the previous value and whether a replacement happened.
// The probe walks linearly from the key's home slot; if it passed a tombstone
// before proving the key absent, that tombstone is reused instead of a fresh
// empty slot. A resize to the next prime follows when the table hits the load
// factor. Amortized O(1).
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	var zero V
	capacity := len(m.table)
	ix := m.indexFor(key)

	candidate := -1 // first tombstone seen on the probe chain
	placed := false
	for i := 0; i < capacity; i++ {
		s := &m.table[ix]
		if s.state == slotEmpty {
			if candidate >= 0 {
				// A tombstone earlier in the chain is the better home.
				m.occupy(candidate, key, value)
			} else {
				s.key = key
				s.value = value
				s.state = slotOccupied
				m.physical++
				m.logical++
			}
			placed = true

			break
		}

		if s.state == slotOccupied && s.key == key {
			old := s.value
			s.value = value

			return old, true
		}

		if s.state == slotTombstone && candidate < 0 {
			candidate = ix
		}

		ix = (ix + 1) % capacity
	}

	if !placed {
		// The probe visited every slot without finding an empty one. The
		// resize policy keeps free slots available, so the only legitimate
		// way here is a chain made entirely of tombstones and live keys.
		if candidate < 0 {
			panic("hashmap: probe exhausted a table with no reusable slot")
		}
		m.occupy(candidate, key, value)
	}

	if float64(m.physical)/float64(capacity) >= loadFactor {
		m.resize()
	}

	return zero, false
}

// Get returns the value stored under key, or ok=false when key is absent.
// Tombstones are probed through; the first never-used slot proves absence.
func (m *Map[K, V]) Get(key K) (V, bool) {
	capacity := len(m.table)
	ix := m.indexFor(key)

	for i := 0; i < capacity; i++ {
		s := &m.table[ix]
		if s.state == slotEmpty {
			break
		}
		if s.state == slotOccupied && s.key == key {
			return s.value, true
		}

		ix = (ix + 1) % capacity
	}

	var zero V
	return zero, false
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key and returns the value it held, or ok=false when key was
// absent. The slot becomes a tombstone: later probes for other keys on the
// same chain still pass through it.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	capacity := len(m.table)
	ix := m.indexFor(key)

	for i := 0; i < capacity; i++ {
		s := &m.table[ix]
		if s.state == slotEmpty {
			break
		}
		if s.state == slotOccupied && s.key == key {
			old := s.value
			var zeroK K
			var zeroV V
			s.key = zeroK
			s.value = zeroV
			s.state = slotTombstone
			m.logical--

			return old, true
		}

		ix = (ix + 1) % capacity
	}

	var zero V
	return zero, false
}

// Keys returns every live key in unspecified order.
func (m *Map[K, V]) Keys() []K {
	return collect(m, func(s *slot[K, V]) K { return s.key })
}

// Values returns every live value in unspecified order.
func (m *Map[K, V]) Values() []V {
	return collect(m, func(s *slot[K, V]) V { return s.value })
}

// Entries returns every live key/value pair in unspecified order.
func (m *Map[K, V]) Entries() []core.Entry[K, V] {
	return collect(m, func(s *slot[K, V]) core.Entry[K, V] {
		return core.NewEntry(s.key, s.value)
	})
}

// collect scans the table for occupied slots, short-circuiting once every
// live entry has been seen.
func collect[K comparable, V any, T any](m *Map[K, V], fn func(*slot[K, V]) T) []T {
	items := arraylist.NewWithCapacity[T](m.logical)
	for i := range m.table {
		if m.table[i].state == slotOccupied {
			items.Append(fn(&m.table[i]))
			if items.Len() == m.logical {
				break
			}
		}
	}

	return items.ToSlice()
}

// occupy turns the tombstone at index ix into a live entry. Only the logical
// count grows: the slot was already counted as physically used.
func (m *Map[K, V]) occupy(ix int, key K, value V) {
	s := &m.table[ix]
	s.key = key
	s.value = value
	s.state = slotOccupied
	m.logical++
}

// resize rebuilds the table at the next prime capacity, reinserting live
// entries and dropping tombstones. Once the ladder is exhausted the table
// stays at its current capacity and inserts continue with longer probes.
func (m *Map[K, V]) resize() {
	if m.primeIndex == len(primes)-1 {
		return
	}

	old := m.table
	m.primeIndex++
	m.table = make([]slot[K, V], primes[m.primeIndex])
	m.physical = 0
	m.logical = 0

	for i := range old {
		if old[i].state == slotOccupied {
			m.Put(old[i].key, old[i].value)
		}
	}
}

// indexFor folds the mixed hash of key into the current table.
func (m *Map[K, V]) indexFor(key K) int {
	return int(mix(m.hash(key)) % uint32(len(m.table)))
}

// mix is a 64→32-bit avalanche finalizer: fold, multiply by a large odd
// prime, rotate, then two xor passes. It spreads nearby hash codes across
// distant slots, countering the clustering linear probing is prone to.
func mix(h uint64) uint32 {
	x := uint32(h ^ (h >> 32))
	x *= 6321751
	x = bits.RotateLeft32(x, 27)
	x ^= x >> 16
	x ^= (x << 17) | (x >> 11)

	return x
}

// primeIndexFor binary-searches the ladder for the smallest prime ≥ n,
// clamping to the largest prime when n exceeds the ladder.
func primeIndexFor(n int) int {
	lo, hi := 0, len(primes)-1
	found := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if primes[mid] >= n {
			found = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	if found == -1 {
		return len(primes) - 1
	}

	return found
}
