package orderedmap

import (
	"cmp"

	"github.com/katalvlaran/structures/arraylist"
	"github.com/katalvlaran/structures/core"
)

// Map is an ordered map backed by an AVL tree. The zero value is not usable;
// construct with New.
type Map[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty ordered map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Len reports the number of stored entries.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Clear removes every entry. O(1): the garbage collector reclaims the nodes.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Height returns the height of the tree (a single entry has height 1), or
// ErrEmptyMap when the map is empty.
func (m *Map[K, V]) Height() (int, error) {
	if m.root == nil {
		return 0, ErrEmptyMap
	}

	return m.root.height, nil
}

// Put inserts key with value, or replaces the value when key is already
// present. It returns the previous value and whether a replacement happened.
// The tree is rebalanced on the way back up the insertion path. O(log n).
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	root, old, replaced := insert(m.root, key, value)
	m.root = root
	if !replaced {
		m.size++
	}

	return old, replaced
}

// Get returns the value stored under key, or ok=false when key is absent.
// O(log n), no mutation.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
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
// absent. The tree is rebalanced on the way back up the deletion path.
// O(log n).
func (m *Map[K, V]) Remove(key K) (V, bool) {
	root, old, removed := remove(m.root, key)
	m.root = root
	if removed {
		m.size--
	}

	return old, removed
}

// NextGeq returns the value of the smallest key ≥ key, or ok=false when every
// stored key is smaller. Single root-to-leaf descent, O(log n).
func (m *Map[K, V]) NextGeq(key K) (V, bool) {
	var candidate *node[K, V]
	n := m.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c == 0:
			return n.value, true
		case c < 0:
			// n.key exceeds key: best answer so far, better ones lie left.
			candidate = n
			n = n.left
		default:
			n = n.right
		}
	}

	if candidate == nil {
		var zero V
		return zero, false
	}

	return candidate.value, true
}

// NextLeq returns the value of the largest key ≤ key, or ok=false when every
// stored key is larger. Single root-to-leaf descent, O(log n).
func (m *Map[K, V]) NextLeq(key K) (V, bool) {
	var candidate *node[K, V]
	n := m.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c == 0:
			return n.value, true
		case c > 0:
			// n.key is below key: best answer so far, better ones lie right.
			candidate = n
			n = n.right
		default:
			n = n.left
		}
	}

	if candidate == nil {
		var zero V
		return zero, false
	}

	return candidate.value, true
}

// KeysInRange returns every key k with lo ≤ k ≤ hi in ascending order. The
// result is empty when lo > hi or the map is empty. Subtrees provably outside
// the range are never visited: O(k + log n).
func (m *Map[K, V]) KeysInRange(lo, hi K) []K {
	keys := make([]K, 0)
	if m.root == nil || cmp.Compare(lo, hi) > 0 {
		return keys
	}

	return searchRange(m.root, lo, hi, keys)
}

// Keys returns every key in ascending order.
func (m *Map[K, V]) Keys() []K {
	return inOrder(m, func(n *node[K, V]) K { return n.key })
}

// Values returns every value in ascending order of its key.
func (m *Map[K, V]) Values() []V {
	return inOrder(m, func(n *node[K, V]) V { return n.value })
}

// Entries returns every key/value pair in ascending key order.
func (m *Map[K, V]) Entries() []core.Entry[K, V] {
	return inOrder(m, func(n *node[K, V]) core.Entry[K, V] {
		return core.NewEntry(n.key, n.value)
	})
}

// searchRange appends the in-range keys under n to keys, pruning subtrees
// that cannot intersect [lo, hi].
func searchRange[K cmp.Ordered, V any](n *node[K, V], lo, hi K, keys []K) []K {
	if n == nil {
		return keys
	}

	lowCompare := cmp.Compare(n.key, lo)
	if lowCompare > 0 {
		// Keys below n.key may still reach down to lo.
		keys = searchRange(n.left, lo, hi, keys)
	}

	highCompare := cmp.Compare(n.key, hi)
	if lowCompare >= 0 && highCompare <= 0 {
		keys = append(keys, n.key)
	}

	if highCompare < 0 {
		// Keys above n.key may still reach up to hi.
		keys = searchRange(n.right, lo, hi, keys)
	}

	return keys
}

// inOrder walks the tree iteratively with an explicit arraylist-backed stack
// (no parent pointers, no recursion) and maps every node through fn in
// ascending key order.
func inOrder[K cmp.Ordered, V any, T any](m *Map[K, V], fn func(*node[K, V]) T) []T {
	items := arraylist.NewWithCapacity[T](m.size)
	stack := arraylist.New[*node[K, V]]()

	current := m.root
	for current != nil || !stack.IsEmpty() {
		for current != nil {
			// Descend as far left as possible.
			stack.Append(current)
			current = current.left
		}

		current, _ = stack.RemoveLast()
		items.Append(fn(current))
		current = current.right
	}

	return items.ToSlice()
}
