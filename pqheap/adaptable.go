package pqheap

import "cmp"

// unbound marks an Item that currently sits in no queue.
const unbound = -1

// Item is a prioritized payload for an AdaptableQueue. Its heap index is
// embedded in the Item itself and maintained by the queue on every swap.
type Item[V any] struct {
	Priority int
	Value    V
	index    int
}

// NewItem returns an unbound Item carrying value at the given priority.
func NewItem[V any](priority int, value V) *Item[V] {
	return &Item[V]{Priority: priority, Value: value, index: unbound}
}

// AdaptableQueue is a priority queue supporting O(log n) removal and
// re-prioritization of arbitrary enqueued Items, not just the root. The zero
// value is not usable; construct with NewAdaptable or NewAdaptableFromSlices.
type AdaptableQueue[V any] struct {
	heap *Heap[*Item[V]]
}

// NewAdaptable returns an empty adaptable queue. Min-order by default: the
// lowest Priority polls first; WithMaxHeap flips that.
func NewAdaptable[V any](opts ...Option) *AdaptableQueue[V] {
	h, _ := NewFunc[*Item[V]](func(a, b *Item[V]) int {
		return cmp.Compare(a.Priority, b.Priority)
	}, opts...)
	h.onMove = func(it *Item[V], ix int) { it.index = ix }

	return &AdaptableQueue[V]{heap: h}
}

// NewAdaptableFromSlices returns a queue pre-loaded with values[i] at
// priorities[i], heapified bottom-up in O(n). Returns ErrLengthMismatch when
// the slices disagree on length.
func NewAdaptableFromSlices[V any](values []V, priorities []int, opts ...Option) (*AdaptableQueue[V], error) {
	if len(values) != len(priorities) {
		return nil, ErrLengthMismatch
	}

	q := NewAdaptable[V](opts...)
	for i := range values {
		it := NewItem(priorities[i], values[i])
		q.heap.data.Append(it)
		it.index = i
	}
	q.heap.heapify()

	return q, nil
}

// Len reports the number of enqueued Items.
func (q *AdaptableQueue[V]) Len() int { return q.heap.Len() }

// IsEmpty reports whether the queue holds no Items.
func (q *AdaptableQueue[V]) IsEmpty() bool { return q.heap.IsEmpty() }

// Add enqueues item and registers its position. Returns ErrNilItem for nil
// and ErrItemBound when the Item already sits in a queue. O(log n).
func (q *AdaptableQueue[V]) Add(item *Item[V]) error {
	if item == nil {
		return ErrNilItem
	}
	if item.index != unbound {
		return ErrItemBound
	}

	q.heap.Add(item)

	return nil
}

// Peek returns the root Item without removing it, or ok=false when the queue
// is empty.
func (q *AdaptableQueue[V]) Peek() (*Item[V], bool) {
	return q.heap.Peek()
}

// Poll removes and returns the root Item, unbinding it so it can be enqueued
// again, or ok=false when the queue is empty. O(log n).
func (q *AdaptableQueue[V]) Poll() (*Item[V], bool) {
	item, ok := q.heap.Poll()
	if ok {
		item.index = unbound
	}

	return item, ok
}

// Remove deletes item from the queue and reports whether it was present.
// Unlike the base heap this is O(log n): the Item's embedded index replaces
// the equality scan, and the vacated position is refilled and sifted both
// ways.
func (q *AdaptableQueue[V]) Remove(item *Item[V]) bool {
	if !q.holds(item) {
		return false
	}

	q.heap.removeAt(item.index)
	item.index = unbound

	return true
}

// Update replaces oldItem with newItem at the same queue position and sifts
// it to wherever the new priority belongs, up or down, since the relation to
// the old priority is unknown. Reports false when oldItem is not enqueued or
// newItem is nil or already enqueued elsewhere. O(log n).
func (q *AdaptableQueue[V]) Update(oldItem, newItem *Item[V]) bool {
	if !q.holds(oldItem) || newItem == nil {
		return false
	}
	if newItem.index != unbound && newItem != oldItem {
		return false
	}

	ix := oldItem.index
	q.heap.data.Set(ix, newItem)
	newItem.index = ix
	if oldItem != newItem {
		oldItem.index = unbound
	}

	q.heap.siftUp(ix)
	q.heap.siftDown(ix, q.heap.Len())

	return true
}

// Clear empties the queue, unbinding every Item.
func (q *AdaptableQueue[V]) Clear() {
	for i, n := 0, q.heap.Len(); i < n; i++ {
		q.heap.data.Get(i).index = unbound
	}
	q.heap.Clear()
}

// ToSlice returns the enqueued Items in backing-array order (root first,
// otherwise unspecified).
func (q *AdaptableQueue[V]) ToSlice() []*Item[V] {
	return q.heap.ToSlice()
}

// holds reports whether item currently occupies the queue position its index
// claims. A stale or foreign Item fails the identity check.
func (q *AdaptableQueue[V]) holds(item *Item[V]) bool {
	if item == nil || item.index == unbound {
		return false
	}
	if item.index < 0 || item.index >= q.heap.Len() {
		return false
	}

	return q.heap.data.Get(item.index) == item
}
