package pqheap

import (
	"cmp"

	"github.com/katalvlaran/structures/arraylist"
)

// Heap is an array-backed binary heap. The zero value is not usable;
// construct with New, NewFunc or NewFromSlice.
type Heap[T comparable] struct {
	data    *arraylist.List[T]
	compare func(a, b T) int
	max     bool
	// onMove, when set, is told every element's new index after a swap or
	// placement. The adaptable queue hangs its index bookkeeping here.
	onMove func(element T, ix int)
}

// New returns an empty heap over a naturally ordered element type.
func New[T cmp.Ordered](opts ...Option) *Heap[T] {
	h, _ := NewFunc[T](cmp.Compare[T], opts...)
	return h
}

// NewFunc returns an empty heap ordered by compare, which must return a
// negative number when a sorts before b, zero for ties, positive otherwise.
func NewFunc[T comparable](compare func(a, b T) int, opts ...Option) (*Heap[T], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{
		data:    arraylist.NewWithCapacity[T](o.InitialCapacity),
		compare: compare,
		max:     o.Max,
	}, nil
}

// NewFromSlice returns a heap pre-loaded with elements, restored to heap
// order by a bottom-up heapify: O(n), not O(n log n).
func NewFromSlice[T cmp.Ordered](elements []T, opts ...Option) *Heap[T] {
	h := New[T](opts...)
	h.data = arraylist.FromSlice(elements)
	h.heapify()

	return h
}

// Len reports the number of stored elements.
func (h *Heap[T]) Len() int { return h.data.Len() }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.data.IsEmpty() }

// Clear empties the heap.
func (h *Heap[T]) Clear() { h.data.Clear() }

// Add inserts element and sifts it up to its position. O(log n).
func (h *Heap[T]) Add(element T) {
	h.data.Append(element)
	last := h.data.Len() - 1
	h.moved(element, last)
	h.siftUp(last)
}

// Peek returns the root element without removing it, or ok=false when the
// heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	return h.data.First()
}

// Poll removes and returns the root element, or ok=false when the heap is
// empty. The last element moves to the root and sifts down. O(log n).
func (h *Heap[T]) Poll() (T, bool) {
	switch h.data.Len() {
	case 0:
		var zero T
		return zero, false
	case 1:
		return h.data.RemoveLast()
	}

	root := h.data.Get(0)
	h.swap(0, h.data.Len()-1)
	h.data.RemoveLast()
	h.siftDown(0, h.data.Len())

	return root, true
}

// Remove deletes the first element equal to element and reports whether one
// was found. The vacated position is refilled by the last element, which is
// then sifted in both directions: its relation to the new neighbors is
// unknown a priori. O(n) because of the equality scan.
func (h *Heap[T]) Remove(element T) bool {
	size := h.data.Len()
	for i := 0; i < size; i++ {
		if h.data.Get(i) != element {
			continue
		}

		h.removeAt(i)

		return true
	}

	return false
}

// ToSlice returns the elements in backing-array order (root first, otherwise
// unspecified).
func (h *Heap[T]) ToSlice() []T {
	return h.data.ToSlice()
}

// Sort returns the elements in priority order (ascending for a min-heap,
// descending for a max-heap) by draining a clone. The heap itself is not
// mutated. O(n log n).
func (h *Heap[T]) Sort() []T {
	// The clone must not ripple index updates into adaptable-queue items.
	clone := &Heap[T]{data: h.data.Clone(), compare: h.compare, max: h.max}

	out := make([]T, 0, h.data.Len())
	for {
		element, ok := clone.Poll()
		if !ok {
			return out
		}
		out = append(out, element)
	}
}

// removeAt evicts index i by swapping in the last element, then sifts the
// replacement down and up. Callers must pass a valid index.
func (h *Heap[T]) removeAt(i int) {
	last := h.data.Len() - 1
	h.swap(i, last)
	h.data.RemoveLast()
	if i < last {
		h.siftDown(i, h.data.Len())
		h.siftUp(i)
	}
}

// heapify restores heap order over the whole backing array bottom-up,
// starting at the last parent.
func (h *Heap[T]) heapify() {
	n := h.data.Len()
	if h.onMove != nil {
		for i := 0; i < n; i++ {
			h.moved(h.data.Get(i), i)
		}
	}
	for i := parentOf(n - 1); i >= 0; i-- {
		h.siftDown(i, n)
	}
}

// siftUp moves the element at index i toward the root until its parent
// outranks it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := parentOf(i)
		if !h.outranks(h.data.Get(i), h.data.Get(parent)) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i toward the leaves of the first
// length elements until both children are outranked.
func (h *Heap[T]) siftDown(i, length int) {
	for {
		left := leftChildOf(i)
		if left >= length {
			return // leaf
		}

		// Pick the child to challenge; the right child wins ties.
		challenger := left
		if right := left + 1; right < length && !h.outranks(h.data.Get(left), h.data.Get(right)) {
			challenger = right
		}

		if !h.outranks(h.data.Get(challenger), h.data.Get(i)) {
			return
		}
		h.swap(i, challenger)
		i = challenger
	}
}

// outranks reports whether a belongs strictly above b in this heap's order.
func (h *Heap[T]) outranks(a, b T) bool {
	c := h.compare(a, b)
	if h.max {
		return c > 0
	}

	return c < 0
}

// swap exchanges two positions and reports both new locations to onMove.
func (h *Heap[T]) swap(i, j int) {
	a := h.data.Get(i)
	b := h.data.Set(j, a)
	h.data.Set(i, b)
	h.moved(b, i)
	h.moved(a, j)
}

// moved notifies the index hook, when one is installed.
func (h *Heap[T]) moved(element T, ix int) {
	if h.onMove != nil {
		h.onMove(element, ix)
	}
}

func parentOf(i int) int    { return (i - 1) / 2 }
func leftChildOf(i int) int { return 2*i + 1 }
