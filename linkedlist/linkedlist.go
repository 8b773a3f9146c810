package linkedlist

import "fmt"

// node is a single link in the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a generic singly linked list with head and tail references.
// The zero value is not usable; construct with New or FromSlice.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a List populated with the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, v := range s {
		l.Append(v)
	}

	return l
}

// Len reports the number of stored elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the List holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Append adds element after the current tail. O(1).
func (l *List[T]) Append(element T) {
	n := &node[T]{value: element}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds element before the current head. O(1).
func (l *List[T]) Prepend(element T) {
	n := &node[T]{value: element, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// Insert places element at index ix. ix may equal Len(), in which case Insert
// behaves like Append. Panics if ix is negative or greater than Len().
func (l *List[T]) Insert(ix int, element T) {
	switch ix {
	case 0:
		l.Prepend(element)
		return
	case l.size:
		l.Append(element)
		return
	}
	l.checkIndex(ix)

	prev := l.nodeAt(ix - 1)
	prev.next = &node[T]{value: element, next: prev.next}
	l.size++
}

// Get returns the element at index ix. Panics if ix is out of range.
func (l *List[T]) Get(ix int) T {
	l.checkIndex(ix)

	return l.nodeAt(ix).value
}

// Set replaces the element at index ix and returns the previous element.
// Panics if ix is out of range.
func (l *List[T]) Set(ix int, element T) T {
	l.checkIndex(ix)
	n := l.nodeAt(ix)
	old := n.value
	n.value = element

	return old
}

// First returns the head element, or ok=false when the List is empty.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Last returns the tail element, or ok=false when the List is empty.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.value, true
}

// Remove deletes the element at index ix and returns it. Panics if ix is out
// of range.
func (l *List[T]) Remove(ix int) T {
	l.checkIndex(ix)
	if ix == 0 {
		removed, _ := l.RemoveFirst()
		return removed
	}

	prev := l.nodeAt(ix - 1)
	target := prev.next
	prev.next = target.next
	if target == l.tail {
		l.tail = prev
	}
	l.size--

	return target.value
}

// RemoveFirst deletes and returns the head element, or ok=false when the List
// is empty. Combined with Append this is the FIFO dequeue operation.
func (l *List[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	removed := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return removed, true
}

// RemoveLast deletes and returns the tail element, or ok=false when the List
// is empty. O(n): a singly linked list must walk to the predecessor.
func (l *List[T]) RemoveLast() (T, bool) {
	switch l.size {
	case 0:
		var zero T
		return zero, false
	case 1:
		return l.RemoveFirst()
	}

	prev := l.nodeAt(l.size - 2)
	removed := prev.next.value
	prev.next = nil
	l.tail = prev
	l.size--

	return removed, true
}

// RemoveFunc deletes the first element for which match returns true and
// reports whether anything was removed.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	var prev *node[T]
	for n := l.head; n != nil; n = n.next {
		if !match(n.value) {
			prev = n
			continue
		}

		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if n == l.tail {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Clear empties the List.
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// ToSlice returns the elements as a fresh slice in list order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// nodeAt walks to the node at index ix. Callers must have validated ix.
func (l *List[T]) nodeAt(ix int) *node[T] {
	n := l.head
	for ; ix > 0; ix-- {
		n = n.next
	}

	return n
}

// checkIndex panics when ix does not address a stored element.
func (l *List[T]) checkIndex(ix int) {
	if ix < 0 || ix >= l.size {
		panic(fmt.Sprintf("linkedlist: index %d out of range [0,%d)", ix, l.size))
	}
}
