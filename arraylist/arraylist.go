package arraylist

import "fmt"

// defaultCapacity is the backing-slice capacity of a fresh List.
const defaultCapacity = 10

// List is a generic resizable array. The zero value is not usable; construct
// with New, NewWithCapacity or FromSlice.
type List[T any] struct {
	data []T
}

// New returns an empty List with the default initial capacity.
func New[T any]() *List[T] {
	return &List[T]{data: make([]T, 0, defaultCapacity)}
}

// NewWithCapacity returns an empty List whose backing slice can hold n
// elements before the first growth. A non-positive n falls back to the
// default capacity.
func NewWithCapacity[T any](n int) *List[T] {
	if n <= 0 {
		n = defaultCapacity
	}

	return &List[T]{data: make([]T, 0, n)}
}

// FromSlice returns a List populated with a copy of s. Later mutations of the
// List never touch s and vice versa.
func FromSlice[T any](s []T) *List[T] {
	data := make([]T, len(s))
	copy(data, s)

	return &List[T]{data: data}
}

// Len reports the number of stored elements.
func (l *List[T]) Len() int { return len(l.data) }

// IsEmpty reports whether the List holds no elements.
func (l *List[T]) IsEmpty() bool { return len(l.data) == 0 }

// Append adds element to the end of the List. Amortized O(1).
func (l *List[T]) Append(element T) {
	l.data = append(l.data, element)
}

// Prepend adds element to the front of the List, shifting every existing
// element one slot right. O(n).
func (l *List[T]) Prepend(element T) {
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[1:], l.data)
	l.data[0] = element
}

// Insert places element at index ix, shifting the suffix one slot right.
// ix may equal Len(), in which case Insert behaves like Append. Panics if ix
// is negative or greater than Len().
func (l *List[T]) Insert(ix int, element T) {
	switch {
	case ix == 0:
		l.Prepend(element)
		return
	case ix == len(l.data):
		l.Append(element)
		return
	default:
		l.checkIndex(ix)
	}

	var zero T
	l.data = append(l.data, zero)
	copy(l.data[ix+1:], l.data[ix:])
	l.data[ix] = element
}

// Get returns the element at index ix. Panics if ix is out of range.
func (l *List[T]) Get(ix int) T {
	l.checkIndex(ix)

	return l.data[ix]
}

// Set replaces the element at index ix and returns the previous element.
// Panics if ix is out of range.
func (l *List[T]) Set(ix int, element T) T {
	l.checkIndex(ix)
	old := l.data[ix]
	l.data[ix] = element

	return old
}

// First returns the first element, or ok=false when the List is empty.
func (l *List[T]) First() (T, bool) {
	if len(l.data) == 0 {
		var zero T
		return zero, false
	}

	return l.data[0], true
}

// Last returns the last element, or ok=false when the List is empty.
func (l *List[T]) Last() (T, bool) {
	if len(l.data) == 0 {
		var zero T
		return zero, false
	}

	return l.data[len(l.data)-1], true
}

// Remove deletes the element at index ix, shifting the suffix one slot left,
// and returns the removed element. Panics if ix is out of range.
func (l *List[T]) Remove(ix int) T {
	l.checkIndex(ix)
	removed := l.data[ix]
	copy(l.data[ix:], l.data[ix+1:])
	l.truncate(len(l.data) - 1)

	return removed
}

// RemoveFirst deletes and returns the first element, or ok=false when the
// List is empty.
func (l *List[T]) RemoveFirst() (T, bool) {
	if len(l.data) == 0 {
		var zero T
		return zero, false
	}

	return l.Remove(0), true
}

// RemoveLast deletes and returns the last element, or ok=false when the List
// is empty.
func (l *List[T]) RemoveLast() (T, bool) {
	if len(l.data) == 0 {
		var zero T
		return zero, false
	}

	last := l.data[len(l.data)-1]
	l.truncate(len(l.data) - 1)

	return last, true
}

// RemoveFunc deletes the first element for which match returns true and
// reports whether anything was removed.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	for i := range l.data {
		if match(l.data[i]) {
			l.Remove(i)
			return true
		}
	}

	return false
}

// Clear empties the List, keeping the current capacity.
func (l *List[T]) Clear() {
	l.truncate(0)
}

// ToSlice returns the elements as a fresh slice in list order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.data))
	copy(out, l.data)

	return out
}

// Clone returns an independent copy of the List.
func (l *List[T]) Clone() *List[T] {
	return FromSlice(l.data)
}

// Sort orders the elements in place using compare, which must return a
// negative number when a sorts before b, zero when they are equivalent, and
// a positive number otherwise. The sort is a stable merge sort: equivalent
// elements keep their relative order. O(n log n) time, O(n) scratch space.
func (l *List[T]) Sort(compare func(a, b T) int) {
	mergeSort(l.data, 0, len(l.data)-1, compare)
}

// mergeSort recursively sorts data[left..right] inclusive.
func mergeSort[T any](data []T, left, right int, compare func(a, b T) int) {
	if left >= right {
		return
	}

	// Midpoint computed as an offset from left to avoid overflow.
	middle := left + (right-left)/2
	mergeSort(data, left, middle, compare)
	mergeSort(data, middle+1, right, compare)
	merge(data, left, middle, right, compare)
}

// merge joins the two sorted runs data[left..middle] and data[middle+1..right]
// back into data. Ties take from the left run first, which is what keeps the
// sort stable.
func merge[T any](data []T, left, middle, right int, compare func(a, b T) int) {
	run1 := make([]T, middle-left+1)
	run2 := make([]T, right-middle)
	copy(run1, data[left:middle+1])
	copy(run2, data[middle+1:right+1])

	i, j, k := 0, 0, left
	for i < len(run1) && j < len(run2) {
		if compare(run1[i], run2[j]) <= 0 {
			data[k] = run1[i]
			i++
		} else {
			data[k] = run2[j]
			j++
		}
		k++
	}

	for i < len(run1) {
		data[k] = run1[i]
		i++
		k++
	}

	for j < len(run2) {
		data[k] = run2[j]
		j++
		k++
	}
}

// truncate shrinks the List to n elements, zeroing the abandoned tail so the
// garbage collector can reclaim what it points at.
func (l *List[T]) truncate(n int) {
	var zero T
	for i := n; i < len(l.data); i++ {
		l.data[i] = zero
	}
	l.data = l.data[:n]
}

// checkIndex panics when ix does not address a stored element.
func (l *List[T]) checkIndex(ix int) {
	if ix < 0 || ix >= len(l.data) {
		panic(fmt.Sprintf("arraylist: index %d out of range [0,%d)", ix, len(l.data)))
	}
}
