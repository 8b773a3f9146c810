package median

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/structures/pqheap"
)

// ErrNoElements indicates Median was asked of an empty Tracker.
var ErrNoElements = errors.New("median: no elements observed")

// Number is the value domain a Tracker can summarize.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tracker maintains the running median of the values added so far. The zero
// value is not usable; construct with New.
type Tracker[T Number] struct {
	// lower is a max-heap over the smaller half, upper a min-heap over the
	// larger half. lower carries the extra element when the count is odd.
	lower *pqheap.Heap[T]
	upper *pqheap.Heap[T]
}

// New returns an empty Tracker.
func New[T Number]() *Tracker[T] {
	return &Tracker[T]{
		lower: pqheap.New[T](pqheap.WithMaxHeap()),
		upper: pqheap.New[T](),
	}
}

// Len reports the number of observed values.
func (t *Tracker[T]) Len() int { return t.lower.Len() + t.upper.Len() }

// IsEmpty reports whether no values have been observed.
func (t *Tracker[T]) IsEmpty() bool { return t.Len() == 0 }

// Add observes value and restores the half-split. O(log n).
func (t *Tracker[T]) Add(value T) {
	if mid, ok := t.lower.Peek(); !ok || value <= mid {
		t.lower.Add(value)
	} else {
		t.upper.Add(value)
	}

	// Keep the halves within one element of each other, extra on lower.
	switch {
	case t.lower.Len() > t.upper.Len()+1:
		v, _ := t.lower.Poll()
		t.upper.Add(v)
	case t.upper.Len() > t.lower.Len():
		v, _ := t.upper.Poll()
		t.lower.Add(v)
	}
}

// Median returns the median of the observed values: the middle value for an
// odd count, the mean of the two middle values for an even count. Returns
// ErrNoElements when nothing has been observed. O(1).
func (t *Tracker[T]) Median() (float64, error) {
	if t.IsEmpty() {
		return 0, ErrNoElements
	}

	lo, _ := t.lower.Peek()
	if t.lower.Len() > t.upper.Len() {
		return float64(lo), nil
	}

	hi, _ := t.upper.Peek()

	return (float64(lo) + float64(hi)) / 2, nil
}
