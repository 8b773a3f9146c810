// Package pqheap implements an array-backed binary heap and an adaptable
// priority queue built on top of it.
//
// What:
//
//   - Heap keeps its elements in a dense arraylist satisfying the heap order
//     (parent before children); min-order by default, max-order via
//     WithMaxHeap. Construction from an existing slice heapifies bottom-up
//     in O(n).
//   - AdaptableQueue wraps a Heap of *Item entries. Each Item carries its
//     current array index, maintained by the heap on every swap, so removing
//     or re-prioritizing an arbitrary previously-inserted element costs
//     O(log n) instead of the base heap's O(n) scan.
//
// Why:
//
//   - Schedulers and graph algorithms need more than root extraction: they
//     cancel and reschedule work. Index tracking turns those operations from
//     linear scans into sift operations.
//
// Complexity:
//
//   - Add, Poll:                O(log n)
//   - Peek, Len, IsEmpty:       O(1)
//   - Heap.Remove(element):     O(n) (equality scan)
//   - AdaptableQueue Remove:    O(log n) (index lookup)
//   - AdaptableQueue Update:    O(log n) (replace + bidirectional sift)
//   - Sort:                     O(n log n), does not mutate the heap
//   - NewFromSlice:             O(n) bottom-up heapify
//
// Errors:
//
//   - ErrNilCompare:     NewFunc was given a nil comparator.
//   - ErrNilItem:        AdaptableQueue.Add was given a nil Item.
//   - ErrItemBound:      the Item is already held by a queue.
//   - ErrLengthMismatch: bulk construction with unequal slice lengths.
//
// Ordering between equal-priority elements is unspecified: the heap is not a
// stable queue. An Item's index is owned by its queue — callers must not
// change an Item's identity while it is enqueued.
//
// Heaps are single-threaded: callers must not mutate one concurrently.
package pqheap
