// Package median maintains the running median of a numeric stream.
//
// What:
//
//   - Tracker splits the observed values between two binary heaps: a max-heap
//     holding the lower half and a min-heap holding the upper half. After
//     every insertion the halves are rebalanced to differ by at most one
//     element, so the median is always at a heap root.
//
// Why:
//
//   - Recomputing a median by sorting costs O(n log n) per query. The
//     two-heap split answers the query in O(1) after an O(log n) insert,
//     which is what streaming percentile monitors need.
//
// Complexity:
//
//   - Add:            O(log n)
//   - Median:         O(1)
//   - Len, IsEmpty:   O(1)
//
// Errors:
//
//   - ErrNoElements: Median was asked of an empty Tracker.
//
// Median always returns float64: an even-sized stream's median is the mean of
// the two middle values, which need not be representable in T.
//
// Trackers are single-threaded: callers must not mutate one concurrently.
package median
