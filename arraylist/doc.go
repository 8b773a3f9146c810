// Package arraylist implements a generic resizable array.
//
// What:
//
//   - List wraps a contiguous backing slice that doubles its capacity on
//     demand, exposing indexed access, end operations and a comparator-based
//     stable merge sort.
//   - It is the storage primitive of this module: the binary heap keeps its
//     elements in a List, and the ordered map drives its iterative traversals
//     with a List used as a stack.
//
// Why:
//
//   - Dense storage and O(1) indexed access make it the right substrate for
//     array-encoded trees (heaps) and scratch stacks.
//
// Complexity:
//
//   - Append:                amortized O(1)
//   - Prepend, Insert:       O(n) (elements shift right)
//   - Get, Set, First, Last: O(1)
//   - Remove(ix):            O(n) (elements shift left)
//   - RemoveLast:            O(1); RemoveFirst: O(n)
//   - Sort:                  O(n log n), stable (merge sort)
//
// Indexed accessors panic on an out-of-range index, matching the behavior of
// raw Go slices; end accessors report absence with a comma-ok result instead.
package arraylist
