// Package linkedlist implements a generic singly linked list.
//
// What:
//
//   - List chains nodes through forward pointers only, keeping head and tail
//     references so both ends are cheap to reach.
//   - Append + RemoveFirst give FIFO queue behavior; Prepend + RemoveFirst
//     give LIFO stack behavior, so the one type covers both adapters.
//
// Why:
//
//   - When elements are only ever consumed from the ends, a linked list
//     avoids the shifting costs a dense array pays for front removal.
//
// Complexity:
//
//   - Append, Prepend, First, Last, RemoveFirst: O(1)
//   - Get, Set, Insert, Remove(ix), RemoveLast:  O(n) (forward walk; no back
//     pointers)
//
// Indexed accessors panic on an out-of-range index, matching the arraylist
// package; end accessors report absence with a comma-ok result.
package linkedlist
