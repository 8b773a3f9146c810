// Package orderedmap implements a key-ordered map backed by an AVL tree.
//
// What:
//
//   - Map stores key/value pairs sorted by key, rebalancing after every
//     insertion and deletion so the tree height stays logarithmic.
//   - Beyond the usual map operations it answers ordered queries: the nearest
//     key at or above / below a probe (NextGeq, NextLeq) and all keys inside
//     an inclusive range (KeysInRange).
//
// Why:
//
//   - Hash maps forget order; an AVL tree keeps every lookup, insert and
//     delete at worst-case O(log n) while in-order traversal yields keys
//     strictly ascending.
//
// Complexity:
//
//   - Put, Get, Remove, ContainsKey: O(log n)
//   - NextGeq, NextLeq:              O(log n) (single root-to-leaf descent)
//   - KeysInRange:                   O(k + log n), k = keys reported
//   - Keys, Values, Entries:         O(n), ascending key order
//   - Height, Len, IsEmpty:          O(1)
//
// Invariants:
//
//   - Every node's height is 1 + max(child heights), missing children count 0.
//   - Left and right subtree heights differ by at most 1 at every node.
//   - No duplicate keys: Put on an existing key replaces the value in place.
//
// Errors:
//
//   - ErrEmptyMap: Height was asked of a map with no entries.
//
// The map is single-threaded: callers must not mutate it concurrently.
package orderedmap
