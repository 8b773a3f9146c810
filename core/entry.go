// Package core holds the small shared primitives the rest of the module
// builds on.
//
// What:
//
//   - Entry is the key/value pair every map returns from Entries().
//
// Why:
//
//   - A single pair type keeps the map contracts uniform, so callers can move
//     collected entries between structures without conversion.
//
// Entries are plain values: copying one never aliases the structure it was
// collected from.
package core

// Entry is a mutable key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// NewEntry builds an Entry from a key and its value.
func NewEntry[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}
