// Package hashmap implements an unordered map over an open-addressing hash
// table with linear probing, tombstone slots and prime-sized resizing.
//
// What:
//
//   - Map stores key/value pairs in a flat slot array. A removed entry leaves
//     a tombstone behind so probe chains for other keys stay intact; a later
//     insertion on the same chain reuses the first tombstone it passed.
//   - Capacity walks a fixed ladder of primes. When physically-used slots
//     (live + tombstones) reach 66% of capacity, the table rebuilds at the
//     next prime, discarding every tombstone.
//   - Every caller-supplied hash is passed through a 64→32-bit avalanche
//     mixer before the prime modulo, so weak hash codes still spread across
//     the table instead of clustering the linear probe chains.
//
// Why:
//
//   - Open addressing keeps all data in one contiguous allocation — no
//     per-entry nodes, no chains to walk through scattered memory.
//   - Prime capacities (rather than powers of two with bitmasking) break up
//     the stride patterns that make linear probing degrade.
//
// Complexity:
//
//   - Put, Get, Remove, ContainsKey: amortized O(1)
//   - Keys, Values, Entries:         O(capacity), unspecified order
//   - Len, IsEmpty:                  O(1)
//
// Errors:
//
//   - ErrNilHasher: New was given a nil hash function.
//
// Once the largest prime in the ladder is reached the table stops growing and
// inserts keep succeeding with gradually degrading probe lengths; that ceiling
// is ~2.1 billion slots. Internal probe exhaustion below the ceiling is an
// invariant violation and panics.
//
// The map is single-threaded: callers must not mutate it concurrently.
package hashmap
