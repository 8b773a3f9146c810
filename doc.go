// Package structures is a library of classic generic data structures, each
// one validated against an established equivalent via randomized differential
// testing.
//
// 🚀 What is structures?
//
//	A pure-Go collection of self-contained abstract data types:
//		• arraylist  — resizable array with a stable merge sort
//		• linkedlist — singly linked list with queue-style ends
//		• orderedmap — self-balancing ordered map (AVL tree)
//		• hashmap    — open-addressing hash map with tombstones & prime resizing
//		• pqheap     — binary heap & adaptable (index-tracking) priority queue
//		• median     — running-median tracker built from two heaps
//		• core       — the shared key/value Entry pair type
//
// ✨ Why choose structures?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – comma-ok for absent data, sentinel errors for misuse
//   - Pure Go – no cgo; third-party libraries appear only as test oracles
//   - Single-threaded by design – no hidden locks, no background work
//
// Every structure is exercised the same way: its contract tests pit it
// against a reference implementation (gods, google/btree, GoLLRB, the
// built-in map, container/heap) under long randomized operation sequences
// with a fixed seed, so any divergence is reproducible.
//
// Dive into each package's doc.go for contracts, complexity tables and
// worked examples.
//
//	go get github.com/katalvlaran/structures
package structures
