// Package orderedmap sentinel errors and internal node type.
package orderedmap

import (
	"cmp"
	"errors"
)

// Sentinel errors for orderedmap operations.
var (
	// ErrEmptyMap indicates a query that has no answer on an empty map,
	// such as Height. Check IsEmpty first.
	ErrEmptyMap = errors.New("orderedmap: map is empty")
)

// node is a single AVL tree node. Children are owned exclusively by their
// parent; there are no parent back-references, so no reference cycles exist
// anywhere in the tree. Rebalancing relies on the cached height.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	height int
}
