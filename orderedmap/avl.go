package orderedmap

import "cmp"

// This file holds the AVL mechanics: recursive insert/remove that hand back
// the (possibly new) subtree root, and the rotation machinery that keeps
// every node's balance factor within ±1.

// insert adds or replaces key under n and returns the new subtree root, the
// previous value and whether a replacement happened.
func insert[K cmp.Ordered, V any](n *node[K, V], key K, value V) (*node[K, V], V, bool) {
	if n == nil {
		var zero V
		return &node[K, V]{key: key, value: value, height: 1}, zero, false
	}

	var (
		old      V
		replaced bool
	)
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, old, replaced = insert(n.left, key, value)
	case c > 0:
		n.right, old, replaced = insert(n.right, key, value)
	default:
		// Key already present: replace the value in place, size unchanged,
		// heights untouched.
		old = n.value
		n.value = value

		return n, old, true
	}

	return rebalance(n), old, replaced
}

// remove deletes key under n and returns the new subtree root, the removed
// value and whether anything was removed.
func remove[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], V, bool) {
	if n == nil {
		var zero V
		return nil, zero, false
	}

	var (
		old     V
		removed bool
	)
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, old, removed = remove(n.left, key)
	case c > 0:
		n.right, old, removed = remove(n.right, key)
	default:
		old = n.value
		if n.left == nil || n.right == nil {
			// Leaf or one child: splice the node out.
			child := n.left
			if child == nil {
				child = n.right
			}

			return child, old, true
		}

		// Two children: exchange this node's pair with its in-order
		// successor (leftmost of the right subtree), then delete the doomed
		// pair from the right subtree by its key. A value exchange instead
		// of a physical node swap keeps the recursion free of parent
		// bookkeeping; node identity is not part of the caller contract.
		successor := n.right
		for successor.left != nil {
			successor = successor.left
		}
		n.key, successor.key = successor.key, n.key
		n.value, successor.value = successor.value, n.value
		n.right, _, _ = remove(n.right, key)
		removed = true
	}

	if !removed {
		return n, old, false
	}

	return rebalance(n), old, true
}

// rebalance recomputes n's height and, when the balance factor leaves ±1,
// restores it with at most two rotations. The left-right and right-left cases
// are reduced to left-left / right-right by first rotating the heavy child.
func rebalance[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		panic("orderedmap: rebalance invoked on nil node")
	}

	updateHeight(n)

	balance := balanceOf(n)
	if balance > 1 {
		// Left subtree is taller.
		if balanceOf(n.left) < 0 {
			n.left = rotateLeft(n.left) // left-right case
		}

		return rotateRight(n)
	}
	if balance < -1 {
		// Right subtree is taller.
		if balanceOf(n.right) > 0 {
			n.right = rotateRight(n.right) // right-left case
		}

		return rotateLeft(n)
	}

	return n
}

// rotateLeft lifts n's right child into n's position and returns it.
// Exactly the two nodes involved get fresh heights.
func rotateLeft[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil || n.right == nil {
		panic("orderedmap: left rotation requires a right child")
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateRight lifts n's left child into n's position and returns it.
func rotateRight[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil || n.left == nil {
		panic("orderedmap: right rotation requires a left child")
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// updateHeight recomputes n.height from its children.
func updateHeight[K cmp.Ordered, V any](n *node[K, V]) {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

// balanceOf is height(left) − height(right); positive means left-heavy.
func balanceOf[K cmp.Ordered, V any](n *node[K, V]) int {
	return heightOf(n.left) - heightOf(n.right)
}

// heightOf treats a missing child as height 0.
func heightOf[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}
