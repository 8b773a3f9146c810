package pqheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkIndexes verifies every enqueued Item's embedded index matches its
// actual position in the backing array, and that the heap order holds.
func checkIndexes[V any](t *testing.T, q *AdaptableQueue[V]) {
	t.Helper()
	n := q.heap.Len()
	for i := 0; i < n; i++ {
		it := q.heap.data.Get(i)
		require.Equal(t, i, it.index, "index drift at position %d", i)
		if i > 0 {
			parent := q.heap.data.Get(parentOf(i))
			require.False(t, q.heap.outranks(it, parent),
				"heap order violated between %d and its parent", i)
		}
	}
}

// TestIndexIntegrityUnderRandomMutation churns an adaptable queue and checks
// the index bookkeeping after every operation.
func TestIndexIntegrityUnderRandomMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewAdaptable[int]()
	var live []*Item[int]

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(4); {
		case op == 0 && len(live) > 0:
			i := rng.Intn(len(live))
			require.True(t, q.Remove(live[i]), "step %d", step)
			require.Equal(t, unbound, live[i].index, "removed Items must unbind")
			live = append(live[:i], live[i+1:]...)
		case op == 1 && len(live) > 0:
			i := rng.Intn(len(live))
			replacement := NewItem(rng.Intn(1000), live[i].Value)
			require.True(t, q.Update(live[i], replacement), "step %d", step)
			require.Equal(t, unbound, live[i].index, "replaced Items must unbind")
			live[i] = replacement
		case op == 2 && len(live) > 0:
			it, ok := q.Poll()
			require.True(t, ok, "step %d", step)
			require.Equal(t, unbound, it.index, "polled Items must unbind")
			for i := range live {
				if live[i] == it {
					live = append(live[:i], live[i+1:]...)
					break
				}
			}
		default:
			it := NewItem(rng.Intn(1000), step)
			require.NoError(t, q.Add(it), "step %d", step)
			live = append(live, it)
		}

		checkIndexes(t, q)
	}
}

// TestFromSlicesIndexes verifies bulk construction registers every index.
func TestFromSlicesIndexes(t *testing.T) {
	values := []int{70, 10, 50, 30, 60, 20, 40}
	priorities := []int{7, 1, 5, 3, 6, 2, 4}

	q, err := NewAdaptableFromSlices(values, priorities)
	require.NoError(t, err)
	checkIndexes(t, q)
}
