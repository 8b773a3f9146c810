package hashmap_test

import (
	"math/rand"
	"sort"
	"testing"

	godshash "github.com/emirpasic/gods/maps/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/structures/hashmap"
)

// collide hashes every key to the same code, forcing all entries onto one
// linear probe chain. Used to pin tombstone semantics deterministically.
func collide(int) uint64 { return 0 }

// TestNewValidation verifies constructor argument checking.
func TestNewValidation(t *testing.T) {
	_, err := hashmap.New[int, int](nil)
	assert.ErrorIs(t, err, hashmap.ErrNilHasher)

	m, err := hashmap.New[int, int](hashmap.HashInt, hashmap.WithCapacity(100))
	require.NoError(t, err)
	assert.Equal(t, 197, m.Capacity(), "capacity rounds up to the next prime")

	assert.Panics(t, func() { hashmap.WithCapacity(-1) }, "negative capacity must panic")
}

// TestPutGetRemove verifies the identity laws on a handful of keys.
func TestPutGetRemove(t *testing.T) {
	m, err := hashmap.New[string, int](hashmap.HashString)
	require.NoError(t, err)

	_, replaced := m.Put("one", 1)
	assert.False(t, replaced)
	old, replaced := m.Put("one", 11)
	assert.True(t, replaced)
	assert.Equal(t, 1, old, "previous value is handed back")
	assert.Equal(t, 1, m.Len(), "replacement does not grow the map")

	got, ok := m.Get("one")
	require.True(t, ok)
	assert.Equal(t, 11, got)
	assert.True(t, m.ContainsKey("one"))

	removed, ok := m.Remove("one")
	require.True(t, ok)
	assert.Equal(t, 11, removed)
	assert.True(t, m.IsEmpty())

	_, ok = m.Get("one")
	assert.False(t, ok, "removed key reports absence")
	_, ok = m.Remove("one")
	assert.False(t, ok, "double remove reports absence, not an error")
}

// TestTombstoneChain pins the probe-through-tombstone contract: with every
// key colliding onto one chain, removing an early key must not hide the keys
// probing past it, and a later insert must reuse the tombstone.
func TestTombstoneChain(t *testing.T) {
	m, err := hashmap.New[int, string](collide)
	require.NoError(t, err)

	m.Put(1, "v1")
	m.Put(2, "v2")
	m.Put(3, "v3")

	_, ok := m.Remove(1)
	require.True(t, ok)

	// Keys 2 and 3 sit beyond the tombstone on the same chain.
	got, ok := m.Get(2)
	require.True(t, ok, "probe must pass through the tombstone")
	assert.Equal(t, "v2", got)
	got, ok = m.Get(3)
	require.True(t, ok)
	assert.Equal(t, "v3", got)

	// A new key on the chain reuses the tombstone slot.
	m.Put(4, "v4")
	_, ok = m.Get(1)
	assert.False(t, ok, "removed key stays gone after the slot is reused")
	got, ok = m.Get(4)
	require.True(t, ok)
	assert.Equal(t, "v4", got)
	assert.Equal(t, 3, m.Len())
}

// TestResizeScenario inserts 20 sequential keys into an 11-slot table: the
// load factor forces at least one resize, after which every entry must still
// resolve to its latest value.
func TestResizeScenario(t *testing.T) {
	m, err := hashmap.New[int, int](hashmap.HashInt)
	require.NoError(t, err)
	require.Equal(t, 11, m.Capacity())

	for i := 0; i < 20; i++ {
		m.Put(i, i*10)
	}

	assert.Equal(t, 20, m.Len())
	assert.Greater(t, m.Capacity(), 11, "0.66 load factor must have forced a resize")

	for i := 0; i < 20; i++ {
		got, ok := m.Get(i)
		require.True(t, ok, "key %d lost across resize", i)
		assert.Equal(t, i*10, got)
	}
}

// TestDifferentialAgainstBuiltinMap drives the map and Go's built-in map
// through the same randomized workload, comparing presence, values and sizes
// at every step and full contents at the end.
func TestDifferentialAgainstBuiltinMap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mine, err := hashmap.New[int, int](hashmap.HashInt)
	require.NoError(t, err)
	oracle := make(map[int]int)

	const steps = 20000
	for i := 0; i < steps; i++ {
		k := rng.Intn(2000)
		switch rng.Intn(3) {
		case 0, 1:
			v := rng.Int()
			_, replacedMine := mine.Put(k, v)
			_, replacedOracle := oracle[k]
			oracle[k] = v
			require.Equal(t, replacedOracle, replacedMine, "step %d: put(%d)", i, k)
		case 2:
			gotMine, okMine := mine.Remove(k)
			gotOracle, okOracle := oracle[k]
			delete(oracle, k)
			require.Equal(t, okOracle, okMine, "step %d: remove(%d)", i, k)
			if okMine {
				require.Equal(t, gotOracle, gotMine)
			}
		}

		require.Equal(t, len(oracle), mine.Len(), "step %d: size drift", i)

		probe := rng.Intn(2000)
		gotMine, okMine := mine.Get(probe)
		gotOracle, okOracle := oracle[probe]
		require.Equal(t, okOracle, okMine, "step %d: presence of %d", i, probe)
		if okMine {
			require.Equal(t, gotOracle, gotMine)
		}
	}

	keys := mine.Keys()
	require.Len(t, keys, len(oracle))
	for _, k := range keys {
		_, ok := oracle[k]
		require.True(t, ok, "key %d reported but never stored", k)
	}
}

// TestDifferentialAgainstGodsHashMap replays one random workload against
// gods' hashmap and compares the surviving entry sets.
func TestDifferentialAgainstGodsHashMap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mine, err := hashmap.New[int, int](hashmap.HashInt)
	require.NoError(t, err)
	oracle := godshash.New()

	for i := 0; i < 5000; i++ {
		k := rng.Intn(800)
		if rng.Intn(3) == 0 {
			mine.Remove(k)
			oracle.Remove(k)
		} else {
			mine.Put(k, i)
			oracle.Put(k, i)
		}
	}

	require.Equal(t, oracle.Size(), mine.Len())

	mineKeys := mine.Keys()
	oracleKeys := make([]int, 0, oracle.Size())
	for _, k := range oracle.Keys() {
		oracleKeys = append(oracleKeys, k.(int))
	}
	sort.Ints(mineKeys)
	sort.Ints(oracleKeys)
	assert.Equal(t, oracleKeys, mineKeys, "surviving key sets must match")

	for _, k := range mineKeys {
		gotMine, _ := mine.Get(k)
		gotOracle, _ := oracle.Get(k)
		require.Equal(t, gotOracle.(int), gotMine, "value of %d", k)
	}
}

// TestCollectionsShortCircuit verifies Keys/Values/Entries report exactly the
// live entries even when tombstones litter the table.
func TestCollectionsShortCircuit(t *testing.T) {
	m, err := hashmap.New[int, int](hashmap.HashInt)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		m.Put(i, i)
	}
	for i := 0; i < 6; i += 2 {
		m.Remove(i)
	}

	keys := m.Keys()
	sort.Ints(keys)
	assert.Equal(t, []int{1, 3, 5}, keys)

	values := m.Values()
	sort.Ints(values)
	assert.Equal(t, []int{1, 3, 5}, values)

	entries := m.Entries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, e.Key, e.Value)
	}
}

// TestClear verifies the map is reusable after Clear.
func TestClear(t *testing.T) {
	m, err := hashmap.New[string, int](hashmap.HashString)
	require.NoError(t, err)

	m.Put("a", 1)
	m.Put("b", 2)
	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("c", 3)
	assert.Equal(t, 1, m.Len())
}
