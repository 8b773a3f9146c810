package pqheap_test

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/structures/pqheap"
)

const benchHeapSize = 1 << 14

func benchValues() []int {
	rng := rand.New(rand.NewSource(42))
	values := make([]int, benchHeapSize)
	for i := range values {
		values[i] = rng.Intn(benchHeapSize)
	}
	return values
}

func BenchmarkHeapAdd(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h := pqheap.New[int]()
		for _, v := range values {
			h.Add(v)
		}
	}
}

func BenchmarkHeapAdd_ContainerHeap(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h := &intHeap{}
		for _, v := range values {
			heap.Push(h, v)
		}
	}
}

func BenchmarkHeapAdd_GodsBinaryHeap(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		h := binaryheap.NewWithIntComparator()
		for _, v := range values {
			h.Push(v)
		}
	}
}

func BenchmarkHeapPoll(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		h := pqheap.NewFromSlice(values)
		b.StartTimer()
		for !h.IsEmpty() {
			h.Poll()
		}
	}
}

func BenchmarkHeapify(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		pqheap.NewFromSlice(values)
	}
}

func BenchmarkAdaptableUpdate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	q := pqheap.NewAdaptable[int]()
	items := make([]*pqheap.Item[int], benchHeapSize)
	for i := range items {
		items[i] = pqheap.NewItem(rng.Intn(benchHeapSize), i)
		if err := q.Add(items[i]); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i := n % len(items)
		replacement := pqheap.NewItem(rng.Intn(benchHeapSize), items[i].Value)
		if !q.Update(items[i], replacement) {
			b.Fatal("update failed")
		}
		items[i] = replacement
	}
}
