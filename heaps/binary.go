package heaps

import (
	"cmp"
	"container/heap"
)

// BinaryHeap is a binary min-heap with lazy decrease-key: superseded
// entries stay in the heap and are skipped when they surface. A
// monotone counter breaks value ties in insertion order.
type BinaryHeap[K comparable, V cmp.Ordered] struct {
	values map[K]V
	items  binItems[K, V]
	count  uint64
}

type binItem[K comparable, V cmp.Ordered] struct {
	value V
	count uint64
	key   K
}

type binItems[K comparable, V cmp.Ordered] []binItem[K, V]

func (h binItems[K, V]) Len() int { return len(h) }
func (h binItems[K, V]) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}

	return h[i].count < h[j].count
}
func (h binItems[K, V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *binItems[K, V]) Push(x any)   { *h = append(*h, x.(binItem[K, V])) }
func (h *binItems[K, V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// NewBinaryHeap returns an empty binary min-heap.
func NewBinaryHeap[K comparable, V cmp.Ordered]() *BinaryHeap[K, V] {
	return &BinaryHeap[K, V]{values: make(map[K]V)}
}

// Len returns the number of live pairs. O(1).
func (h *BinaryHeap[K, V]) Len() int { return len(h.values) }

// Contains reports whether key is live. O(1).
func (h *BinaryHeap[K, V]) Contains(key K) bool {
	_, ok := h.values[key]

	return ok
}

// Get returns the live value of key. O(1).
func (h *BinaryHeap[K, V]) Get(key K) (V, bool) {
	v, ok := h.values[key]

	return v, ok
}

// Min returns the minimum pair without removing it, discarding stale
// entries encountered on the way.
// Complexity: amortized O(log n).
func (h *BinaryHeap[K, V]) Min() (K, V, bool) {
	for h.items.Len() > 0 {
		top := h.items[0]
		live, ok := h.values[top.key]
		if ok && live == top.value {
			return top.key, top.value, true
		}
		heap.Pop(&h.items) // stale entry
	}
	var zk K
	var zv V

	return zk, zv, false
}

// Pop removes and returns the minimum pair.
// Complexity: amortized O(log n).
func (h *BinaryHeap[K, V]) Pop() (K, V, bool) {
	for h.items.Len() > 0 {
		it := heap.Pop(&h.items).(binItem[K, V])
		live, ok := h.values[it.key]
		if ok && live == it.value {
			delete(h.values, it.key)
			return it.key, it.value, true
		}
	}
	var zk K
	var zv V

	return zk, zv, false
}

// Insert adds key with value, or updates an existing key per the
// decrease-key contract. The superseded entry is left in place and
// skipped lazily when it surfaces. Reports whether a pair was inserted
// or an existing value decreased (an allowed increase applies but
// reports false).
// Complexity: O(log n).
func (h *BinaryHeap[K, V]) Insert(key K, value V, allowIncrease bool) bool {
	old, ok := h.values[key]
	if ok {
		if value == old || (value > old && !allowIncrease) {
			return false
		}
	}
	h.count++
	h.values[key] = value
	heap.Push(&h.items, binItem[K, V]{value: value, count: h.count, key: key})

	return !ok || value < old
}
