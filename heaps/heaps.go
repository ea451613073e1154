package heaps

import "cmp"

// MinHeap stores key-value pairs ordered by value.
//
// Implementations are not safe for concurrent use.
type MinHeap[K comparable, V cmp.Ordered] interface {
	// Len returns the number of stored pairs.
	Len() int

	// Contains reports whether key is present.
	Contains(key K) bool

	// Get returns the value associated with key.
	Get(key K) (V, bool)

	// Min returns the pair with the minimum value without removing it.
	// The second result is false when the heap is empty.
	Min() (K, V, bool)

	// Pop removes and returns the pair with the minimum value.
	// The second result is false when the heap is empty.
	Pop() (K, V, bool)

	// Insert adds a new pair or modifies the value of an existing key.
	// An existing value only changes when the new value is smaller,
	// unless allowIncrease is true. It reports whether a pair was
	// inserted or an existing value decreased.
	Insert(key K, value V, allowIncrease bool) bool
}
