package heaps

import "cmp"

// PairingHeap is a multipass pairing heap with true decrease-key.
type PairingHeap[K comparable, V cmp.Ordered] struct {
	root  *pairNode[K, V]
	nodes map[K]*pairNode[K, V]
}

// pairNode is one heap node. Siblings form a doubly-linked list
// anchored at the parent's child pointer.
type pairNode[K comparable, V cmp.Ordered] struct {
	key   K
	value V

	parent *pairNode[K, V]
	child  *pairNode[K, V]
	prev   *pairNode[K, V]
	next   *pairNode[K, V]
}

// NewPairingHeap returns an empty pairing heap.
func NewPairingHeap[K comparable, V cmp.Ordered]() *PairingHeap[K, V] {
	return &PairingHeap[K, V]{nodes: make(map[K]*pairNode[K, V])}
}

// Len returns the number of stored pairs. O(1).
func (h *PairingHeap[K, V]) Len() int { return len(h.nodes) }

// Contains reports whether key is present. O(1).
func (h *PairingHeap[K, V]) Contains(key K) bool {
	_, ok := h.nodes[key]

	return ok
}

// Get returns the value associated with key. O(1).
func (h *PairingHeap[K, V]) Get(key K) (V, bool) {
	if n, ok := h.nodes[key]; ok {
		return n.value, true
	}
	var zero V

	return zero, false
}

// Min returns the minimum pair without removing it. O(1).
func (h *PairingHeap[K, V]) Min() (K, V, bool) {
	if h.root == nil {
		var zk K
		var zv V

		return zk, zv, false
	}

	return h.root.key, h.root.value, true
}

// Pop removes and returns the minimum pair, then collapses the root's
// children with a multipass pairing round.
// Complexity: amortized O(log n).
func (h *PairingHeap[K, V]) Pop() (K, V, bool) {
	if h.root == nil {
		var zk K
		var zv V

		return zk, zv, false
	}
	top := h.root
	delete(h.nodes, top.key)
	h.root = h.collapse(top.child)
	if h.root != nil {
		h.root.parent = nil
	}

	return top.key, top.value, true
}

// Insert adds key with value, or applies decrease-key (or an allowed
// increase) to an existing key. Reports whether a pair was inserted or
// an existing value decreased.
// Complexity: O(1) insert/decrease, amortized O(log n) increase.
func (h *PairingHeap[K, V]) Insert(key K, value V, allowIncrease bool) bool {
	n, ok := h.nodes[key]
	if !ok {
		n = &pairNode[K, V]{key: key, value: value}
		h.nodes[key] = n
		h.root = merge(h.root, n)

		return true
	}
	if value == n.value || (value > n.value && !allowIncrease) {
		return false
	}
	decreased := value < n.value
	if decreased {
		n.value = value
		if n != h.root {
			h.cut(n)
			h.root = merge(h.root, n)
		}

		return true
	}

	// Allowed increase: the node's children may now violate heap order,
	// so they are collapsed back into the heap and the node re-merged
	// as a leaf.
	n.value = value
	children := h.collapse(n.child)
	n.child = nil
	if children != nil {
		children.parent = nil
		if n == h.root {
			h.root = merge(children, n)
			return false
		}
		h.cut(n)
		h.root = merge(h.root, children)
		h.root = merge(h.root, n)
	}

	return false
}

// cut detaches n (with its subtree) from its sibling list and parent.
func (h *PairingHeap[K, V]) cut(n *pairNode[K, V]) {
	if n.parent != nil && n.parent.child == n {
		n.parent.child = n.next
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
}

// collapse performs the multipass pairing round over a sibling list and
// returns the resulting single root (nil for an empty list).
func (h *PairingHeap[K, V]) collapse(first *pairNode[K, V]) *pairNode[K, V] {
	if first == nil {
		return nil
	}
	// Detach the sibling list into a slice of singletons.
	var heads []*pairNode[K, V]
	for n := first; n != nil; {
		next := n.next
		n.parent, n.prev, n.next = nil, nil, nil
		heads = append(heads, n)
		n = next
	}
	// Pair adjacent heaps repeatedly until one remains.
	for len(heads) > 1 {
		paired := heads[:0]
		for i := 0; i < len(heads); i += 2 {
			if i+1 < len(heads) {
				paired = append(paired, merge(heads[i], heads[i+1]))
			} else {
				paired = append(paired, heads[i])
			}
		}
		heads = paired
	}

	return heads[0]
}

// merge links two pairing heaps, the smaller root becoming the parent.
func merge[K comparable, V cmp.Ordered](a, b *pairNode[K, V]) *pairNode[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.value < a.value {
		a, b = b, a
	}
	// b becomes the first child of a.
	b.parent = a
	b.next = a.child
	if a.child != nil {
		a.child.prev = b
	}
	b.prev = nil
	a.child = b

	return a
}
