package ordered

// Map is an insertion-ordered mapping from K to V.
//
// The zero value is not usable; construct with NewMap. Keys iterate in
// the order they were first inserted; re-assigning an existing key keeps
// its original position.
type Map[K comparable, V any] struct {
	idx  map[K]int // key → position in keys/vals
	keys []K
	vals []V
}

// NewMap returns an empty ordered map.
// Complexity: O(1).
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{idx: make(map[K]int)}
}

// Len returns the number of stored pairs. O(1).
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Has reports whether key is present. O(1).
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.idx[key]

	return ok
}

// Get returns the value stored under key and whether it was present.
// Complexity: O(1).
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.idx[key]; ok {
		return m.vals[i], true
	}
	var zero V

	return zero, false
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key keeps its position and gets the new value.
// Complexity: O(1) amortized.
func (m *Map[K, V]) Set(key K, value V) {
	if i, ok := m.idx[key]; ok {
		m.vals[i] = value
		return
	}
	m.idx[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Delete removes key and reports whether it was present. The iteration
// order of the remaining keys is unchanged.
// Complexity: O(n) — trailing entries shift left by one.
func (m *Map[K, V]) Delete(key K) bool {
	i, ok := m.idx[key]
	if !ok {
		return false
	}
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.vals[i:], m.vals[i+1:])
	m.keys = m.keys[:len(m.keys)-1]
	m.vals = m.vals[:len(m.vals)-1]
	delete(m.idx, key)
	// Reindex shifted entries.
	for j := i; j < len(m.keys); j++ {
		m.idx[m.keys[j]] = j
	}

	return true
}

// Keys returns a snapshot of the keys in insertion order. Mutating the
// map after the call does not affect the returned slice.
// Complexity: O(n).
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)

	return out
}

// Values returns a snapshot of the values in key insertion order.
// Complexity: O(n).
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)

	return out
}

// At returns the i-th pair in insertion order. The caller must ensure
// 0 <= i < Len().
// Complexity: O(1).
func (m *Map[K, V]) At(i int) (K, V) {
	return m.keys[i], m.vals[i]
}

// Clone returns a shallow copy: keys and values are copied, but values
// of pointer type still alias the same referents.
// Complexity: O(n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		idx:  make(map[K]int, len(m.idx)),
		keys: make([]K, len(m.keys)),
		vals: make([]V, len(m.vals)),
	}
	copy(c.keys, m.keys)
	copy(c.vals, m.vals)
	for k, i := range m.idx {
		c.idx[k] = i
	}

	return c
}

// Clear removes every pair while keeping the map usable. O(1).
func (m *Map[K, V]) Clear() {
	m.idx = make(map[K]int)
	m.keys = nil
	m.vals = nil
}
