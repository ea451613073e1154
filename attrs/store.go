package attrs

import "github.com/katalvlaran/xgraph/ordered"

// Store is an ordered key→value attribute mapping.
//
// The zero value is not usable; construct with New. Keys iterate in
// insertion order.
type Store struct {
	m *ordered.Map[string, any]
}

// New returns an empty store.
// Complexity: O(1).
func New() *Store {
	return &Store{m: ordered.NewMap[string, any]()}
}

// From builds a store from a plain map, inserting keys in the order of
// the supplied keys slice when given, or in map-range order otherwise.
// Complexity: O(n).
func From(kv map[string]any, keyOrder ...string) *Store {
	s := New()
	for _, k := range keyOrder {
		if v, ok := kv[k]; ok {
			s.Set(k, v)
		}
	}
	for k, v := range kv {
		if !s.Has(k) {
			s.Set(k, v)
		}
	}

	return s
}

// Set stores value under key, overwriting any previous value. O(1).
func (s *Store) Set(key string, value any) {
	s.m.Set(key, value)
}

// Get returns the value under key and whether it was present. O(1).
func (s *Store) Get(key string) (any, bool) {
	return s.m.Get(key)
}

// Has reports whether key is present. O(1).
func (s *Store) Has(key string) bool {
	return s.m.Has(key)
}

// Delete removes key, reporting whether it was present. O(n).
func (s *Store) Delete(key string) bool {
	return s.m.Delete(key)
}

// Len returns the number of attributes. O(1).
func (s *Store) Len() int {
	return s.m.Len()
}

// Keys returns a snapshot of attribute keys in insertion order. O(n).
func (s *Store) Keys() []string {
	return s.m.Keys()
}

// Merge copies every pair of other into s, overwriting on key clash.
// Nil other is a no-op.
// Complexity: O(len(other)).
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}
	for i := 0; i < other.m.Len(); i++ {
		k, v := other.m.At(i)
		s.m.Set(k, v)
	}
}

// MergeMap copies kv into s in the deterministic order of sorted-free
// map iteration replaced by the keys slice of an intermediate From call.
// It exists for call sites that carry literal attribute maps.
// Complexity: O(len(kv)).
func (s *Store) MergeMap(kv map[string]any) {
	s.Merge(From(kv))
}

// Clone returns an independent deep copy of the key set. Values are
// copied by assignment; values of pointer type still alias the same
// referent, matching the copy semantics of the original attribute dicts.
// Complexity: O(n).
func (s *Store) Clone() *Store {
	return &Store{m: s.m.Clone()}
}

// Map materializes the store as a plain map. O(n).
func (s *Store) Map() map[string]any {
	out := make(map[string]any, s.m.Len())
	for i := 0; i < s.m.Len(); i++ {
		k, v := s.m.At(i)
		out[k] = v
	}

	return out
}

// Float returns the value under key coerced to float64, or def when the
// key is absent or holds a non-numeric value.
// Complexity: O(1).
func (s *Store) Float(key string, def float64) float64 {
	v, ok := s.m.Get(key)
	if !ok {
		return def
	}
	if f, ok := AsFloat(v); ok {
		return f
	}

	return def
}

// Int returns the value under key coerced to int64, with the same
// fallback rule as Float. Float values are truncated toward zero.
// Complexity: O(1).
func (s *Store) Int(key string, def int64) int64 {
	v, ok := s.m.Get(key)
	if !ok {
		return def
	}
	if n, ok := AsInt(v); ok {
		return n
	}

	return def
}

// AsFloat coerces the common numeric types to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	return 0, false
}

// AsInt coerces the common numeric types to int64.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	}

	return 0, false
}
