// Package ordered provides a generic map that preserves key insertion
// order. It is the storage primitive behind attribute stores and graph
// adjacency rows, where iteration order must be the insertion order and
// must stay stable across repeated reads absent mutation.
//
// A Map is not safe for concurrent use; callers that iterate while
// mutating must snapshot Keys() first, exactly as the graph query layer
// does.
//
// Complexity:
//
//	Set/Get/Has    O(1) amortized
//	Delete         O(n) (order slice is compacted in place)
//	Keys/Values    O(n) snapshot copy
package ordered
