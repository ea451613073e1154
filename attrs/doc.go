// Package attrs implements the attribute store shared by graph nodes,
// edges and graph-level metadata: an insertion-ordered mapping from
// string key to arbitrary value.
//
// Stores are reference types. An undirected edge exposes the same *Store
// from both endpoints, so a mutation through either adjacency view is
// visible from both — this aliasing is part of the graph contract and is
// only severed by Clone (deep copy).
//
// Numeric reads (capacities, weights, demands) go through Float and Int,
// which coerce the common Go numeric types and fall back to a caller
// default when the key is absent.
package attrs
