// Package core defines the central Graph type and its mutation/query
// contract: attributed nodes, attributed edges, directed or undirected
// orientation, and optional parallel edges distinguished by integer keys.
//
// # Data model
//
// A Graph owns a node table (node ID → attribute store), a successor
// adjacency table and — for directed graphs — a predecessor adjacency
// table, plus one graph-level attribute store. Adjacency is stored as
// nested insertion-ordered maps:
//
//	succ[u][v][key] = *attrs.Store
//
// Simple graphs pin key 0 and merge attributes on re-add; multigraphs
// assign the smallest unused non-negative key when none is supplied.
//
// # Invariants
//
//   - Adding an edge implicitly creates missing endpoints with empty
//     attributes.
//   - For undirected graphs, succ[u][v] and succ[v][u] are the same key
//     ring, so both endpoints expose the same *attrs.Store per edge and
//     an attribute write through either view is visible from both.
//   - For directed graphs, succ[u][v] and pred[v][u] are the same key
//     ring, so the two adjacency tables can never disagree.
//   - Removing a node removes every incident edge and its store.
//   - Node and edge iteration order is insertion order, stable across
//     repeated reads absent mutation.
//   - A self-loop contributes 2 to undirected degree and 1 to each of
//     in-degree and out-degree.
//
// # Concurrency
//
// Graphs are single-threaded: no internal locking, no safe concurrent
// mutation. Query methods return snapshot slices, so the safe pattern
// for removal during traversal is to materialize the node or edge list
// first and then mutate.
//
// # Views
//
// Subgraph and EdgeSubgraph return frozen read-through views: attribute
// stores are shared with the parent, structural mutators fail with
// ErrFrozen. Copy deep-copies every store and produces an independent,
// unfrozen graph.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge (or edge key) does not exist.
//	ErrNotDirected  - predecessor/in-degree query on an undirected graph.
//	ErrFrozen       - structural mutation attempted through a view.
package core
