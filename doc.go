// Package xgraph is an in-memory library for attributed graphs, from the
// core multigraph data model up to residual networks and flow solvers.
//
// What xgraph provides:
//
//   - Core primitives: directed/undirected, simple/multi graphs with
//     attributed nodes, edges and graph-level metadata, mutated in place
//     with deterministic insertion-order iteration
//   - Views: read-through induced subgraphs and edge subgraphs that alias
//     the parent's attribute storage
//   - Conversions: dict-of-dicts, dict-of-lists, edge lists, adjacency
//     matrices, and an ordered probe chain over foreign graph-like shapes
//   - Disjoint sets: Union-Find with path compression and weighted union
//   - Flow: residual networks with a simulated-infinity sentinel,
//     Edmonds–Karp and Boykov–Kolmogorov maximum flow, and a
//     capacity-scaling minimum-cost-flow solver with pluggable min-heaps
//
// Why choose xgraph?
//
//   - Minimal API, clear naming, explicit sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – insertion-order node and edge iteration, stable
//     across repeated reads absent mutation
//
// Everything is organized under per-concern subpackages:
//
//	ordered/    — generic insertion-ordered map, the storage primitive
//	attrs/      — attribute stores shared by nodes, edges and graphs
//	core/       — fundamental Graph type, mutation and query contract
//	convert/    — import/export to collaborator formats
//	unionfind/  — disjoint-set structure
//	heaps/      — min-heap implementations for cost-scaling searches
//	flow/       — residual networks, max-flow and min-cost-flow solvers
//
// Quick ASCII example:
//
//	    x ──3──▶ a ──3──▶ c
//	    │                 │
//	    1                 2
//	    ▼                 ▼
//	    b ──5──▶ ...      y
//
//	a capacitated network; flow.MaximumFlowValue(g, "x", "y") == 3.
//
// Dive into the package docs for full examples and the residual-network
// conventions shared by all flow solvers.
//
//	go get github.com/katalvlaran/xgraph
package xgraph
