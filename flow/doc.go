// Package flow implements residual networks and flow solvers on graphs
// represented by *core.Graph: Edmonds–Karp and Boykov–Kolmogorov maximum
// flow, and a capacity-scaling minimum-cost-flow solver.
//
// # Residual networks
//
// The residual network R built from an input graph G has the same nodes
// as G. R is directed and contains the pair of arcs (u, v) and (v, u)
// iff (u, v) is not a self-loop and at least one of (u, v) and (v, u)
// exists in G. For each arc, Capacity equals the capacity of the
// corresponding edge in G if it exists, or zero otherwise. An infinite
// input capacity (missing attribute) is simulated by a high finite
// value stored as R.Inf — three times the sum of the finite capacities,
// or 1 when that sum is zero. Since the residual capacity of an
// infinite-capacity arc is then always at least 2/3 of Inf while that
// of a finite-capacity arc is at most 1/3 of Inf, an operation that
// moves more than Inf/2 units of flow to the sink proves an
// infinite-capacity s–t path. For every arc pair the invariants
//
//	Flow(u→v) == -Flow(v→u)
//	0 <= Flow(u→v) <= Capacity(u→v)
//
// hold at all times. The computed flow value is available as
// R.FlowValue(); reachability from s over non-saturated arcs of the
// final residual network induces a minimum s–t cut.
//
// # Solvers
//
//   - EdmondsKarp: shortest augmenting paths via bidirectional
//     breadth-first search. O(V·E²).
//   - BoykovKolmogorov: two search trees grown from source and sink
//     with augment/adopt phases and the distance/timestamp marking
//     heuristic. The final trees are exposed for direct min-cut
//     extraction. O(V²·E·|C|) worst case, fast in practice.
//   - CapacityScaling: successive shortest augmenting paths with
//     Δ-scaling on a residual multigraph carrying node excess and
//     potentials; integer capacities and weights. O(E² · log V · log C).
//
// All solvers accept functional options for the capacity attribute
// name, residual reuse and value cutoff; CapacityScaling additionally
// accepts demand/weight attribute names and a pluggable min-heap.
//
// Errors:
//
//	ErrSourceNotFound, ErrSinkNotFound - endpoint missing from the graph.
//	ErrSameNode     - source and sink are the same node.
//	ErrMultigraph   - max-flow solvers require a simple graph.
//	ErrNotDirected  - capacity scaling requires a directed graph.
//	ErrUnbounded    - a feasible flow exists but is not finite.
//	ErrInfeasible   - no flow satisfies all demands.
package flow
