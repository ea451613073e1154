// Package core: edge lifecycle and edge queries.
//
// The adjacency entry for a pair (u, v) is a shared key ring. Simple
// graphs keep exactly one key (0) per pair and merge attributes on
// repeated AddEdge; multigraphs append a fresh key per call unless an
// explicit key is supplied.

package core

import (
	"github.com/katalvlaran/xgraph/attrs"
	"github.com/katalvlaran/xgraph/ordered"
)

// newRow allocates one adjacency row (neighbor → key ring).
func newRow() *ordered.Map[string, *ring] {
	return ordered.NewMap[string, *ring]()
}

// AddEdge creates or updates the edge u→v (u—v when undirected) and
// returns its key. Missing endpoints are created with empty attributes.
//
// Key resolution:
//   - simple graph: key is always 0; repeated calls merge attributes
//     into the existing store;
//   - multigraph, no WithKey: the smallest non-negative integer not in
//     use for the pair is assigned and a new parallel edge is created;
//   - multigraph, WithKey(k): the edge (u, v, k) is created, or has its
//     attributes merged if it already exists.
//
// Self-loops are permitted and stored as a single ring entry.
// Returns ErrEmptyNodeID or ErrFrozen.
// Complexity: O(1) amortized plus attribute count.
func (g *Graph) AddEdge(u, v string, opts ...EdgeOption) (int, error) {
	if u == "" || v == "" {
		return 0, ErrEmptyNodeID
	}
	if g.frozen {
		return 0, ErrFrozen
	}
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := g.AddNode(u); err != nil {
		return 0, err
	}
	if err := g.AddNode(v); err != nil {
		return 0, err
	}

	r := g.ensureRing(u, v)

	key := 0
	if g.multi {
		switch {
		case cfg.hasKey:
			key = cfg.key
		default:
			// Next non-negative integer not already used for this pair;
			// starts at the ring size and skips explicit keys.
			key = r.Len()
			for r.Has(key) {
				key++
			}
		}
	}

	store, ok := r.Get(key)
	if !ok {
		store = attrs.New()
		r.Set(key, store)
	}
	for _, set := range cfg.attrs {
		set(store)
	}

	return key, nil
}

// ensureRing returns the key ring for the pair (u, v), creating it and
// installing the mirror references when absent. Both endpoints must
// already exist.
func (g *Graph) ensureRing(u, v string) *ring {
	row, _ := g.succ.Get(u)
	if r, ok := row.Get(v); ok {
		return r
	}
	r := ordered.NewMap[int, *attrs.Store]()
	row.Set(v, r)
	if g.directed {
		prow, _ := g.pred.Get(v)
		prow.Set(u, r)
	} else if u != v {
		vrow, _ := g.succ.Get(v)
		vrow.Set(u, r)
	}

	return r
}

// HasEdge reports whether at least one edge u→v exists. O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if row, ok := g.succ.Get(u); ok {
		if r, ok := row.Get(v); ok {
			return r.Len() > 0
		}
	}

	return false
}

// HasEdgeKey reports whether the edge (u, v, key) exists. O(1).
func (g *Graph) HasEdgeKey(u, v string, key int) bool {
	if row, ok := g.succ.Get(u); ok {
		if r, ok := row.Get(v); ok {
			return r.Has(key)
		}
	}

	return false
}

// EdgeAttrs returns the live attribute store of the edge u→v. On a
// multigraph it reports the lowest-keyed parallel edge; use
// EdgeAttrsKey for a specific key.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(k) over the pair's keys for the multigraph minimum.
func (g *Graph) EdgeAttrs(u, v string) (*attrs.Store, error) {
	r, ok := g.ringFor(u, v)
	if !ok || r.Len() == 0 {
		return nil, ErrEdgeNotFound
	}
	if !g.multi {
		store, _ := r.Get(0)
		return store, nil
	}
	best, found := 0, false
	for _, k := range r.Keys() {
		if !found || k < best {
			best, found = k, true
		}
	}
	store, _ := r.Get(best)

	return store, nil
}

// EdgeAttrsKey returns the live attribute store of the edge (u, v, key).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeAttrsKey(u, v string, key int) (*attrs.Store, error) {
	r, ok := g.ringFor(u, v)
	if !ok {
		return nil, ErrEdgeNotFound
	}
	store, ok := r.Get(key)
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return store, nil
}

// EdgeKeys returns the parallel-edge keys of the pair (u, v) in
// insertion order. An absent pair yields an empty slice.
// Complexity: O(k).
func (g *Graph) EdgeKeys(u, v string) []int {
	if r, ok := g.ringFor(u, v); ok {
		return r.Keys()
	}

	return nil
}

// NumberOfEdges returns the count of parallel edges between u and v
// (0 or 1 on simple graphs). O(1).
func (g *Graph) NumberOfEdges(u, v string) int {
	if r, ok := g.ringFor(u, v); ok {
		return r.Len()
	}

	return 0
}

// RemoveEdge deletes one edge u→v. On a multigraph the highest-keyed
// parallel edge is removed (mirroring the reverse of key assignment);
// use RemoveEdgeKey for a specific key.
// Returns ErrEdgeNotFound or ErrFrozen.
// Complexity: O(k).
func (g *Graph) RemoveEdge(u, v string) error {
	if g.frozen {
		return ErrFrozen
	}
	r, ok := g.ringFor(u, v)
	if !ok || r.Len() == 0 {
		return ErrEdgeNotFound
	}
	key := 0
	if g.multi {
		for i, k := range r.Keys() {
			if i == 0 || k > key {
				key = k
			}
		}
	}

	return g.RemoveEdgeKey(u, v, key)
}

// RemoveEdgeKey deletes the edge (u, v, key) and, when the pair's ring
// empties, the adjacency entries on both sides.
// Returns ErrEdgeNotFound or ErrFrozen.
// Complexity: O(k).
func (g *Graph) RemoveEdgeKey(u, v string, key int) error {
	if g.frozen {
		return ErrFrozen
	}
	r, ok := g.ringFor(u, v)
	if !ok || !r.Delete(key) {
		return ErrEdgeNotFound
	}
	if r.Len() == 0 {
		g.dropRing(u, v)
	}

	return nil
}

// dropRing removes the adjacency entries referencing the (u, v) ring.
func (g *Graph) dropRing(u, v string) {
	if row, ok := g.succ.Get(u); ok {
		row.Delete(v)
	}
	if g.directed {
		if prow, ok := g.pred.Get(v); ok {
			prow.Delete(u)
		}
	} else if u != v {
		if vrow, ok := g.succ.Get(v); ok {
			vrow.Delete(u)
		}
	}
}

// ringFor looks up the key ring of the pair (u, v). O(1).
func (g *Graph) ringFor(u, v string) (*ring, bool) {
	row, ok := g.succ.Get(u)
	if !ok {
		return nil, false
	}
	r, ok := row.Get(v)

	return r, ok
}

// Edges returns a snapshot of all edges in insertion order of their
// source node and, per node, of their adjacency entries. Undirected
// edges are reported once, from whichever endpoint the node list
// reaches first. The returned Edge values alias live attribute stores.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.nodes.Len())
	seen := make(map[string]struct{}, g.nodes.Len())
	for _, u := range g.nodes.Keys() {
		row, ok := g.succ.Get(u)
		if !ok {
			continue
		}
		for _, v := range row.Keys() {
			if !g.directed {
				if _, done := seen[v]; done {
					continue // reported from the other endpoint already
				}
			}
			r, _ := row.Get(v)
			for _, k := range r.Keys() {
				store, _ := r.Get(k)
				out = append(out, Edge{U: u, V: v, Key: k, Attrs: store})
			}
		}
		seen[u] = struct{}{}
	}

	return out
}

// EdgeCount returns the total number of edges, counting each parallel
// edge separately and each undirected edge once. Sums ring sizes
// without materializing the edge slice.
// Complexity: O(V + deg), no allocation.
func (g *Graph) EdgeCount() int {
	var total, loops int
	for i := 0; i < g.succ.Len(); i++ {
		u, row := g.succ.At(i)
		for j := 0; j < row.Len(); j++ {
			v, r := row.At(j)
			if v == u {
				loops += r.Len()
			}
			total += r.Len()
		}
	}
	if !g.directed {
		// Mirror entries double-count every non-loop edge.
		return (total + loops) / 2
	}

	return total
}
