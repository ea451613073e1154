// Package core: frozen read-through views.
//
// A view is a Graph whose attribute stores alias the parent's storage
// and whose structural mutators are disabled (ErrFrozen). Attribute
// writes through a view are visible in the parent and in every sibling
// view, which is the intended aliasing contract; Copy severs it.

package core

import "github.com/katalvlaran/xgraph/attrs"

// setEdgeStore installs store under (u, v, key) sharing the usual
// mirror structure. Construction-time helper: bypasses the frozen flag
// and assumes both endpoints exist.
func (g *Graph) setEdgeStore(u, v string, key int, store *attrs.Store) {
	r := g.ensureRing(u, v)
	r.Set(key, store)
}

// addNodeShared inserts node id with the given (shared) store,
// bypassing the frozen flag.
func (g *Graph) addNodeShared(id string, store *attrs.Store) {
	if !g.nodes.Has(id) {
		g.nodes.Set(id, store)
		g.ensureAdj(id)
	}
}

// Subgraph returns the induced subgraph view on the given nodes: same
// capability flags, the listed nodes that exist in g, and every edge of
// g with both endpoints in the list. Unknown node IDs are ignored.
//
// The view is frozen (structural mutation returns ErrFrozen) and
// read-through: node, edge and graph attribute stores are shared with
// g, so attribute mutation through either side is visible in both.
// Structural changes to g made after the call are not reflected.
// Complexity: O(V' + E') over the induced subgraph.
func (g *Graph) Subgraph(nodes []string) *Graph {
	sg := g.cloneEmpty()
	sg.attributes = g.attributes

	keep := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if store, ok := g.nodes.Get(id); ok {
			if _, dup := keep[id]; !dup {
				keep[id] = struct{}{}
				sg.addNodeShared(id, store)
			}
		}
	}
	for _, e := range g.Edges() {
		if _, ok := keep[e.U]; !ok {
			continue
		}
		if _, ok := keep[e.V]; !ok {
			continue
		}
		sg.setEdgeStore(e.U, e.V, e.Key, e.Attrs)
	}
	sg.frozen = true

	return sg
}

// EdgeSubgraph returns the view induced by the given edges: the listed
// edges that exist in g plus their endpoints. Unknown edges are
// ignored. Sharing and freezing semantics match Subgraph.
// Complexity: O(len(edges)).
func (g *Graph) EdgeSubgraph(edges []EdgeID) *Graph {
	sg := g.cloneEmpty()
	sg.attributes = g.attributes

	for _, id := range edges {
		store, err := g.EdgeAttrsKey(id.U, id.V, id.Key)
		if err != nil {
			continue
		}
		for _, n := range [2]string{id.U, id.V} {
			if ns, ok := g.nodes.Get(n); ok {
				sg.addNodeShared(n, ns)
			}
		}
		sg.setEdgeStore(id.U, id.V, id.Key, store)
	}
	sg.frozen = true

	return sg
}
