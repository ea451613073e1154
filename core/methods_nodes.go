// Package core: node lifecycle and node queries.
//
// Nodes have no independent lifetime object; they exist as keys in the
// node table with an associated attribute store. Removing a node removes
// every incident edge (see removeIncident).

package core

import "github.com/katalvlaran/xgraph/attrs"

// AddNode inserts node id if absent and merges the supplied attribute
// options into its store. Re-adding an existing node is not an error:
// its attributes are merged, its position in iteration order is kept.
// Returns ErrEmptyNodeID or ErrFrozen.
// Complexity: O(1) amortized plus attribute count.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if g.frozen {
		return ErrFrozen
	}
	store, ok := g.nodes.Get(id)
	if !ok {
		store = attrs.New()
		g.nodes.Set(id, store)
		g.ensureAdj(id)
	}
	for _, opt := range opts {
		opt(store)
	}

	return nil
}

// HasNode reports whether node id exists. O(1).
func (g *Graph) HasNode(id string) bool {
	return g.nodes.Has(id)
}

// NodeAttrs returns the live attribute store of node id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1).
func (g *Graph) NodeAttrs(id string) (*attrs.Store, error) {
	store, ok := g.nodes.Get(id)
	if !ok {
		return nil, ErrNodeNotFound
	}

	return store, nil
}

// RemoveNode deletes node id together with all incident edges and their
// attribute stores. Returns ErrNodeNotFound if id is absent, ErrFrozen
// on a view.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id string) error {
	if g.frozen {
		return ErrFrozen
	}
	if !g.nodes.Has(id) {
		return ErrNodeNotFound
	}

	// Drop the mirror entry held by every successor and predecessor.
	if row, ok := g.succ.Get(id); ok {
		for _, v := range row.Keys() {
			if v == id {
				continue // self-loop mirror is the same row
			}
			if g.directed {
				if prow, ok := g.pred.Get(v); ok {
					prow.Delete(id)
				}
			} else if vrow, ok := g.succ.Get(v); ok {
				vrow.Delete(id)
			}
		}
	}
	if g.directed {
		if row, ok := g.pred.Get(id); ok {
			for _, u := range row.Keys() {
				if u == id {
					continue
				}
				if srow, ok := g.succ.Get(u); ok {
					srow.Delete(id)
				}
			}
		}
		g.pred.Delete(id)
	}
	g.succ.Delete(id)
	g.nodes.Delete(id)

	return nil
}

// Nodes returns a snapshot of all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	return g.nodes.Keys()
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return g.nodes.Len()
}

// Clear removes every node and edge while keeping capability flags and
// the graph-level attribute store. Returns ErrFrozen on a view.
func (g *Graph) Clear() error {
	if g.frozen {
		return ErrFrozen
	}
	g.nodes.Clear()
	g.succ.Clear()
	if g.directed {
		g.pred.Clear()
	}

	return nil
}

// ensureAdj makes the adjacency rows for id non-nil.
func (g *Graph) ensureAdj(id string) {
	if !g.succ.Has(id) {
		g.succ.Set(id, newRow())
	}
	if g.directed && !g.pred.Has(id) {
		g.pred.Set(id, newRow())
	}
}
