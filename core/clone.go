// Package core: deep copies and orientation transformations.

package core

// Copy returns a deep copy: same capability flags, independent node,
// edge and graph attribute stores, insertion order preserved. Copying a
// frozen view yields an unfrozen, fully independent graph.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	c := g.cloneEmpty()
	c.attributes = g.attributes.Clone()
	for _, id := range g.nodes.Keys() {
		store, _ := g.nodes.Get(id)
		c.nodes.Set(id, store.Clone())
		c.ensureAdj(id)
	}
	for _, e := range g.Edges() {
		c.setEdgeStore(e.U, e.V, e.Key, e.Attrs.Clone())
	}

	return c
}

// ToDirected returns a directed deep copy. Each undirected edge
// (u, v, k) becomes the pair of directed edges (u, v, k) and (v, u, k)
// with independent attribute copies; self-loops become one directed
// loop. A directed input is equivalent to Copy.
// Complexity: O(V + E).
func (g *Graph) ToDirected() *Graph {
	if g.directed {
		return g.Copy()
	}
	opts := []GraphOption{WithDirected(true)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}
	d := NewGraph(opts...)
	d.attributes = g.attributes.Clone()
	for _, id := range g.nodes.Keys() {
		store, _ := g.nodes.Get(id)
		d.nodes.Set(id, store.Clone())
		d.ensureAdj(id)
	}
	for _, e := range g.Edges() {
		d.setEdgeStore(e.U, e.V, e.Key, e.Attrs.Clone())
		if e.U != e.V {
			d.setEdgeStore(e.V, e.U, e.Key, e.Attrs.Clone())
		}
	}

	return d
}

// ToUndirected returns an undirected deep copy. Reciprocal directed
// edges (u, v, k) and (v, u, k) collapse to one undirected edge; the
// later-iterated direction's attributes win on collision. An undirected
// input is equivalent to Copy.
// Complexity: O(V + E).
func (g *Graph) ToUndirected() *Graph {
	if !g.directed {
		return g.Copy()
	}
	opts := []GraphOption{WithDirected(false)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}
	u := NewGraph(opts...)
	u.attributes = g.attributes.Clone()
	for _, id := range g.nodes.Keys() {
		store, _ := g.nodes.Get(id)
		u.nodes.Set(id, store.Clone())
		u.ensureAdj(id)
	}
	for _, e := range g.Edges() {
		u.setEdgeStore(e.U, e.V, e.Key, e.Attrs.Clone())
	}

	return u
}
