// Package core: adjacency and degree queries.

package core

// Neighbors returns a snapshot of the nodes adjacent to id, in
// adjacency insertion order. For directed graphs these are successors;
// for undirected graphs, all adjacent nodes. A self-loop reports id
// itself once.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.nodes.Has(id) {
		return nil, ErrNodeNotFound
	}
	row, ok := g.succ.Get(id)
	if !ok {
		return nil, nil
	}

	return row.Keys(), nil
}

// Predecessors returns a snapshot of the nodes with an edge into id, in
// adjacency insertion order. Directed graphs only.
// Returns ErrNotDirected on undirected graphs, ErrNodeNotFound if id is
// absent.
// Complexity: O(indeg(id)).
func (g *Graph) Predecessors(id string) ([]string, error) {
	if !g.directed {
		return nil, ErrNotDirected
	}
	if !g.nodes.Has(id) {
		return nil, ErrNodeNotFound
	}
	row, ok := g.pred.Get(id)
	if !ok {
		return nil, nil
	}

	return row.Keys(), nil
}

// Degree returns the number of incident edge-ends at id: parallel edges
// count separately, an undirected self-loop counts 2, and on directed
// graphs the result is in-degree plus out-degree.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (int, error) {
	if !g.nodes.Has(id) {
		return 0, ErrNodeNotFound
	}
	if g.directed {
		in, _ := g.InDegree(id)
		out, _ := g.OutDegree(id)

		return in + out, nil
	}
	total := 0
	if row, ok := g.succ.Get(id); ok {
		for _, v := range row.Keys() {
			r, _ := row.Get(v)
			total += r.Len()
			if v == id {
				total += r.Len() // self-loop contributes both ends
			}
		}
	}

	return total, nil
}

// DegreeWeighted sums the named numeric attribute across incident
// edges, defaulting a missing attribute to 1. Counting conventions
// match Degree (self-loops doubled on undirected graphs).
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) DegreeWeighted(id, weight string) (float64, error) {
	if !g.nodes.Has(id) {
		return 0, ErrNodeNotFound
	}
	if g.directed {
		in, _ := g.inOutWeighted(id, weight, g.pred)
		out, _ := g.inOutWeighted(id, weight, g.succ)

		return in + out, nil
	}
	total := 0.0
	if row, ok := g.succ.Get(id); ok {
		for _, v := range row.Keys() {
			r, _ := row.Get(v)
			for _, k := range r.Keys() {
				store, _ := r.Get(k)
				w := store.Float(weight, 1)
				total += w
				if v == id {
					total += w
				}
			}
		}
	}

	return total, nil
}

// InDegree returns the number of edges into id. Directed graphs only.
// Returns ErrNotDirected or ErrNodeNotFound.
// Complexity: O(indeg(id)).
func (g *Graph) InDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}

	return g.countRow(id, g.pred)
}

// OutDegree returns the number of edges out of id. Directed graphs only.
// Returns ErrNotDirected or ErrNodeNotFound.
// Complexity: O(outdeg(id)).
func (g *Graph) OutDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}

	return g.countRow(id, g.succ)
}

// countRow sums ring sizes across one adjacency row of id.
func (g *Graph) countRow(id string, adj *adjacency) (int, error) {
	if !g.nodes.Has(id) {
		return 0, ErrNodeNotFound
	}
	total := 0
	if row, ok := adj.Get(id); ok {
		for _, r := range row.Values() {
			total += r.Len()
		}
	}

	return total, nil
}

// inOutWeighted sums the weight attribute across one adjacency row.
func (g *Graph) inOutWeighted(id, weight string, adj *adjacency) (float64, error) {
	if !g.nodes.Has(id) {
		return 0, ErrNodeNotFound
	}
	total := 0.0
	if row, ok := adj.Get(id); ok {
		for _, r := range row.Values() {
			for _, store := range r.Values() {
				total += store.Float(weight, 1)
			}
		}
	}

	return total, nil
}
