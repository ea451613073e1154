// SPDX-License-Identifier: MIT
package flow

import (
	"math"

	"github.com/katalvlaran/xgraph/core"
)

// ResidualEdge is one arc of a residual network. Capacity is fixed at
// build time; Flow is updated by the solvers and always mirrors the
// reverse arc with opposite sign.
type ResidualEdge struct {
	Capacity float64
	Flow     float64
}

// Residual returns the remaining capacity of the arc.
func (e *ResidualEdge) Residual() float64 { return e.Capacity - e.Flow }

// resRow holds the out- (or in-) arcs of one node. Neighbor iteration
// follows arc insertion order.
type resRow struct {
	order []string
	arcs  map[string]*ResidualEdge
}

func newResRow() *resRow {
	return &resRow{arcs: make(map[string]*ResidualEdge)}
}

func (r *resRow) add(v string, e *ResidualEdge) {
	if _, ok := r.arcs[v]; !ok {
		r.order = append(r.order, v)
	}
	r.arcs[v] = e
}

// Residual is the residual network produced by BuildResidual and
// threaded through the max-flow solvers. See the package documentation
// for the arc-pairing and Inf conventions.
type Residual struct {
	nodes []string
	succ  map[string]*resRow
	pred  map[string]*resRow

	// Inf is the finite sentinel standing in for infinite capacity.
	Inf float64

	flowValue  float64
	sourceTree map[string]string
	targetTree map[string]string
}

// Nodes returns the node set in graph insertion order.
func (r *Residual) Nodes() []string {
	out := make([]string, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Successors returns the heads of all arcs leaving u, in arc insertion
// order. The slice is shared; callers must not modify it.
func (r *Residual) Successors(u string) []string {
	if row, ok := r.succ[u]; ok {
		return row.order
	}

	return nil
}

// Predecessors returns the tails of all arcs entering u, in arc
// insertion order. The slice is shared; callers must not modify it.
func (r *Residual) Predecessors(u string) []string {
	if row, ok := r.pred[u]; ok {
		return row.order
	}

	return nil
}

// Edge returns the arc u→v, or nil when absent.
func (r *Residual) Edge(u, v string) *ResidualEdge {
	row, ok := r.succ[u]
	if !ok {
		return nil
	}

	return row.arcs[v]
}

// FlowValue reports the value of the flow computed by the last solver
// run on this residual network.
func (r *Residual) FlowValue() float64 { return r.flowValue }

// Trees returns the source and sink search trees left behind by
// BoykovKolmogorov, as child→parent maps (roots map to ""). ok is false
// if the residual was last touched by a different solver.
func (r *Residual) Trees() (source, target map[string]string, ok bool) {
	return r.sourceTree, r.targetTree, r.sourceTree != nil
}

// Reset zeroes all arc flows and clears solver state, making the
// residual reusable for another run.
func (r *Residual) Reset() {
	for _, row := range r.succ {
		for _, e := range row.arcs {
			e.Flow = 0
		}
	}
	r.flowValue = 0
	r.sourceTree = nil
	r.targetTree = nil
}

func (r *Residual) addNode(id string) {
	if _, ok := r.succ[id]; ok {
		return
	}
	r.nodes = append(r.nodes, id)
	r.succ[id] = newResRow()
	r.pred[id] = newResRow()
}

// addArc installs the pair (u, v) / (v, u) with zero capacities if not
// yet present and returns the forward arc.
func (r *Residual) addArc(u, v string) *ResidualEdge {
	if e := r.Edge(u, v); e != nil {
		return e
	}
	fwd, rev := &ResidualEdge{}, &ResidualEdge{}
	r.succ[u].add(v, fwd)
	r.pred[v].add(u, fwd)
	r.succ[v].add(u, rev)
	r.pred[u].add(v, rev)

	return fwd
}

// BuildResidual constructs the residual network of g using the edge
// attribute capacityAttr. Edges without the attribute are treated as
// infinite-capacity and mapped onto the finite sentinel Inf. Self-loops
// are ignored. Multigraphs are rejected with ErrMultigraph.
func BuildResidual(g *core.Graph, capacityAttr string) (*Residual, error) {
	if g.IsMultigraph() {
		return nil, ErrMultigraph
	}

	r := &Residual{
		succ: make(map[string]*resRow),
		pred: make(map[string]*resRow),
	}
	for _, n := range g.Nodes() {
		r.addNode(n)
	}

	// Pass 1: collect usable edges and the finite-capacity sum.
	type capEdge struct {
		u, v string
		cap  float64
	}
	var (
		edges  []capEdge
		capSum float64
	)
	for _, e := range g.Edges() {
		if e.U == e.V {
			continue
		}
		c := e.Attrs.Float(capacityAttr, math.Inf(1))
		if c <= 0 {
			continue
		}
		if !math.IsInf(c, 1) {
			capSum += c
		}
		edges = append(edges, capEdge{e.U, e.V, c})
	}

	// Inf must dominate any finite augmenting path: 3x the finite sum
	// keeps infinite arcs distinguishable (see package doc).
	r.Inf = 3 * capSum
	if r.Inf == 0 {
		r.Inf = 1
	}

	// Pass 2: install arc pairs with clamped capacities.
	directed := g.IsDirected()
	for _, ce := range edges {
		c := math.Min(ce.cap, r.Inf)
		r.addArc(ce.u, ce.v).Capacity = c
		if !directed {
			r.addArc(ce.v, ce.u).Capacity = c
		}
	}

	return r, nil
}

// DetectUnboundedness reports ErrUnbounded when the residual network
// contains a path of arcs with capacity Inf from s to t, i.e. when the
// maximum flow is not finite.
func DetectUnboundedness(r *Residual, s, t string) error {
	seen := map[string]bool{s: true}
	queue := []string{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		row, ok := r.succ[u]
		if !ok {
			continue
		}
		for _, v := range row.order {
			if row.arcs[v].Capacity == r.Inf && !seen[v] {
				if v == t {
					return ErrUnbounded
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return nil
}

// BuildFlowDict extracts a flow assignment on g's edges from a solved
// residual network: flows[u][v] is the flow on edge (u, v), zero when
// the edge carries none.
func BuildFlowDict(g *core.Graph, r *Residual) map[string]map[string]float64 {
	flows := make(map[string]map[string]float64, g.NodeCount())
	for _, u := range g.Nodes() {
		row := make(map[string]float64)
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			row[v] = 0
		}
		if rr, ok := r.succ[u]; ok {
			for _, v := range rr.order {
				if f := rr.arcs[v].Flow; f > 0 {
					row[v] = f
				}
			}
		}
		flows[u] = row
	}

	return flows
}

// reachable returns the set of nodes reachable from s over arcs with
// positive residual capacity.
func (r *Residual) reachable(s string) map[string]bool {
	seen := map[string]bool{s: true}
	queue := []string{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		row, ok := r.succ[u]
		if !ok {
			continue
		}
		for _, v := range row.order {
			if !seen[v] && row.arcs[v].Residual() > 0 {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// validate performs the shared argument checks of the max-flow solvers
// and returns a ready (built or reset) residual network.
func validate(g *core.Graph, s, t string, o *options) (*Residual, error) {
	if !g.HasNode(s) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(t) {
		return nil, ErrSinkNotFound
	}
	if s == t {
		return nil, ErrSameNode
	}

	if o.residual != nil {
		o.residual.Reset()

		return o.residual, nil
	}

	return BuildResidual(g, o.capacityAttr)
}
