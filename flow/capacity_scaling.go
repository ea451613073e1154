// SPDX-License-Identifier: MIT
package flow

import (
	"math"

	"github.com/katalvlaran/xgraph/attrs"
	"github.com/katalvlaran/xgraph/core"
)

// FlowDict is the edge flow assignment returned by CapacityScaling,
// keyed as flows[u][v][key]. Simple digraphs use edge key 0 throughout;
// see Simple.
type FlowDict map[string]map[string]map[int]int64

// Simple flattens the assignment of a non-multigraph input into
// flows[u][v] form by summing over edge keys.
func (fd FlowDict) Simple() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(fd))
	for u, row := range fd {
		or := make(map[string]int64, len(row))
		for v, keyed := range row {
			var sum int64
			for _, f := range keyed {
				sum += f
			}
			or[v] = sum
		}
		out[u] = or
	}

	return out
}

// scalingArc is one arc of the min-cost residual network. Arcs come in
// pairs: (key, forward=true) mirrors an input edge, (key, forward=false)
// is its zero-capacity reverse with negated weight.
type scalingArc struct {
	key      int
	forward  bool
	capacity int64
	weight   int64
	flow     int64
}

func (a *scalingArc) residual() int64 { return a.capacity - a.flow }

type scalingRow struct {
	order []string
	arcs  map[string][]*scalingArc
}

func (r *scalingRow) add(v string, a *scalingArc) {
	if _, ok := r.arcs[v]; !ok {
		r.order = append(r.order, v)
	}
	r.arcs[v] = append(r.arcs[v], a)
}

// scalingNet carries node excesses and potentials alongside the paired
// residual arcs.
type scalingNet struct {
	order     []string
	excess    map[string]int64
	potential map[string]int64
	succ      map[string]*scalingRow
	inf       int64
}

// partner returns the reverse arc of a, stored under succ[v][u].
func (n *scalingNet) partner(v, u string, a *scalingArc) *scalingArc {
	for _, b := range n.succ[v].arcs[u] {
		if b.key == a.key && b.forward != a.forward {
			return b
		}
	}

	return nil
}

// intAttr reads an integer edge attribute, mapping a missing attribute
// or an explicit +Inf onto (0, false) for "infinite".
func intAttr(st *attrs.Store, name string) (int64, bool) {
	if math.IsInf(st.Float(name, math.Inf(1)), 1) {
		return 0, false
	}

	return st.Int(name, 0), true
}

// buildScalingNet assembles the residual network of g for
// CapacityScaling, validating demands and negative infinite-capacity
// self-loops on the way.
func buildScalingNet(g *core.Graph, o *options) (*scalingNet, error) {
	n := &scalingNet{
		excess:    make(map[string]int64),
		potential: make(map[string]int64),
		succ:      make(map[string]*scalingRow),
	}
	var demandSum int64
	for _, u := range g.Nodes() {
		st, _ := g.NodeAttrs(u)
		d := st.Int(o.demandAttr, 0)
		demandSum += d
		n.order = append(n.order, u)
		n.excess[u] = -d
		n.succ[u] = &scalingRow{arcs: make(map[string][]*scalingArc)}
	}
	if demandSum != 0 {
		return nil, ErrInfeasible
	}

	type inEdge struct {
		u, v   string
		key    int
		cap    int64
		finite bool
		weight int64
	}
	var (
		edges     []inEdge
		capSum    int64
		excessSum int64
	)
	for _, e := range g.Edges() {
		c, finite := intAttr(e.Attrs, o.capacityAttr)
		w := e.Attrs.Int(o.weightAttr, 0)
		if e.U == e.V {
			if w < 0 && !finite {
				return nil, ErrUnbounded
			}

			continue
		}
		if finite && c <= 0 {
			continue
		}
		edges = append(edges, inEdge{e.U, e.V, e.Key, c, finite, w})
		if finite {
			capSum += c
		}
	}
	for _, x := range n.excess {
		if x < 0 {
			excessSum -= x
		} else {
			excessSum += x
		}
	}

	// Finite stand-in for infinite capacity, large enough to absorb any
	// demand and to flag unbounded arcs during cycle detection.
	n.inf = excessSum
	if 2*capSum > n.inf {
		n.inf = 2 * capSum
	}
	if n.inf == 0 {
		n.inf = 1
	}

	for _, e := range edges {
		r := n.inf
		if e.finite && e.cap < r {
			r = e.cap
		}
		n.succ[e.u].add(e.v, &scalingArc{key: e.key, forward: true, capacity: r, weight: e.weight})
		n.succ[e.v].add(e.u, &scalingArc{key: e.key, forward: false, weight: -e.weight})
	}

	if n.hasNegativeInfiniteCycle() {
		return nil, ErrUnbounded
	}

	return n, nil
}

// hasNegativeInfiniteCycle projects the infinite-capacity arcs onto a
// simple weighted digraph (minimum weight per node pair) and runs
// Bellman-Ford over it.
func (n *scalingNet) hasNegativeInfiniteCycle() bool {
	type wedge struct {
		u, v string
		w    int64
	}
	var edges []wedge
	for _, u := range n.order {
		row := n.succ[u]
		for _, v := range row.order {
			wmin, found := int64(0), false
			for _, a := range row.arcs[v] {
				if a.capacity == n.inf && (!found || a.weight < wmin) {
					wmin, found = a.weight, true
				}
			}
			if found {
				edges = append(edges, wedge{u, v, wmin})
			}
		}
	}
	if len(edges) == 0 {
		return false
	}

	// Bellman-Ford from a virtual source at distance zero to everything.
	dist := make(map[string]int64, len(n.order))
	for i := 0; i <= len(n.order); i++ {
		relaxed := false
		for _, e := range edges {
			if d := dist[e.u] + e.w; d < dist[e.v] {
				if i == len(n.order) {
					return true
				}
				dist[e.v] = d
				relaxed = true
			}
		}
		if !relaxed {
			return false
		}
	}

	return false
}

// CapacityScaling solves minimum-cost flow on a directed graph with
// integer capacities, weights and node demands, by Δ-scaling over
// successive shortest augmenting paths with node potentials. Node
// demands come from the "demand" attribute (negative for supply), edge
// capacities from "capacity" (missing means unbounded) and per-unit
// costs from "weight"; all names are overridable via options. Works on
// simple and multi digraphs.
//
// Returns the total cost and the keyed flow assignment.
//
// Complexity: O(E² · log V · log C) where C is the largest capacity.
func CapacityScaling(g *core.Graph, opts ...Option) (int64, FlowDict, error) {
	if !g.IsDirected() {
		return 0, nil, ErrNotDirected
	}
	o := buildOptions(opts)
	n, err := buildScalingNet(g, &o)
	if err != nil {
		return 0, nil, err
	}

	// Negative-cost self-loops are always saturated; account them
	// up front since they never enter the residual network.
	var cost int64
	for _, e := range g.Edges() {
		if e.U != e.V {
			continue
		}
		if c, finite := intAttr(e.Attrs, o.capacityAttr); finite {
			if w := e.Attrs.Int(o.weightAttr, 0); w < 0 && c > 0 {
				cost += c * w
			}
		}
	}

	var wmax int64
	hasArcs := false
	for _, u := range n.order {
		row := n.succ[u]
		for _, v := range row.order {
			for _, a := range row.arcs[v] {
				hasArcs = true
				if a.capacity > wmax {
					wmax = a.capacity
				}
			}
		}
	}
	if !hasArcs {
		for _, x := range n.excess {
			if x != 0 {
				return 0, nil, ErrInfeasible
			}
		}

		return cost, buildScalingFlowDict(g, n, &o), nil
	}

	for delta := largestPowerOfTwo(wmax); delta >= 1; delta /= 2 {
		n.saturateNegative(delta)

		// Δ-active and Δ-deficient node sets.
		srcs := make(map[string]bool)
		sinks := make(map[string]bool)
		for _, u := range n.order {
			if n.excess[u] >= delta {
				srcs[u] = true
			} else if n.excess[u] <= -delta {
				sinks[u] = true
			}
		}

		for len(srcs) > 0 && len(sinks) > 0 {
			s := n.pick(srcs)
			t, dist, pred, ok := n.shortestPath(s, delta, sinks, o.newHeap)
			if !ok {
				delete(srcs, s)

				continue
			}
			for u := t; u != s; {
				pe := pred[u]
				pe.arc.flow += delta
				n.partner(u, pe.from, pe.arc).flow -= delta
				u = pe.from
			}
			n.excess[s] -= delta
			n.excess[t] += delta
			if n.excess[s] < delta {
				delete(srcs, s)
			}
			if n.excess[t] > -delta {
				delete(sinks, t)
			}
			dt := dist[t]
			for u, du := range dist {
				n.potential[u] -= du - dt
			}
		}
	}

	for _, x := range n.excess {
		if x != 0 {
			return 0, nil, ErrInfeasible
		}
	}

	for _, u := range n.order {
		row := n.succ[u]
		for _, v := range row.order {
			for _, a := range row.arcs[v] {
				if a.flow > 0 {
					cost += a.flow * a.weight
				}
			}
		}
	}

	return cost, buildScalingFlowDict(g, n, &o), nil
}

func largestPowerOfTwo(x int64) int64 {
	d := int64(1)
	for d*2 <= x {
		d *= 2
	}

	return d
}

// saturateNegative pushes full residual capacity through every
// Δ-residual arc with negative reduced cost.
func (n *scalingNet) saturateNegative(delta int64) {
	for _, u := range n.order {
		pu := n.potential[u]
		row := n.succ[u]
		for _, v := range row.order {
			for _, a := range row.arcs[v] {
				if a.weight-pu+n.potential[v] >= 0 {
					continue
				}
				if r := a.residual(); r >= delta {
					a.flow += r
					n.partner(v, u, a).flow -= r
					n.excess[u] -= r
					n.excess[v] += r
				}
			}
		}
	}
}

// pick returns the first member of set in node insertion order.
func (n *scalingNet) pick(set map[string]bool) string {
	for _, u := range n.order {
		if set[u] {
			return u
		}
	}

	return ""
}

type scalingPred struct {
	from string
	arc  *scalingArc
}

// shortestPath runs Dijkstra over reduced costs in the Δ-residual
// network from s until any node of sinks is settled.
func (n *scalingNet) shortestPath(s string, delta int64, sinks map[string]bool, newHeap HeapFactory) (string, map[string]int64, map[string]scalingPred, bool) {
	dist := make(map[string]int64)
	pred := make(map[string]scalingPred)
	h := newHeap()
	h.Insert(s, 0, false)
	for h.Len() > 0 {
		u, du, _ := h.Pop()
		dist[u] = du
		if sinks[u] {
			return u, dist, pred, true
		}
		pu := n.potential[u]
		row := n.succ[u]
		for _, v := range row.order {
			if _, settled := dist[v]; settled {
				continue
			}
			var best *scalingArc
			for _, a := range row.arcs[v] {
				if a.residual() >= delta && (best == nil || a.weight < best.weight) {
					best = a
				}
			}
			if best == nil {
				continue
			}
			if h.Insert(v, du+best.weight-pu+n.potential[v], false) {
				pred[v] = scalingPred{from: u, arc: best}
			}
		}
	}

	return "", nil, nil, false
}

// buildScalingFlowDict maps the residual flows back onto g's edges,
// saturating negative-cost self-loops.
func buildScalingFlowDict(g *core.Graph, n *scalingNet, o *options) FlowDict {
	fd := make(FlowDict, g.NodeCount())
	for _, u := range g.Nodes() {
		fd[u] = make(map[string]map[int]int64)
	}
	for _, e := range g.Edges() {
		row := fd[e.U][e.V]
		if row == nil {
			row = make(map[int]int64)
			fd[e.U][e.V] = row
		}
		row[e.Key] = 0
		if e.U == e.V {
			if c, finite := intAttr(e.Attrs, o.capacityAttr); finite {
				if w := e.Attrs.Int(o.weightAttr, 0); w < 0 && c > 0 {
					row[e.Key] = c
				}
			}
		}
	}
	for _, u := range n.order {
		srow := n.succ[u]
		for _, v := range srow.order {
			for _, a := range srow.arcs[v] {
				if a.forward && a.flow > 0 {
					fd[u][v][a.key] = a.flow
				}
			}
		}
	}

	return fd
}
