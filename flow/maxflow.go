// SPDX-License-Identifier: MIT
package flow

import "github.com/katalvlaran/xgraph/core"

// Solver is the common signature of the max-flow algorithms, so
// callers of the convenience wrappers can pick one explicitly.
type Solver func(g *core.Graph, s, t string, opts ...Option) (*Residual, error)

// MaximumFlow computes a maximum s-t flow with EdmondsKarp and returns
// its value together with the per-edge flow assignment.
func MaximumFlow(g *core.Graph, s, t string, opts ...Option) (float64, map[string]map[string]float64, error) {
	return MaximumFlowWith(EdmondsKarp, g, s, t, opts...)
}

// MaximumFlowWith is MaximumFlow with an explicit solver.
func MaximumFlowWith(solve Solver, g *core.Graph, s, t string, opts ...Option) (float64, map[string]map[string]float64, error) {
	r, err := solve(g, s, t, opts...)
	if err != nil {
		return 0, nil, err
	}

	return r.FlowValue(), BuildFlowDict(g, r), nil
}

// MaximumFlowValue computes only the value of a maximum s-t flow.
func MaximumFlowValue(g *core.Graph, s, t string, opts ...Option) (float64, error) {
	r, err := EdmondsKarp(g, s, t, opts...)
	if err != nil {
		return 0, err
	}

	return r.FlowValue(), nil
}

// MinimumCut computes a minimum s-t cut: the cut value (equal to the
// maximum flow value by duality) and the node partition
// (source side, sink side). The partition follows residual
// reachability from s after solving with EdmondsKarp; node order
// inside each side matches graph insertion order.
func MinimumCut(g *core.Graph, s, t string, opts ...Option) (float64, [2][]string, error) {
	var partition [2][]string
	r, err := EdmondsKarp(g, s, t, opts...)
	if err != nil {
		return 0, partition, err
	}

	side := r.reachable(s)
	for _, n := range r.nodes {
		if side[n] {
			partition[0] = append(partition[0], n)
		} else {
			partition[1] = append(partition[1], n)
		}
	}

	return r.FlowValue(), partition, nil
}
