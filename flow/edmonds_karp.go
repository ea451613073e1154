// SPDX-License-Identifier: MIT
package flow

import "github.com/katalvlaran/xgraph/core"

// EdmondsKarp computes a maximum s-t flow on g by repeatedly augmenting
// along shortest residual paths, found with a bidirectional
// breadth-first search. It returns the solved residual network; read
// the value with FlowValue and the per-edge assignment with
// BuildFlowDict.
//
// Complexity: O(V·E²).
func EdmondsKarp(g *core.Graph, s, t string, opts ...Option) (*Residual, error) {
	o := buildOptions(opts)
	r, err := validate(g, s, t, &o)
	if err != nil {
		return nil, err
	}
	if err = edmondsKarpCore(r, s, t, o.cutoff); err != nil {
		return nil, err
	}

	return r, nil
}

// bidirectionalBFS grows BFS frontiers from s (over forward residual
// arcs) and t (over backward residual arcs) in alternation, always
// expanding the smaller frontier, until they meet at some node v.
func bidirectionalBFS(r *Residual, s, t string) (v string, pred, succ map[string]string, ok bool) {
	pred = map[string]string{s: s}
	succ = map[string]string{t: t}
	qs, qt := []string{s}, []string{t}
	for {
		var next []string
		if len(qs) <= len(qt) {
			for _, u := range qs {
				row := r.succ[u]
				for _, w := range row.order {
					if _, seen := pred[w]; seen {
						continue
					}
					if e := row.arcs[w]; e.Flow < e.Capacity {
						pred[w] = u
						if _, met := succ[w]; met {
							return w, pred, succ, true
						}
						next = append(next, w)
					}
				}
			}
			if len(next) == 0 {
				return "", nil, nil, false
			}
			qs = next
		} else {
			for _, u := range qt {
				row := r.pred[u]
				for _, w := range row.order {
					if _, seen := succ[w]; seen {
						continue
					}
					// row.arcs[w] is the arc w->u feeding the sink side.
					if e := row.arcs[w]; e.Flow < e.Capacity {
						succ[w] = u
						if _, met := pred[w]; met {
							return w, pred, succ, true
						}
						next = append(next, w)
					}
				}
			}
			if len(next) == 0 {
				return "", nil, nil, false
			}
			qt = next
		}
	}
}

// augmentPath pushes the bottleneck of path through the residual
// network and returns it. A bottleneck exceeding Inf/2 proves an
// infinite-capacity augmenting path.
func augmentPath(r *Residual, path []string) (float64, error) {
	bottleneck := r.Inf
	for i := 1; i < len(path); i++ {
		if res := r.Edge(path[i-1], path[i]).Residual(); res < bottleneck {
			bottleneck = res
		}
	}
	if bottleneck*2 > r.Inf {
		return 0, ErrUnbounded
	}
	for i := 1; i < len(path); i++ {
		r.Edge(path[i-1], path[i]).Flow += bottleneck
		r.Edge(path[i], path[i-1]).Flow -= bottleneck
	}

	return bottleneck, nil
}

func edmondsKarpCore(r *Residual, s, t string, cutoff float64) error {
	for r.flowValue < cutoff {
		v, pred, succ, ok := bidirectionalBFS(r, s, t)
		if !ok {
			break
		}

		// Assemble s -> ... -> v -> ... -> t from the two parent maps.
		path := []string{v}
		for u := v; u != s; {
			u = pred[u]
			path = append(path, u)
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		for u := v; u != t; {
			u = succ[u]
			path = append(path, u)
		}

		pushed, err := augmentPath(r, path)
		if err != nil {
			return err
		}
		r.flowValue += pushed
	}

	return nil
}
