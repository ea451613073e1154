// SPDX-License-Identifier: MIT
package flow

import (
	"sort"

	"github.com/katalvlaran/xgraph/core"
)

// BoykovKolmogorov computes a maximum s-t flow on g by growing two
// search trees, one rooted at the source over forward residual arcs
// and one rooted at the sink over backward residual arcs. When the
// trees touch, the connecting path is augmented and orphaned subtrees
// are re-adopted instead of rebuilt. Distance/timestamp marks keep
// adopted branches close to their roots, which is what makes the
// method fast on vision-style grids.
//
// The final trees remain attached to the returned residual network
// (see Residual.Trees) so a minimum cut can be read off directly: the
// source side of the cut is the set of nodes reachable in the source
// tree.
//
// Complexity: O(V²·E·|C|) worst case, where |C| is the cut value.
func BoykovKolmogorov(g *core.Graph, s, t string, opts ...Option) (*Residual, error) {
	o := buildOptions(opts)
	r, err := validate(g, s, t, &o)
	if err != nil {
		return nil, err
	}
	if err = boykovKolmogorovCore(r, s, t, o.cutoff); err != nil {
		return nil, err
	}

	return r, nil
}

// bkState carries the mutable search state of one solver run. Trees
// are child->parent maps; roots and orphans map to "".
type bkState struct {
	r    *Residual
	s, t string

	sourceTree map[string]string
	targetTree map[string]string

	active    []string
	activeSet map[string]bool
	orphans   []string

	// Marking heuristic: dist approximates the distance to the tree
	// root, timestamp records when it was last known to be accurate.
	time      int
	timestamp map[string]int
	dist      map[string]int
}

func boykovKolmogorovCore(r *Residual, s, t string, cutoff float64) error {
	st := &bkState{
		r:          r,
		s:          s,
		t:          t,
		sourceTree: map[string]string{s: ""},
		targetTree: map[string]string{t: ""},
		active:     []string{s, t},
		activeSet:  map[string]bool{s: true, t: true},
		time:       1,
		timestamp:  map[string]int{s: 1, t: 1},
		dist:       map[string]int{s: 0, t: 0},
	}

	for r.flowValue < cutoff {
		u, v, ok := st.grow()
		if !ok {
			break
		}
		st.time++
		r.flowValue += st.augment(u, v)
		st.adopt()
	}
	if r.flowValue*2 > r.Inf {
		return ErrUnbounded
	}

	r.sourceTree = st.sourceTree
	r.targetTree = st.targetTree

	return nil
}

// grow expands the active fronts of both trees until an arc with
// positive residual capacity connects them, returning that arc
// oriented from the source tree to the target tree.
func (st *bkState) grow() (string, string, bool) {
	for len(st.active) > 0 {
		u := st.active[0]
		_, inSource := st.sourceTree[u]
		var (
			thisTree, otherTree map[string]string
			row                 *resRow
		)
		if inSource {
			thisTree, otherTree = st.sourceTree, st.targetTree
			row = st.r.succ[u]
		} else {
			thisTree, otherTree = st.targetTree, st.sourceTree
			row = st.r.pred[u]
		}
		for _, v := range row.order {
			if row.arcs[v].Residual() <= 0 {
				continue
			}
			if _, grown := thisTree[v]; !grown {
				if _, met := otherTree[v]; met {
					if inSource {
						return u, v, true
					}

					return v, u, true
				}
				thisTree[v] = u
				st.dist[v] = st.dist[u] + 1
				st.timestamp[v] = st.timestamp[u]
				st.pushActive(v)
			} else if st.isCloser(u, v) {
				// Re-parent v under u: same tree, but a provably
				// shorter route to the root.
				thisTree[v] = u
				st.dist[v] = st.dist[u] + 1
				st.timestamp[v] = st.timestamp[u]
			}
		}
		st.popActive()
	}

	return "", "", false
}

// augment pushes the bottleneck along root(s)->u->v->root(t) and queues
// every node cut off by a saturated arc as an orphan.
func (st *bkState) augment(u, v string) float64 {
	r := st.r
	bottleneck := r.Edge(u, v).Residual()

	// Walk u back to s, collecting the source-side segment.
	path := []string{u}
	for w := u; w != st.s; {
		n := w
		w = st.sourceTree[n]
		if res := r.Edge(w, n).Residual(); res < bottleneck {
			bottleneck = res
		}
		path = append(path, w)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	// Extend v forward to t.
	path = append(path, v)
	for w := v; w != st.t; {
		n := w
		w = st.targetTree[n]
		if res := r.Edge(n, w).Residual(); res < bottleneck {
			bottleneck = res
		}
		path = append(path, w)
	}
	if bottleneck > r.Inf {
		bottleneck = r.Inf
	}

	var newOrphans []string
	for i := 1; i < len(path); i++ {
		pu, pv := path[i-1], path[i]
		e := r.Edge(pu, pv)
		e.Flow += bottleneck
		r.Edge(pv, pu).Flow -= bottleneck
		if e.Flow == e.Capacity {
			if _, ok := st.sourceTree[pv]; ok {
				st.sourceTree[pv] = ""
				newOrphans = append(newOrphans, pv)
			}
			if _, ok := st.targetTree[pu]; ok {
				st.targetTree[pu] = ""
				newOrphans = append(newOrphans, pu)
			}
		}
	}
	sort.SliceStable(newOrphans, func(i, j int) bool {
		return st.dist[newOrphans[i]] < st.dist[newOrphans[j]]
	})
	st.orphans = append(st.orphans, newOrphans...)

	return bottleneck
}

// adopt reattaches orphans to valid parents in their own tree, or
// evicts them and recursively orphans their children.
func (st *bkState) adopt() {
	for len(st.orphans) > 0 {
		u := st.orphans[0]
		st.orphans = st.orphans[1:]

		_, inSource := st.sourceTree[u]
		var (
			tree   map[string]string
			edgeOf func(v string) *ResidualEdge
			order  []string
		)
		if inSource {
			tree = st.sourceTree
			// Candidate parents feed u along forward arcs v->u.
			order = st.r.pred[u].order
			edgeOf = func(v string) *ResidualEdge { return st.r.Edge(v, u) }
		} else {
			tree = st.targetTree
			order = st.r.succ[u].order
			edgeOf = func(v string) *ResidualEdge { return st.r.Edge(u, v) }
		}

		var candidates []string
		for _, v := range order {
			if _, ok := tree[v]; ok {
				candidates = append(candidates, v)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return st.dist[candidates[i]] < st.dist[candidates[j]]
		})

		adopted := false
		for _, v := range candidates {
			if edgeOf(v).Residual() > 0 && st.hasValidRoot(v, tree) {
				tree[u] = v
				st.dist[u] = st.dist[v] + 1
				st.timestamp[u] = st.time
				adopted = true

				break
			}
		}
		if adopted {
			continue
		}

		for _, v := range candidates {
			if edgeOf(v).Residual() > 0 {
				st.pushActive(v)
			}
			if tree[v] == u {
				tree[v] = ""
				st.orphans = append([]string{v}, st.orphans...)
			}
		}
		st.removeActive(u)
		delete(tree, u)
	}
}

// hasValidRoot follows parent pointers from n until it hits a root or
// a node marked in the current phase, then refreshes the marks of the
// whole walked path.
func (st *bkState) hasValidRoot(n string, tree map[string]string) bool {
	var (
		path []string
		base = -1
	)
	for v := n; ; {
		path = append(path, v)
		if v == st.s || v == st.t {
			base = 0

			break
		}
		if st.timestamp[v] == st.time {
			base = st.dist[v]

			break
		}
		v = tree[v]
		if v == "" {
			return false
		}
	}
	for i, v := range path {
		st.dist[v] = base + len(path) - 1 - i
		st.timestamp[v] = st.time
	}

	return true
}

// isCloser reports whether re-parenting v under u would shorten v's
// path to the root, judged by marks at least as fresh as u's.
func (st *bkState) isCloser(u, v string) bool {
	return st.timestamp[v] <= st.timestamp[u] && st.dist[v] > st.dist[u]+1
}

func (st *bkState) pushActive(v string) {
	if !st.activeSet[v] {
		st.active = append(st.active, v)
		st.activeSet[v] = true
	}
}

func (st *bkState) popActive() {
	u := st.active[0]
	st.active = st.active[1:]
	delete(st.activeSet, u)
}

func (st *bkState) removeActive(u string) {
	if !st.activeSet[u] {
		return
	}
	delete(st.activeSet, u)
	for i, v := range st.active {
		if v == u {
			st.active = append(st.active[:i], st.active[i+1:]...)

			break
		}
	}
}
