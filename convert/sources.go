// SPDX-License-Identifier: MIT
package convert

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/xgraph/core"
)

// Source is a tagged graph-construction shape. Each variant knows how
// to populate an empty graph with its contents.
type Source interface {
	populate(g *core.Graph) error
}

// Build constructs a graph from an explicit Source. The graph options
// decide the flavor (directed, multigraph) of the result.
func Build(src Source, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	if err := src.populate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// ToGraph converts an untyped value by probing the known shapes in
// fixed priority order: graph, dict-of-dicts, dict-of-lists, edge
// list, adjacency matrix. It returns ErrUnconvertible only after every
// probe has failed.
func ToGraph(v any, opts ...core.GraphOption) (*core.Graph, error) {
	probes := []func(any) (Source, bool){
		probeGraph,
		probeDictOfDicts,
		probeDictOfLists,
		probeEdgeList,
		probeAdjacencyMatrix,
	}
	for _, probe := range probes {
		if src, ok := probe(v); ok {
			return Build(src, opts...)
		}
	}

	return nil, ErrUnconvertible
}

// FromGraph copies src into a fresh graph of the flavor given by opts.
func FromGraph(src *core.Graph, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(GraphSource{Graph: src}, opts...)
}

// FromDictOfDicts builds a graph from the u -> v -> attributes shape.
func FromDictOfDicts(d map[string]map[string]map[string]any, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(DictOfDicts(d), opts...)
}

// FromMultiDictOfDicts builds a graph from the keyed
// u -> v -> key -> attributes shape.
func FromMultiDictOfDicts(d map[string]map[string]map[int]map[string]any, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(MultiDictOfDicts(d), opts...)
}

// FromDictOfLists builds a graph from the u -> neighbor-list shape.
func FromDictOfLists(d map[string][]string, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(DictOfLists(d), opts...)
}

// FromEdgeList builds a graph from an ordered edge sequence.
func FromEdgeList(el []Edge, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(EdgeList(el), opts...)
}

// FromAdjacencyMatrix builds a graph from a square weight matrix.
// nodes may be nil for "0".."n-1".
func FromAdjacencyMatrix(nodes []string, data [][]float64, opts ...core.GraphOption) (*core.Graph, error) {
	return Build(AdjacencyMatrix{Nodes: nodes, Data: data}, opts...)
}

func probeGraph(v any) (Source, bool) {
	switch s := v.(type) {
	case GraphSource:
		return s, true
	case *core.Graph:
		return GraphSource{Graph: s}, true
	}

	return nil, false
}

func probeDictOfDicts(v any) (Source, bool) {
	switch s := v.(type) {
	case DictOfDicts:
		return s, true
	case map[string]map[string]map[string]any:
		return DictOfDicts(s), true
	case MultiDictOfDicts:
		return s, true
	case map[string]map[string]map[int]map[string]any:
		return MultiDictOfDicts(s), true
	}

	return nil, false
}

func probeDictOfLists(v any) (Source, bool) {
	switch s := v.(type) {
	case DictOfLists:
		return s, true
	case map[string][]string:
		return DictOfLists(s), true
	}

	return nil, false
}

func probeEdgeList(v any) (Source, bool) {
	switch s := v.(type) {
	case EdgeList:
		return s, true
	case []Edge:
		return EdgeList(s), true
	case [][2]string:
		el := make(EdgeList, len(s))
		for i, p := range s {
			el[i] = Edge{U: p[0], V: p[1]}
		}

		return el, true
	}

	return nil, false
}

func probeAdjacencyMatrix(v any) (Source, bool) {
	switch s := v.(type) {
	case AdjacencyMatrix:
		return s, true
	case [][]float64:
		return AdjacencyMatrix{Data: s}, true
	}

	return nil, false
}

// GraphSource copies an existing graph, adapting it to the flavor of
// the destination: a directed source collapses onto an undirected
// destination, an undirected source expands to arc pairs on a directed
// one. Parallel-edge keys carry over when both sides are multigraphs.
type GraphSource struct {
	Graph *core.Graph
}

func (s GraphSource) populate(g *core.Graph) error {
	src := s.Graph
	g.Attrs().Merge(src.Attrs())
	for _, n := range src.Nodes() {
		st, err := src.NodeAttrs(n)
		if err != nil {
			return err
		}
		if err = g.AddNode(n, core.WithNodeAttrs(st.Map())); err != nil {
			return err
		}
	}
	expand := !src.IsDirected() && g.IsDirected()
	keepKeys := src.IsMultigraph() && g.IsMultigraph()
	for _, e := range src.Edges() {
		eopts := []core.EdgeOption{core.WithAttrs(e.Attrs.Map())}
		if keepKeys {
			eopts = append(eopts, core.WithKey(e.Key))
		}
		if _, err := g.AddEdge(e.U, e.V, eopts...); err != nil {
			return err
		}
		if expand && e.U != e.V {
			if _, err := g.AddEdge(e.V, e.U, eopts...); err != nil {
				return err
			}
		}
	}

	return nil
}

// DictOfDicts maps u -> v -> edge attributes. Nodes are inserted in
// sorted key order.
type DictOfDicts map[string]map[string]map[string]any

func (d DictOfDicts) populate(g *core.Graph) error {
	dedup := g.IsMultigraph() && !g.IsDirected()
	seen := make(map[[2]string]bool)
	for _, u := range sortedKeys(d) {
		if err := g.AddNode(u); err != nil {
			return err
		}
		for _, v := range sortedKeys(d[u]) {
			if dedup {
				if seen[[2]string{v, u}] {
					continue
				}
				seen[[2]string{u, v}] = true
			}
			if _, err := g.AddEdge(u, v, core.WithAttrs(d[u][v])); err != nil {
				return err
			}
		}
	}

	return nil
}

// MultiDictOfDicts maps u -> v -> key -> edge attributes, the keyed
// shape produced by ToMultiDictOfDicts. On a simple destination the
// keyed attribute dicts merge in ascending key order.
type MultiDictOfDicts map[string]map[string]map[int]map[string]any

func (d MultiDictOfDicts) populate(g *core.Graph) error {
	multi := g.IsMultigraph()
	dedup := multi && !g.IsDirected()
	seen := make(map[[2]string]bool)
	for _, u := range sortedKeys(d) {
		if err := g.AddNode(u); err != nil {
			return err
		}
		for _, v := range sortedKeys(d[u]) {
			if dedup {
				if seen[[2]string{v, u}] {
					continue
				}
				seen[[2]string{u, v}] = true
			}
			keys := make([]int, 0, len(d[u][v]))
			for k := range d[u][v] {
				keys = append(keys, k)
			}
			sort.Ints(keys)
			for _, k := range keys {
				eopts := []core.EdgeOption{core.WithAttrs(d[u][v][k])}
				if multi {
					eopts = append(eopts, core.WithKey(k))
				}
				if _, err := g.AddEdge(u, v, eopts...); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// DictOfLists maps u -> neighbor list. Nodes are inserted in sorted
// key order, neighbors in list order.
type DictOfLists map[string][]string

func (d DictOfLists) populate(g *core.Graph) error {
	dedup := g.IsMultigraph() && !g.IsDirected()
	seen := make(map[[2]string]bool)
	for _, u := range sortedKeys(d) {
		if err := g.AddNode(u); err != nil {
			return err
		}
		for _, v := range d[u] {
			if dedup {
				if seen[[2]string{v, u}] {
					continue
				}
				seen[[2]string{u, v}] = true
			}
			if _, err := g.AddEdge(u, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// EdgeList is an ordered sequence of edges. Edge.Key is ignored on
// import; multigraph destinations assign fresh keys.
type EdgeList []Edge

func (el EdgeList) populate(g *core.Graph) error {
	for _, e := range el {
		if _, err := g.AddEdge(e.U, e.V, core.WithAttrs(e.Attrs)); err != nil {
			return err
		}
	}

	return nil
}

// AdjacencyMatrix is a square weight matrix. A zero entry means no
// edge; any other value becomes the "weight" attribute. Undirected
// destinations read only the upper triangle (including the diagonal).
// Nodes defaults to "0".."n-1".
type AdjacencyMatrix struct {
	Nodes []string
	Data  [][]float64
}

func (m AdjacencyMatrix) populate(g *core.Graph) error {
	n := len(m.Data)
	for _, row := range m.Data {
		if len(row) != n {
			return ErrBadMatrix
		}
	}
	nodes := m.Nodes
	if nodes == nil {
		nodes = make([]string, n)
		for i := range nodes {
			nodes[i] = strconv.Itoa(i)
		}
	} else if len(nodes) != n {
		return ErrBadMatrix
	}

	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			return err
		}
	}
	directed := g.IsDirected()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.Data[i][j] == 0 {
				continue
			}
			if !directed && j < i {
				continue
			}
			if _, err := g.AddEdge(nodes[i], nodes[j], core.WithAttr("weight", m.Data[i][j])); err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
