// SPDX-License-Identifier: MIT
package convert

import "github.com/katalvlaran/xgraph/core"

// exportNodes resolves the node set of an export: the nodelist when
// given (unknown IDs dropped), otherwise all nodes in insertion order.
func exportNodes(g *core.Graph, c *exportConfig) []string {
	if !c.hasList {
		return g.Nodes()
	}
	nodes := make([]string, 0, len(c.nodelist))
	for _, n := range c.nodelist {
		if g.HasNode(n) {
			nodes = append(nodes, n)
		}
	}

	return nodes
}

func (c *exportConfig) member(nodes []string) func(string) bool {
	if !c.hasList {
		return func(string) bool { return true }
	}
	set := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		set[n] = true
	}

	return func(n string) bool { return set[n] }
}

// ToDictOfDicts exports g as u -> v -> attributes. Multigraphs report
// the lowest-keyed edge of each pair; use ToMultiDictOfDicts to keep
// parallel edges apart.
func ToDictOfDicts(g *core.Graph, opts ...ExportOption) map[string]map[string]map[string]any {
	c := buildExportConfig(opts)
	nodes := exportNodes(g, &c)
	in := c.member(nodes)

	out := make(map[string]map[string]map[string]any, len(nodes))
	for _, u := range nodes {
		row := make(map[string]map[string]any)
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if !in(v) {
				continue
			}
			if c.override {
				row[v] = c.edgeData

				continue
			}
			st, _ := g.EdgeAttrs(u, v)
			row[v] = st.Map()
		}
		out[u] = row
	}

	return out
}

// ToMultiDictOfDicts exports g as u -> v -> key -> attributes.
func ToMultiDictOfDicts(g *core.Graph, opts ...ExportOption) map[string]map[string]map[int]map[string]any {
	c := buildExportConfig(opts)
	nodes := exportNodes(g, &c)
	in := c.member(nodes)

	out := make(map[string]map[string]map[int]map[string]any, len(nodes))
	for _, u := range nodes {
		row := make(map[string]map[int]map[string]any)
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if !in(v) {
				continue
			}
			keyed := make(map[int]map[string]any)
			for _, k := range g.EdgeKeys(u, v) {
				if c.override {
					keyed[k] = c.edgeData

					continue
				}
				st, _ := g.EdgeAttrsKey(u, v, k)
				keyed[k] = st.Map()
			}
			row[v] = keyed
		}
		out[u] = row
	}

	return out
}

// ToDictOfLists exports g as u -> neighbor list in adjacency insertion
// order. Parallel edges collapse to one entry.
func ToDictOfLists(g *core.Graph, opts ...ExportOption) map[string][]string {
	c := buildExportConfig(opts)
	nodes := exportNodes(g, &c)
	in := c.member(nodes)

	out := make(map[string][]string, len(nodes))
	for _, u := range nodes {
		nbrs, _ := g.Neighbors(u)
		row := make([]string, 0, len(nbrs))
		for _, v := range nbrs {
			if in(v) {
				row = append(row, v)
			}
		}
		out[u] = row
	}

	return out
}

// ToEdgeList exports g's edges in insertion order. Undirected edges
// appear once, with endpoints in insertion orientation.
func ToEdgeList(g *core.Graph, opts ...ExportOption) EdgeList {
	c := buildExportConfig(opts)
	in := c.member(exportNodes(g, &c))

	var out EdgeList
	for _, e := range g.Edges() {
		if !in(e.U) || !in(e.V) {
			continue
		}
		attrs := e.Attrs.Map()
		if c.override {
			attrs = c.edgeData
		}
		out = append(out, Edge{U: e.U, V: e.V, Key: e.Key, Attrs: attrs})
	}

	return out
}
