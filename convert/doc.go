// Package convert moves graphs between *core.Graph and the canonical
// exchange shapes: dict-of-dicts, dict-of-lists, edge lists and
// adjacency matrices.
//
// # Importing
//
// Each exchange shape is an explicit Source variant (GraphSource,
// DictOfDicts, MultiDictOfDicts, DictOfLists, EdgeList,
// AdjacencyMatrix). Callers that know their shape build a graph
// directly:
//
//	g, err := convert.Build(convert.DictOfLists{"a": {"b", "c"}})
//
// Callers holding an untyped value use ToGraph, which probes the known
// shapes in a fixed priority order (graph, dict-of-dicts,
// dict-of-lists, edge list, adjacency matrix) and fails with
// ErrUnconvertible only after every probe has been tried.
//
// Map-shaped sources carry no ordering, so their nodes are inserted in
// sorted key order to keep construction deterministic.
//
// # Exporting
//
// ToDictOfDicts, ToMultiDictOfDicts, ToDictOfLists and ToEdgeList
// accept export options: WithNodelist restricts the output to the
// induced subgraph on the listed nodes, WithEdgeData substitutes a
// fixed attribute map for every reported edge instead of the real
// attributes. Exported attribute maps are copies; mutating them does
// not touch the graph.
package convert
