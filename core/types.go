// Package core: type declarations, sentinel errors, options, constructors.
//
// This file declares Graph, Edge, EdgeID, GraphOption, NodeOption,
// EdgeOption and the constructors NewGraph, NewDiGraph, NewMultiGraph,
// NewMultiDiGraph.

package core

import (
	"errors"

	"github.com/katalvlaran/xgraph/attrs"
	"github.com/katalvlaran/xgraph/ordered"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotDirected indicates a directed-only query (Predecessors,
	// InDegree, OutDegree) on an undirected graph.
	ErrNotDirected = errors.New("core: graph is not directed")

	// ErrFrozen indicates a structural mutation attempted through a
	// read-only view (Subgraph, EdgeSubgraph).
	ErrFrozen = errors.New("core: frozen graph view does not allow structural mutation")
)

// ring is the per-(u,v) key table: edge key → attribute store.
// Undirected graphs place the *same* ring under succ[u][v] and
// succ[v][u]; directed graphs place it under succ[u][v] and pred[v][u].
type ring = ordered.Map[int, *attrs.Store]

// adjacency is one adjacency table: node → neighbor → ring.
type adjacency = ordered.Map[string, *ordered.Map[string, *ring]]

// Edge is a reported edge: endpoints, parallel-edge key, and the live
// attribute store (shared with the graph, not a copy).
type Edge struct {
	// U is the source endpoint (first endpoint for undirected edges).
	U string

	// V is the target endpoint.
	V string

	// Key distinguishes parallel edges; always 0 on simple graphs.
	Key int

	// Attrs is the edge's attribute store, aliased with graph storage.
	Attrs *attrs.Store
}

// EdgeID names one edge without its data, used by EdgeSubgraph.
type EdgeID struct {
	U, V string
	Key  int
}

// Graph is the core in-memory attributed graph.
//
// Capability flags (directed, multigraph) are fixed at construction and
// propagated by every transformation (Copy, ToDirected, ToUndirected,
// Subgraph). The zero value is not usable; construct with NewGraph or
// one of the convenience constructors.
type Graph struct {
	directed bool
	multi    bool
	frozen   bool

	attributes *attrs.Store // graph-level metadata

	nodes *ordered.Map[string, *attrs.Store]
	succ  *adjacency
	pred  *adjacency // aliases succ when undirected
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the orientation capability flag
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same endpoints,
// distinguished by integer keys.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.multi = true }
}

// WithGraphAttrs merges kv into the graph-level attribute store.
func WithGraphAttrs(kv map[string]any) GraphOption {
	return func(g *Graph) { g.attributes.MergeMap(kv) }
}

// NodeOption configures node attributes on AddNode.
type NodeOption func(*attrs.Store)

// WithNodeAttr sets one node attribute.
func WithNodeAttr(key string, value any) NodeOption {
	return func(s *attrs.Store) { s.Set(key, value) }
}

// WithNodeAttrs merges a map of node attributes.
func WithNodeAttrs(kv map[string]any) NodeOption {
	return func(s *attrs.Store) { s.MergeMap(kv) }
}

// edgeConfig collects per-call AddEdge configuration.
type edgeConfig struct {
	key    int
	hasKey bool
	attrs  []func(*attrs.Store)
}

// EdgeOption configures edge key and attributes on AddEdge.
type EdgeOption func(*edgeConfig)

// WithKey supplies an explicit parallel-edge key. On simple graphs any
// supplied key is ignored in favor of key 0.
func WithKey(key int) EdgeOption {
	return func(c *edgeConfig) { c.key, c.hasKey = key, true }
}

// WithAttr sets one edge attribute.
func WithAttr(key string, value any) EdgeOption {
	return func(c *edgeConfig) {
		c.attrs = append(c.attrs, func(s *attrs.Store) { s.Set(key, value) })
	}
}

// WithAttrs merges a map of edge attributes.
func WithAttrs(kv map[string]any) EdgeOption {
	return func(c *edgeConfig) {
		c.attrs = append(c.attrs, func(s *attrs.Store) { s.MergeMap(kv) })
	}
}

// NewGraph creates an empty graph. By default it is undirected and
// simple; use WithDirected / WithMultiEdges to change capabilities.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attributes: attrs.New(),
		nodes:      ordered.NewMap[string, *attrs.Store](),
		succ:       ordered.NewMap[string, *ordered.Map[string, *ring]](),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.pred = ordered.NewMap[string, *ordered.Map[string, *ring]]()
	} else {
		g.pred = g.succ
	}

	return g
}

// NewDiGraph creates an empty simple directed graph.
func NewDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true)}, opts...)...)
}

// NewMultiGraph creates an empty undirected multigraph.
func NewMultiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMultiEdges()}, opts...)...)
}

// NewMultiDiGraph creates an empty directed multigraph.
func NewMultiDiGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithDirected(true), WithMultiEdges()}, opts...)...)
}

// IsDirected reports the construction-time orientation flag. O(1).
func (g *Graph) IsDirected() bool { return g.directed }

// IsMultigraph reports the construction-time parallel-edge flag. O(1).
func (g *Graph) IsMultigraph() bool { return g.multi }

// IsFrozen reports whether this instance is a read-only view. O(1).
func (g *Graph) IsFrozen() bool { return g.frozen }

// Attrs returns the graph-level attribute store. Views share the
// parent's store. O(1).
func (g *Graph) Attrs() *attrs.Store { return g.attributes }

// cloneEmpty returns a new unfrozen graph with identical capability
// flags and no nodes, edges or graph attributes beyond opts.
func (g *Graph) cloneEmpty() *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.multi {
		opts = append(opts, WithMultiEdges())
	}

	return NewGraph(opts...)
}
