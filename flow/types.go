// SPDX-License-Identifier: MIT
package flow

import (
	"errors"
	"math"

	"github.com/katalvlaran/xgraph/heaps"
)

var (
	// ErrSourceNotFound is returned when the source node is absent from the graph.
	ErrSourceNotFound = errors.New("flow: source node not found")
	// ErrSinkNotFound is returned when the sink node is absent from the graph.
	ErrSinkNotFound = errors.New("flow: sink node not found")
	// ErrSameNode is returned when source and sink are the same node.
	ErrSameNode = errors.New("flow: source and sink are the same node")
	// ErrMultigraph is returned when a max-flow solver receives a multigraph.
	ErrMultigraph = errors.New("flow: multigraph not supported")
	// ErrNotDirected is returned when a solver requires a directed graph.
	ErrNotDirected = errors.New("flow: graph must be directed")
	// ErrUnbounded is returned when a feasible flow is not bounded above.
	ErrUnbounded = errors.New("flow: flow is unbounded above")
	// ErrInfeasible is returned when no flow satisfies all node demands.
	ErrInfeasible = errors.New("flow: no flow satisfies all demands")
)

// Default edge/node attribute names consumed by the solvers.
const (
	DefaultCapacityAttr = "capacity"
	DefaultWeightAttr   = "weight"
	DefaultDemandAttr   = "demand"
)

// HeapFactory produces the priority queue used by CapacityScaling's
// Dijkstra stage. Both heaps.NewBinaryHeap and heaps.NewPairingHeap
// satisfy it.
type HeapFactory func() heaps.MinHeap[string, int64]

// options aggregates per-call configuration shared by all solvers.
type options struct {
	capacityAttr string
	weightAttr   string
	demandAttr   string
	residual     *Residual
	cutoff       float64
	newHeap      HeapFactory
}

// Option customizes a single solver invocation.
type Option func(*options)

// WithCapacityAttr overrides the edge attribute read as capacity.
// Edges without the attribute are treated as having infinite capacity.
func WithCapacityAttr(name string) Option {
	return func(o *options) { o.capacityAttr = name }
}

// WithWeightAttr overrides the edge attribute read as cost per unit of
// flow by CapacityScaling. Missing attributes default to zero.
func WithWeightAttr(name string) Option {
	return func(o *options) { o.weightAttr = name }
}

// WithDemandAttr overrides the node attribute read as demand by
// CapacityScaling. Missing attributes default to zero.
func WithDemandAttr(name string) Option {
	return func(o *options) { o.demandAttr = name }
}

// WithResidual reuses a previously built residual network, skipping the
// build step. The residual must have been produced by BuildResidual (or
// a prior solver run) on a graph with identical topology and capacities;
// its flows are reset before the run.
func WithResidual(r *Residual) Option {
	return func(o *options) { o.residual = r }
}

// WithCutoff stops a max-flow solver once the flow value reaches c.
// The cutoff is checked once per augmentation, before the push, so the
// final value may overshoot c by up to one bottleneck. The result is
// then only an approximation of the true maximum flow.
func WithCutoff(c float64) Option {
	return func(o *options) { o.cutoff = c }
}

// WithHeap selects the priority-queue implementation used by
// CapacityScaling. Defaults to heaps.NewBinaryHeap.
func WithHeap(f HeapFactory) Option {
	return func(o *options) { o.newHeap = f }
}

func buildOptions(opts []Option) options {
	o := options{
		capacityAttr: DefaultCapacityAttr,
		weightAttr:   DefaultWeightAttr,
		demandAttr:   DefaultDemandAttr,
		cutoff:       math.Inf(1),
		newHeap:      func() heaps.MinHeap[string, int64] { return heaps.NewBinaryHeap[string, int64]() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
