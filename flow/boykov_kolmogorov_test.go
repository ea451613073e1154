package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/xgraph/core"
	"github.com/katalvlaran/xgraph/flow"
)

// BoykovKolmogorovSuite exercises the tree-growing solver.
type BoykovKolmogorovSuite struct {
	suite.Suite
}

func (s *BoykovKolmogorovSuite) TestSingleEdge() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", core.WithAttr("capacity", 7.0))

	r, err := flow.BoykovKolmogorov(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, r.FlowValue())
}

func (s *BoykovKolmogorovSuite) TestClassicNetwork() {
	g := buildClassicNetwork()
	value, flows, err := flow.MaximumFlowWith(flow.BoykovKolmogorov, g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, value)
	checkConservation(s.T(), g, flows, "x", "y", 3.0)
}

func (s *BoykovKolmogorovSuite) TestAgreesWithEdmondsKarp() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("s", "a", core.WithAttr("capacity", 10.0))
	_, _ = g.AddEdge("s", "b", core.WithAttr("capacity", 10.0))
	_, _ = g.AddEdge("a", "b", core.WithAttr("capacity", 2.0))
	_, _ = g.AddEdge("a", "t", core.WithAttr("capacity", 4.0))
	_, _ = g.AddEdge("b", "t", core.WithAttr("capacity", 9.0))

	rbk, err := flow.BoykovKolmogorov(g, "s", "t")
	require.NoError(s.T(), err)
	rek, err := flow.EdmondsKarp(g, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), rek.FlowValue(), rbk.FlowValue())
	require.Equal(s.T(), 13.0, rbk.FlowValue())
}

func (s *BoykovKolmogorovSuite) TestTreesExposeCut() {
	g := buildClassicNetwork()
	r, err := flow.BoykovKolmogorov(g, "x", "y")
	require.NoError(s.T(), err)

	source, target, ok := r.Trees()
	require.True(s.T(), ok)
	require.Contains(s.T(), source, "x")
	require.Contains(s.T(), target, "y")

	// Every node is in at most one tree.
	for n := range source {
		require.NotContains(s.T(), target, n)
	}

	// Arcs leaving the source tree must be saturated; their capacities
	// sum to the flow value.
	var cut float64
	for _, u := range r.Nodes() {
		if _, inSource := source[u]; !inSource {
			continue
		}
		for _, v := range r.Successors(u) {
			if _, inSource := source[v]; inSource {
				continue
			}
			e := r.Edge(u, v)
			if e.Capacity > 0 {
				require.Equal(s.T(), e.Capacity, e.Flow)
				cut += e.Capacity
			}
		}
	}
	require.Equal(s.T(), r.FlowValue(), cut)
}

func (s *BoykovKolmogorovSuite) TestUnbounded() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("s", "m")
	_, _ = g.AddEdge("m", "t")

	_, err := flow.BoykovKolmogorov(g, "s", "t")
	require.ErrorIs(s.T(), err, flow.ErrUnbounded)
}

func (s *BoykovKolmogorovSuite) TestDisconnected() {
	g := core.NewDiGraph()
	require.NoError(s.T(), g.AddNode("Z"))
	_, _ = g.AddEdge("A", "B", core.WithAttr("capacity", 4.0))

	r, err := flow.BoykovKolmogorov(g, "A", "Z")
	require.NoError(s.T(), err)
	require.Zero(s.T(), r.FlowValue())
}

func TestBoykovKolmogorovSuite(t *testing.T) {
	suite.Run(t, new(BoykovKolmogorovSuite))
}
