package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/xgraph/core"
	"github.com/katalvlaran/xgraph/flow"
)

// EdmondsKarpSuite exercises the shortest-augmenting-path solver.
type EdmondsKarpSuite struct {
	suite.Suite
}

func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", core.WithAttr("capacity", 7.0))

	r, err := flow.EdmondsKarp(g, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7.0, r.FlowValue())
	require.Equal(s.T(), 7.0, r.Edge("A", "B").Flow)
	require.Equal(s.T(), -7.0, r.Edge("B", "A").Flow)
}

func (s *EdmondsKarpSuite) TestClassicNetwork() {
	g := buildClassicNetwork()
	value, flows, err := flow.MaximumFlowWith(flow.EdmondsKarp, g, "x", "y")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, value)
	checkConservation(s.T(), g, flows, "x", "y", 3.0)
}

func (s *EdmondsKarpSuite) TestUndirectedPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithAttr("capacity", 3.0))
	_, _ = g.AddEdge("B", "C", core.WithAttr("capacity", 2.0))

	r, err := flow.EdmondsKarp(g, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, r.FlowValue())
}

func (s *EdmondsKarpSuite) TestDisconnected() {
	g := core.NewDiGraph()
	require.NoError(s.T(), g.AddNode("A"))
	require.NoError(s.T(), g.AddNode("Z"))
	_, _ = g.AddEdge("A", "B", core.WithAttr("capacity", 4.0))

	r, err := flow.EdmondsKarp(g, "A", "Z")
	require.NoError(s.T(), err)
	require.Zero(s.T(), r.FlowValue())
}

func (s *EdmondsKarpSuite) TestCutoff() {
	g := buildClassicNetwork()
	r, err := flow.EdmondsKarp(g, "x", "y", flow.WithCutoff(2.0))
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), r.FlowValue(), 2.0)
	require.Less(s.T(), r.FlowValue(), 3.0)
}

func (s *EdmondsKarpSuite) TestCutoffOvershoot() {
	// The cutoff is checked before each augmentation, so the last push
	// may carry the value past it: the first shortest path here has
	// bottleneck 2, overshooting a cutoff of 1.5.
	g := buildClassicNetwork()
	r, err := flow.EdmondsKarp(g, "x", "y", flow.WithCutoff(1.5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, r.FlowValue())
}

func (s *EdmondsKarpSuite) TestUnbounded() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("s", "m") // missing capacity: infinite
	_, _ = g.AddEdge("m", "t")

	_, err := flow.EdmondsKarp(g, "s", "t")
	require.ErrorIs(s.T(), err, flow.ErrUnbounded)
}

func (s *EdmondsKarpSuite) TestArgumentErrors() {
	g := buildClassicNetwork()

	_, err := flow.EdmondsKarp(g, "nope", "y")
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.EdmondsKarp(g, "x", "nope")
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.EdmondsKarp(g, "x", "x")
	require.ErrorIs(s.T(), err, flow.ErrSameNode)

	mg := core.NewMultiDiGraph()
	_, _ = mg.AddEdge("x", "y", core.WithAttr("capacity", 1.0))
	_, err = flow.EdmondsKarp(mg, "x", "y")
	require.ErrorIs(s.T(), err, flow.ErrMultigraph)
}

func (s *EdmondsKarpSuite) TestResidualReuse() {
	g := buildClassicNetwork()
	r, err := flow.EdmondsKarp(g, "x", "y")
	require.NoError(s.T(), err)

	// Second run on the same residual resets flows and reproduces the value.
	r2, err := flow.EdmondsKarp(g, "x", "y", flow.WithResidual(r))
	require.NoError(s.T(), err)
	require.Same(s.T(), r, r2)
	require.Equal(s.T(), 3.0, r2.FlowValue())
}

func (s *EdmondsKarpSuite) TestCustomCapacityAttr() {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("A", "B", core.WithAttr("bandwidth", 5.0))

	r, err := flow.EdmondsKarp(g, "A", "B", flow.WithCapacityAttr("bandwidth"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, r.FlowValue())
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
