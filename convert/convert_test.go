package convert_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xgraph/convert"
	"github.com/katalvlaran/xgraph/core"
)

func TestFromDictOfDicts(t *testing.T) {
	dod := convert.DictOfDicts{
		"a": {"b": {"weight": 2.0}},
		"b": {"c": nil},
		"c": {},
	}
	g, err := convert.Build(dod, core.WithDirected(true))
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b", "c"}, g.Nodes())
	require.Equal(t, 2, g.EdgeCount())
	st, err := g.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.Equal(t, 2.0, st.Float("weight", 0))
}

func TestDictOfDicts_RoundTrip(t *testing.T) {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("a", "b", core.WithAttr("weight", 2.0))
	_, _ = g.AddEdge("b", "c", core.WithAttr("weight", 5.0))

	dod := convert.ToDictOfDicts(g)
	want := map[string]map[string]map[string]any{
		"a": {"b": {"weight": 2.0}},
		"b": {"c": {"weight": 5.0}},
		"c": {},
	}
	require.Empty(t, cmp.Diff(want, dod))

	g2, err := convert.Build(convert.DictOfDicts(dod), core.WithDirected(true))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(dod, convert.ToDictOfDicts(g2)))
}

func TestDictOfDicts_UndirectedSymmetry(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")

	dod := convert.ToDictOfDicts(g)
	require.Contains(t, dod["a"], "b")
	require.Contains(t, dod["b"], "a")

	// Re-importing the symmetric shape must not duplicate the edge.
	g2, err := convert.Build(convert.DictOfDicts(dod))
	require.NoError(t, err)
	require.Equal(t, 1, g2.EdgeCount())
}

func TestMultiDictOfDicts_RoundTrip(t *testing.T) {
	g := core.NewMultiDiGraph()
	_, _ = g.AddEdge("a", "b", core.WithAttr("w", 1))
	_, _ = g.AddEdge("a", "b", core.WithAttr("w", 2))

	mdod := convert.ToMultiDictOfDicts(g)
	require.Len(t, mdod["a"]["b"], 2)

	g2, err := convert.Build(convert.MultiDictOfDicts(mdod),
		core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, err)
	require.Equal(t, 2, g2.NumberOfEdges("a", "b"))
	require.Empty(t, cmp.Diff(mdod, convert.ToMultiDictOfDicts(g2)))
}

func TestDictOfLists(t *testing.T) {
	dol := convert.DictOfLists{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	}
	g, err := convert.Build(dol)
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	require.Empty(t, cmp.Diff(map[string][]string{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	}, convert.ToDictOfLists(g)))
}

func TestFromEdgeList(t *testing.T) {
	el := convert.EdgeList{
		{U: "a", V: "b", Attrs: map[string]any{"weight": 1.5}},
		{U: "b", V: "c"},
	}
	g, err := convert.Build(el, core.WithDirected(true))
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "c"))

	out := convert.ToEdgeList(g)
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].U)
	require.Equal(t, 1.5, out[0].Attrs["weight"])
}

func TestFromAdjacencyMatrix(t *testing.T) {
	src := convert.AdjacencyMatrix{
		Nodes: []string{"x", "y", "z"},
		Data: [][]float64{
			{0, 2, 0},
			{0, 0, 3},
			{1, 0, 0},
		},
	}
	g, err := convert.Build(src, core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	st, err := g.EdgeAttrs("z", "x")
	require.NoError(t, err)
	require.Equal(t, 1.0, st.Float("weight", 0))
}

func TestFromAdjacencyMatrix_Malformed(t *testing.T) {
	_, err := convert.Build(convert.AdjacencyMatrix{
		Data: [][]float64{{0, 1}, {1}},
	})
	require.ErrorIs(t, err, convert.ErrBadMatrix)

	_, err = convert.Build(convert.AdjacencyMatrix{
		Nodes: []string{"only"},
		Data:  [][]float64{{0, 1}, {1, 0}},
	})
	require.ErrorIs(t, err, convert.ErrBadMatrix)
}

func TestGraphSource_FlavorAdaptation(t *testing.T) {
	und := core.NewGraph()
	_, _ = und.AddEdge("a", "b", core.WithAttr("weight", 4.0))

	di, err := convert.Build(convert.GraphSource{Graph: und}, core.WithDirected(true))
	require.NoError(t, err)
	require.True(t, di.HasEdge("a", "b"))
	require.True(t, di.HasEdge("b", "a"))

	// Copies de-alias attribute storage.
	st, err := di.EdgeAttrs("a", "b")
	require.NoError(t, err)
	st.Set("weight", 9.0)
	orig, err := und.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.Equal(t, 4.0, orig.Float("weight", 0))
}

func TestGraphSource_PreservesMultigraphKeys(t *testing.T) {
	src := core.NewMultiDiGraph()
	_, _ = src.AddEdge("u", "v", core.WithKey(5), core.WithAttr("w", 1))
	_, _ = src.AddEdge("u", "v", core.WithAttr("w", 2))

	dup, err := convert.FromGraph(src, core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, err)
	require.True(t, dup.HasEdgeKey("u", "v", 5))
	require.ElementsMatch(t, src.EdgeKeys("u", "v"), dup.EdgeKeys("u", "v"))

	st, err := dup.EdgeAttrsKey("u", "v", 5)
	require.NoError(t, err)
	require.Equal(t, 1, st.Map()["w"])

	// Collapsing onto a simple destination still merges as before.
	simple, err := convert.FromGraph(src, core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, 1, simple.NumberOfEdges("u", "v"))
}

func TestToGraph_ProbeChain(t *testing.T) {
	cases := []struct {
		name  string
		value any
		edges int
	}{
		{"graph", func() any {
			g := core.NewGraph()
			_, _ = g.AddEdge("a", "b")

			return g
		}(), 1},
		{"dictOfDicts", map[string]map[string]map[string]any{
			"a": {"b": nil},
		}, 1},
		{"dictOfLists", map[string][]string{"a": {"b", "c"}}, 2},
		{"edgePairs", [][2]string{{"a", "b"}, {"b", "c"}}, 2},
		{"matrix", [][]float64{{0, 1}, {0, 0}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := convert.ToGraph(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}

	_, err := convert.ToGraph(42)
	require.ErrorIs(t, err, convert.ErrUnconvertible)
}

func TestExportOptions(t *testing.T) {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("a", "b", core.WithAttr("weight", 1.0))
	_, _ = g.AddEdge("b", "c", core.WithAttr("weight", 2.0))
	_, _ = g.AddEdge("c", "d", core.WithAttr("weight", 3.0))

	// Nodelist keeps only the induced subgraph, in list order.
	dod := convert.ToDictOfDicts(g, convert.WithNodelist("b", "c", "ghost"))
	require.Empty(t, cmp.Diff(map[string]map[string]map[string]any{
		"b": {"c": {"weight": 2.0}},
		"c": {},
	}, dod))

	// EdgeData replaces real attributes with a fixed map.
	flat := convert.ToEdgeList(g, convert.WithEdgeData(map[string]any{"w": 1}))
	for _, e := range flat {
		require.Equal(t, map[string]any{"w": 1}, e.Attrs)
	}
}

func TestExportedAttrsAreCopies(t *testing.T) {
	g := core.NewDiGraph()
	_, _ = g.AddEdge("a", "b", core.WithAttr("weight", 1.0))

	dod := convert.ToDictOfDicts(g)
	dod["a"]["b"]["weight"] = 99.0

	st, err := g.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.Equal(t, 1.0, st.Float("weight", 0))
}
