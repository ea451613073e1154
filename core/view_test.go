// Package core_test: frozen view aliasing and freezing contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xgraph/core"
)

func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}} {
		_, err := g.AddEdge(e[0], e[1], core.WithAttr("weight", 1))
		require.NoError(t, err)
	}

	return g
}

func TestSubgraph_InducedAndFrozen(t *testing.T) {
	g := buildDiamond(t)

	sg := g.Subgraph([]string{"a", "b", "c", "ghost"})
	require.True(t, sg.IsFrozen())
	require.Equal(t, []string{"a", "b", "c"}, sg.Nodes(), "unknown IDs ignored")
	require.True(t, sg.HasEdge("a", "b"))
	require.True(t, sg.HasEdge("b", "c"))
	require.False(t, sg.HasEdge("c", "d"), "edge leaving the node set excluded")
	require.Equal(t, 2, sg.EdgeCount())

	// Structural mutation through a view is rejected.
	require.ErrorIs(t, sg.AddNode("x"), core.ErrFrozen)
	_, err := sg.AddEdge("a", "c")
	require.ErrorIs(t, err, core.ErrFrozen)
	require.ErrorIs(t, sg.RemoveNode("a"), core.ErrFrozen)
	require.ErrorIs(t, sg.RemoveEdge("a", "b"), core.ErrFrozen)
	require.ErrorIs(t, sg.Clear(), core.ErrFrozen)
}

// TestSubgraph_AttributeAliasing: attribute mutation through the parent
// is visible in the view and vice versa; Copy de-aliases.
func TestSubgraph_AttributeAliasing(t *testing.T) {
	g := buildDiamond(t)
	sg := g.Subgraph([]string{"a", "b"})

	parent, err := g.EdgeAttrs("a", "b")
	require.NoError(t, err)
	viewed, err := sg.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.Same(t, parent, viewed)

	parent.Set("weight", 42)
	require.Equal(t, 42.0, viewed.Float("weight", -1))

	viewed.Set("flag", true)
	_, ok := parent.Get("flag")
	require.True(t, ok)

	// Graph-level metadata is shared too.
	g.Attrs().Set("name", "diamond")
	v, ok := sg.Attrs().Get("name")
	require.True(t, ok)
	require.Equal(t, "diamond", v)

	// Deep copy severs the aliasing and unfreezes.
	c := sg.Copy()
	require.False(t, c.IsFrozen())
	require.NoError(t, c.AddNode("x"))
	dup, err := c.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.NotSame(t, parent, dup)
}

func TestEdgeSubgraph(t *testing.T) {
	g := buildDiamond(t)

	sg := g.EdgeSubgraph([]core.EdgeID{
		{U: "a", V: "b"},
		{U: "c", V: "d"},
		{U: "x", V: "y"}, // unknown edge ignored
	})
	require.True(t, sg.IsFrozen())
	require.ElementsMatch(t, []string{"a", "b", "c", "d"}, sg.Nodes())
	require.Equal(t, 2, sg.EdgeCount())
	require.True(t, sg.HasEdge("a", "b"))
	require.True(t, sg.HasEdge("c", "d"))
	require.False(t, sg.HasEdge("b", "c"))

	shared, err := sg.EdgeAttrs("a", "b")
	require.NoError(t, err)
	parent, err := g.EdgeAttrs("a", "b")
	require.NoError(t, err)
	require.Same(t, parent, shared)
}

func TestEdgeSubgraph_MultiKeys(t *testing.T) {
	g := core.NewMultiDiGraph()
	_, _ = g.AddEdge("u", "v", core.WithAttr("id", "first"))
	_, _ = g.AddEdge("u", "v", core.WithAttr("id", "second"))

	sg := g.EdgeSubgraph([]core.EdgeID{{U: "u", V: "v", Key: 1}})
	require.Equal(t, 1, sg.EdgeCount())
	st, err := sg.EdgeAttrsKey("u", "v", 1)
	require.NoError(t, err)
	v, _ := st.Get("id")
	require.Equal(t, "second", v)
}
