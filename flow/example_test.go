package flow_test

import (
	"fmt"

	"github.com/katalvlaran/xgraph/core"
	"github.com/katalvlaran/xgraph/flow"
)

// ExampleMaximumFlow demonstrates a maximum flow computation on a
// small capacitated digraph.
func ExampleMaximumFlow() {
	g := core.NewDiGraph()
	g.AddEdge("s", "a", core.WithAttr("capacity", 4.0))
	g.AddEdge("s", "b", core.WithAttr("capacity", 2.0))
	g.AddEdge("a", "t", core.WithAttr("capacity", 3.0))
	g.AddEdge("b", "t", core.WithAttr("capacity", 5.0))
	g.AddEdge("a", "b", core.WithAttr("capacity", 1.0))

	value, flows, err := flow.MaximumFlow(g, "s", "t")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("value:", value)
	fmt.Println("s->a:", flows["s"]["a"])
	fmt.Println("s->b:", flows["s"]["b"])

	// Output:
	// value: 6
	// s->a: 4
	// s->b: 2
}

// ExampleMinimumCut shows the node partition dual to the maximum flow.
func ExampleMinimumCut() {
	g := core.NewDiGraph()
	g.AddEdge("s", "m", core.WithAttr("capacity", 3.0))
	g.AddEdge("m", "t", core.WithAttr("capacity", 1.0))

	cut, partition, _ := flow.MinimumCut(g, "s", "t")
	fmt.Println("cut:", cut)
	fmt.Println("source side:", partition[0])
	fmt.Println("sink side:", partition[1])

	// Output:
	// cut: 1
	// source side: [s m]
	// sink side: [t]
}

// ExampleCapacityScaling routes node demands at minimum total cost.
func ExampleCapacityScaling() {
	g := core.NewDiGraph()
	g.AddNode("a", core.WithNodeAttr("demand", -5))
	g.AddNode("d", core.WithNodeAttr("demand", 5))
	g.AddEdge("a", "b", core.WithAttrs(map[string]any{"weight": 3, "capacity": 4}))
	g.AddEdge("a", "c", core.WithAttrs(map[string]any{"weight": 6, "capacity": 10}))
	g.AddEdge("b", "d", core.WithAttrs(map[string]any{"weight": 1, "capacity": 9}))
	g.AddEdge("c", "d", core.WithAttrs(map[string]any{"weight": 2, "capacity": 5}))

	cost, fd, _ := flow.CapacityScaling(g)
	flows := fd.Simple()
	fmt.Println("cost:", cost)
	fmt.Println("a->b:", flows["a"]["b"])
	fmt.Println("a->c:", flows["a"]["c"])

	// Output:
	// cost: 24
	// a->b: 4
	// a->c: 1
}
