package flow_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/xgraph/core"
	"github.com/katalvlaran/xgraph/flow"
)

// buildRandomNetwork constructs a directed graph with V nodes and
// roughly p probability of an arc between any ordered pair, capacities
// uniform in [1, maxCap). The generator is seeded explicitly so every
// run benchmarks the same topology.
func buildRandomNetwork(v int, p, maxCap float64, seed int64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewDiGraph()
	for i := 0; i < v; i++ {
		_ = g.AddNode(strconv.Itoa(i))
	}
	for u := 0; u < v; u++ {
		for w := 0; w < v; w++ {
			if u == w || rng.Float64() >= p {
				continue
			}
			_, _ = g.AddEdge(strconv.Itoa(u), strconv.Itoa(w),
				core.WithAttr("capacity", rng.Float64()*maxCap+1))
		}
	}

	return g
}

func BenchmarkMaxFlow(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 100, 0.08, 42},
		{"Medium", 300, 0.03, 4242},
		{"Large", 600, 0.015, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := buildRandomNetwork(tc.vertices, tc.edgeProb, 50.0, tc.seed)
			src, dst := "0", strconv.Itoa(tc.vertices-1)

			b.Run("EdmondsKarp", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.EdmondsKarp(g, src, dst)
				}
			})

			b.Run("BoykovKolmogorov", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.BoykovKolmogorov(g, src, dst)
				}
			})
		})
	}
}

func BenchmarkResidualReuse(b *testing.B) {
	g := buildRandomNetwork(300, 0.03, 50.0, 7)
	r, err := flow.BuildResidual(g, "capacity")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flow.EdmondsKarp(g, "0", "299", flow.WithResidual(r))
	}
}
