// Package graphtest holds deterministic fixtures shared by the test suites:
// seeded random route networks and conversion to gonum graphs, which serve
// as an independent oracle for MST weights and shortest-path tables.
package graphtest

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/routenet/core"
)

// Labels returns "V0".."V{n-1}".
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("V%d", i)
	}

	return out
}

// RandomModel builds an n-vertex model where every ordered (or unordered)
// pair gets a route with probability p. Weights are integers in [1, 100] so
// sums stay exact in float64. When connected is true a chain V0-V1-…
// is added first, guaranteeing one component.
func RandomModel(n int, p float64, directed, connected bool, seed int64) (*core.Model, error) {
	r := rand.New(rand.NewSource(seed))
	m, err := core.New(Labels(n), directed)
	if err != nil {
		return nil, err
	}
	if connected {
		for i := 1; i < n; i++ {
			if err = m.AddRoute(i-1, i, float64(1+r.Intn(100))); err != nil {
				return nil, err
			}
			if directed {
				if err = m.AddRoute(i, i-1, float64(1+r.Intn(100))); err != nil {
					return nil, err
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		start := i + 1
		if directed {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j || r.Float64() >= p {
				continue
			}
			if err = m.AddRoute(i, j, float64(1+r.Intn(100))); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// GonumMSTWeight returns the MST weight gonum's Kruskal finds on m read as
// undirected.
func GonumMSTWeight(m *core.Model) float64 {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < m.N(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range m.UndirectedEdges() {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return path.Kruskal(dst, g)
}

// GonumDistances returns gonum's Johnson all-pairs table for m, and false
// when gonum detects a negative cycle.
func GonumDistances(m *core.Model) ([][]float64, bool) {
	n := m.N()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range m.Edges() {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}
	paths, ok := path.JohnsonAllPaths(g)
	if !ok {
		return nil, false
	}

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = paths.Weight(int64(i), int64(j))
		}
	}

	return out, true
}
