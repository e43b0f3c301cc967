package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/routenet/core"
)

// BellmanFord computes shortest distances from src, allowing negative weights.
//
// Steps:
//  1. dist[src] = 0, all others Inf.
//  2. Up to V−1 rounds: relax every finite edge whose tail is reachable;
//     stop early when a round changes nothing.
//  3. One more pass: any edge that still relaxes lies on (or behind) a
//     negative cycle reachable from src → ErrNegativeCycle.
//
// Complexity: Time O(V·E), Space O(V + E).
func BellmanFord(m *core.Model, src int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	n := m.N()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("shortestpath: BellmanFord(%d): %w", src, ErrSourceOutOfRange)
	}

	dist := make([]float64, n)
	for v := range dist {
		dist[v] = core.Inf
	}
	dist[src] = 0

	edges := m.Edges()
	if relaxRounds(dist, edges, n-1) {
		return nil, fmt.Errorf("shortestpath: BellmanFord from %q: %w", m.Label(src), ErrNegativeCycle)
	}

	return dist, nil
}

// relaxRounds runs up to rounds relaxation passes over edges on dist, then a
// check pass. It reports whether the check pass could still relax an edge.
// Edges leaving a vertex at Inf are skipped, so Inf is never added to.
func relaxRounds(dist []float64, edges []core.Edge, rounds int) bool {
	var changed bool
	for r := 0; r < rounds; r++ {
		changed = false
		for _, e := range edges {
			if core.IsInf(dist[e.From]) {
				continue
			}
			if c := dist[e.From] + e.Weight; c < dist[e.To] {
				dist[e.To] = c
				changed = true
			}
		}
		if !changed {
			return false // converged, the check pass cannot relax either
		}
	}

	for _, e := range edges {
		if core.IsInf(dist[e.From]) {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return true
		}
	}

	return false
}
