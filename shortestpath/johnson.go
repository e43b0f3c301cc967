package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/routenet/core"
)

// Johnson computes all-pairs shortest distances of m, allowing negative
// weights, by reweighting the network so Dijkstra becomes applicable.
//
// Steps:
//  1. Potentials: add a virtual source q with a 0-weight edge to every vertex
//     and run Bellman–Ford from q over the V+1 vertices. Starting from
//     h[v] = 0 is exactly the first relaxation of q's edges; V more rounds
//     follow, then a check pass. Any edge that still relaxes → ErrNegativeCycle.
//  2. Reweight: w'(u,v) = w(u,v) + h[u] − h[v] ≥ 0. Tiny negative results
//     caused by float rounding are clamped to 0.
//  3. Run the dense Dijkstra from every vertex on the reweighted matrix.
//  4. Recover d(u,v) = d'(u,v) + h[v] − h[u]; Inf stays Inf and the diagonal
//     is pinned to 0.
//
// Complexity: Time O(V·E + V³) with the dense Dijkstra, Space O(V²).
func Johnson(m *core.Model) (*DistanceTable, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	n := m.N()
	edges := m.Edges()

	// 1) Potentials from the virtual source.
	h := make([]float64, n)
	if relaxRounds(h, edges, n) {
		return nil, fmt.Errorf("shortestpath: Johnson: %w", ErrNegativeCycle)
	}

	// 2) Reweighted private copy of the adjacency matrix.
	rw := m.Matrix()
	var wp float64
	for _, e := range edges {
		wp = e.Weight + h[e.From] - h[e.To]
		if wp < 0 {
			wp = 0
		}
		if err := rw.Set(e.From, e.To, wp); err != nil {
			return nil, fmt.Errorf("shortestpath: Johnson: %w", err)
		}
	}

	// 3–4) Dijkstra per source, then undo the reweighting.
	out, err := allocTable(n)
	if err != nil {
		return nil, err
	}
	var u, v int
	var row []float64
	for u = 0; u < n; u++ {
		row, _ = dijkstraDense(rw, u)
		for v = 0; v < n; v++ {
			switch {
			case u == v:
				// allocTable already holds 0 here.
			case core.IsInf(row[v]):
				// allocTable already holds Inf here.
			default:
				if err = out.Set(u, v, row[v]+h[v]-h[u]); err != nil {
					return nil, fmt.Errorf("shortestpath: Johnson: %w", err)
				}
			}
		}
	}

	return newTable(m, out), nil
}
