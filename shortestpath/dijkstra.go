package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/matrix"
)

// Dijkstra computes shortest distances from src to every vertex of m.
//
// Returns a vector indexed like m: dist[src] == 0, core.Inf for unreachable
// vertices.
//
// Precondition (not checked): all finite weights are non-negative. Use
// BellmanFord or Johnson for networks with negative weights.
//
// Complexity: Time O(V²), Space O(V).
func Dijkstra(m *core.Model, src int) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if src < 0 || src >= m.N() {
		return nil, fmt.Errorf("shortestpath: Dijkstra(%d): %w", src, ErrSourceOutOfRange)
	}
	dist, _ := dijkstraDense(m.Matrix(), src)

	return dist, nil
}

// DijkstraFrom is Dijkstra addressed by label.
func DijkstraFrom(m *core.Model, label string) ([]float64, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	src, err := m.Index(label)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: DijkstraFrom: %w", err)
	}

	return Dijkstra(m, src)
}

// ShortestRoute returns the cheapest itinerary from one airport to another as
// a label sequence (both ends included) plus its cost. When to is
// unreachable the route is nil and the cost is core.Inf.
// Same non-negative weight precondition as Dijkstra.
func ShortestRoute(m *core.Model, from, to string) ([]string, float64, error) {
	if m == nil {
		return nil, 0, ErrNilModel
	}
	src, err := m.Index(from)
	if err != nil {
		return nil, 0, fmt.Errorf("shortestpath: ShortestRoute: %w", err)
	}
	dst, err := m.Index(to)
	if err != nil {
		return nil, 0, fmt.Errorf("shortestpath: ShortestRoute: %w", err)
	}

	dist, prev := dijkstraDense(m.Matrix(), src)
	if core.IsInf(dist[dst]) {
		return nil, core.Inf, nil
	}

	// Walk predecessors back from dst, then reverse.
	var route []string
	for v := dst; v != -1; v = prev[v] {
		route = append(route, m.Label(v))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[dst], nil
}

// dijkstraDense is the array-based Dijkstra over an adjacency matrix w
// (+Inf = no edge). It returns distances and predecessors (−1 for src and
// for unreachable vertices).
//
// Each of at most V rounds scans for the unsettled vertex of minimum finite
// distance (lowest index on ties), settles it and relaxes its row.
func dijkstraDense(w *matrix.Dense, src int) ([]float64, []int) {
	n := w.Rows()
	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = core.Inf
		prev[v] = -1
	}
	dist[src] = 0

	var (
		round, u, v int
		wt, cand    float64
	)
	for round = 0; round < n; round++ {
		// 1) Pick the closest unsettled vertex.
		u = -1
		for v = 0; v < n; v++ {
			if done[v] || core.IsInf(dist[v]) {
				continue
			}
			if u == -1 || dist[v] < dist[u] {
				u = v
			}
		}
		if u == -1 {
			break // the rest is unreachable
		}
		done[u] = true

		// 2) Relax the outgoing routes of u.
		for v = 0; v < n; v++ {
			if done[v] || v == u {
				continue
			}
			wt, _ = w.At(u, v)
			if core.IsInf(wt) {
				continue
			}
			cand = dist[u] + wt
			if cand < dist[v] {
				dist[v] = cand
				prev[v] = u
			}
		}
	}

	return dist, prev
}
