package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/routenet/core"
)

// Kruskal computes the MST of m read as an undirected network.
//
// Steps:
//  1. Validate m != nil; a single vertex yields an empty tree.
//  2. Collect m.UndirectedEdges(); if fewer than V−1 exist → ErrDisconnected.
//  3. Stable-sort by ascending weight so equal weights keep (i, j) order.
//  4. Walk the sorted list; add an edge when its endpoints are in different
//     sets, then union them. Stop at V−1 edges.
//  5. Fewer than V−1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(m *core.Model) ([]core.Edge, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrNilModel
	}
	n := m.N()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Undirected working list; too few edges can never span.
	edges := m.UndirectedEdges()
	if len(edges) < n-1 {
		return nil, 0, ErrDisconnected
	}

	// 3. Deterministic order for equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Greedy union.
	var (
		ds          = newDisjointSet(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue // would close a cycle
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 5. Forest instead of tree.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
