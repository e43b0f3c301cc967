package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/routenet/core"
)

// Prim computes the MST of m read as an undirected network, growing the tree
// from vertex 0 over dense arrays.
//
// Steps:
//  1. Validate m != nil; a single vertex yields an empty tree.
//  2. Initialize key[v] = Inf, parent[v] = −1, key[0] = 0.
//  3. Repeat V times: pick the vertex u outside the tree with the smallest
//     finite key (lowest index on ties). If none exists → ErrDisconnected.
//     Add u; if u has a parent, emit edge (parent[u], u).
//  4. Relax every v outside the tree: if the undirected cost u-v beats
//     key[v], set key[v] and parent[v] = u.
//
// Edges are emitted in the order vertices join the tree.
//
// Complexity: O(V²) time, O(V) memory.
func Prim(m *core.Model) ([]core.Edge, float64, error) {
	// 1. Validate.
	if m == nil {
		return nil, 0, ErrNilModel
	}
	n := m.N()
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Dense working arrays.
	key := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for v := 0; v < n; v++ {
		key[v] = core.Inf
		parent[v] = -1
	}
	key[0] = 0

	var (
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
		u, v, step  int
		w           float64
	)
	for step = 0; step < n; step++ {
		// 3. Minimum-key scan; strict < keeps the first (lowest) index on ties.
		u = -1
		for v = 0; v < n; v++ {
			if inTree[v] || core.IsInf(key[v]) {
				continue
			}
			if u == -1 || key[v] < key[u] {
				u = v
			}
		}
		if u == -1 {
			return nil, 0, ErrDisconnected
		}
		inTree[u] = true
		if parent[u] >= 0 {
			mst = append(mst, core.Edge{From: parent[u], To: u, Weight: key[u]})
			totalWeight += key[u]
		}

		// 4. Relax the neighbours of u.
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			w = math.Min(m.Weight(u, v), m.Weight(v, u))
			if w < key[v] {
				key[v] = w
				parent[v] = u
			}
		}
	}

	return mst, totalWeight, nil
}
