// Package prim_kruskal computes the Minimum Spanning Tree (MST) of a route
// network (*core.Model) with two classical algorithms whose costs scale
// differently with graph shape: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - An MST is the cheapest set of V−1 routes that still connects every
//     airport. For an airline it is the minimal backbone: drop any tree route
//     and some airport becomes unreachable.
//
//   - Both algorithms read the model as undirected. For a directed model the
//     pair {i, j} is connected when either i→j or j→i exists, at cost
//     min(w(i,j), w(j,i)) (see core.Model.UndirectedEdges).
//
// Algorithms Provided
//
//   - Prim(m *core.Model) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree from vertex 0 using the dense arrays key[]
//     (cheapest known connection into the tree) and parent[]. Each of the
//     V−1 steps scans all vertices for the minimum key not yet in the tree;
//     ties go to the lowest index, so the result is deterministic.
//
//   - Complexity: Time O(V²), Space O(V). Independent of E, which makes it
//     the better choice on dense networks.
//
//   - Kruskal(m *core.Model) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort the undirected edge list by weight (ties keep
//     (i, j) enumeration order) and add each edge whose endpoints lie in
//     different components of a disjoint-set forest.
//
//   - Complexity: Time O(E log E + α(V)·E) ≈ O(E log V), Space O(V + E).
//     Better on sparse networks where E ≪ V².
//
// Both return the tree edges and their total weight. Whenever both succeed
// the totals are equal; the chosen edge sets may differ if several MSTs exist.
//
// Error Conditions
//
//   - ErrNilModel     – the model pointer is nil.
//   - ErrDisconnected – no spanning tree exists (some airport is unreachable).
//     Kruskal short-circuits when the edge count is already below V−1.
//   - ErrUnknownMethod – Compute was given a method other than MethodPrim / MethodKruskal.
//
// A single-vertex model has an empty MST of weight 0.
package prim_kruskal
