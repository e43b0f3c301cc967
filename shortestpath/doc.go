// Package shortestpath implements the single-source and all-pairs shortest
// path algorithms used to analyse a route network (*core.Model).
//
// Algorithms:
//
//	Dijkstra(m, src)    – single source, dense O(V²) array scan.
//	BellmanFord(m, src) – single source, O(V·E), tolerates negative weights.
//	FloydWarshall(m)    – all pairs, O(V³) triple loop over an N×N table.
//	Johnson(m)          – all pairs, Bellman–Ford reweighting + V × Dijkstra,
//	                      O(V·E + V·V²) with the dense Dijkstra used here.
//
// Sentinel:
//
//	Unreachable distances are core.Inf (+Inf). Distances from a vertex to
//	itself are 0. Code in this package never adds a finite value to Inf, and
//	never computes Inf − Inf, so no NaN can leak into a result.
//
// Preconditions and policies:
//
//   - Dijkstra requires every finite weight to be non-negative. This is NOT
//     checked at runtime; violating it yields wrong distances, not an error.
//   - FloydWarshall tolerates negative weights but performs no negative-cycle
//     detection. If a negative cycle exists the table is left as computed and
//     may be meaningless; DistanceTable.NegativeDiagonal exposes the symptom.
//   - Johnson and BellmanFord detect negative cycles and return ErrNegativeCycle.
//
// Errors:
//
//	ErrNilModel          – nil *core.Model.
//	ErrSourceOutOfRange  – source index outside [0, N).
//	ErrNegativeCycle     – a negative-cost cycle makes distances undefined.
//	core.ErrUnknownVertex – label-based helpers given an unknown label.
//	core.ErrAllocation   – table storage could not be obtained.
//
// No function mutates the input model: all work happens on private copies.
package shortestpath
