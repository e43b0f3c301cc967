// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage behind route-network models.
//
// Dense is a row-major float64 matrix held in one flat slice. It backs the
// adjacency matrix of core.Model, the reweighted matrix used by Johnson's
// algorithm and every distance table produced by the shortest-path engine.
//
// Numeric policy:
//
//   - +Inf (math.Inf(1)) means "no route" / "unreachable" off the diagonal.
//   - The diagonal of a distance matrix is 0.
//   - NaN is never stored by package code.
//
// FloydWarshall runs the all-pairs closure in place with a fixed k → i → j
// loop order, so results are bit-for-bit reproducible between runs. It does
// NOT look for negative cycles; callers that care inspect the diagonal
// afterwards (see NegativeDiagonal).
//
// Allocation is capped by MaxElements so that a hostile vertex count fails
// with ErrTooLarge instead of exhausting memory.
package matrix
