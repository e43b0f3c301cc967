// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) kernel with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - Negative edges are tolerated. Negative cycles are NOT detected: the
//     resulting distances are left as computed and may be meaningless.

package matrix

import (
	"fmt"
	"math"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Loop order is fixed (k → i → j) and only strict improvements are written,
// so equal inputs always produce identical outputs.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, d.r, d.c, ErrNonSquare)
	}

	n := d.r
	data := d.data
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// NegativeDiagonal returns the indices whose diagonal entry is negative.
// After FloydWarshall those are exactly the vertices lying on a negative cycle.
// Complexity: O(n).
func NegativeDiagonal(d *Dense) []int {
	if d == nil || d.r != d.c {
		return nil
	}
	var out []int
	for i := 0; i < d.r; i++ {
		if d.data[i*d.c+i] < 0 {
			out = append(out, i)
		}
	}

	return out
}
