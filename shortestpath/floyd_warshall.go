package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/matrix"
)

// FloydWarshall computes all-pairs shortest distances of m.
//
// The adjacency matrix is copied and closed in place by matrix.FloydWarshall
// (k → i → j, strict improvements only). Negative weights are fine; negative
// cycles are not detected and leave the table unvalidated; check
// DistanceTable.NegativeDiagonal when the input may contain them.
//
// Complexity: Time O(V³), Space O(V²).
func FloydWarshall(m *core.Model) (*DistanceTable, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	d := m.Matrix()
	if err := matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("shortestpath: %w", err)
	}

	return newTable(m, d), nil
}
