package shortestpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/matrix"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilModel indicates that a nil *core.Model was passed in.
	ErrNilModel = errors.New("shortestpath: model is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("shortestpath: source vertex out of range")

	// ErrNegativeCycle indicates that a cycle of negative total cost exists,
	// so shortest distances are undefined.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")
)

// DistanceTable is an N×N matrix of shortest distances: At(i,i) == 0 and
// At(i,j) == core.Inf when j is unreachable from i.
type DistanceTable struct {
	labels []string
	d      *matrix.Dense
}

// newTable wraps d, taking ownership of it.
func newTable(m *core.Model, d *matrix.Dense) *DistanceTable {
	return &DistanceTable{labels: m.Labels(), d: d}
}

var newDistance = matrix.NewDistance

// allocTable returns an N×N distance matrix, mapping storage failures to
// core.ErrAllocation.
func allocTable(n int) (*matrix.Dense, error) {
	d, err := newDistance(n)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: %w: %w", core.ErrAllocation, err)
	}

	return d, nil
}

// N returns the table order.
func (t *DistanceTable) N() int { return len(t.labels) }

// Labels returns a copy of the vertex labels in index order.
func (t *DistanceTable) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)

	return out
}

// At returns the distance i→j, or core.Inf when out of range.
func (t *DistanceTable) At(i, j int) float64 {
	v, err := t.d.At(i, j)
	if err != nil {
		return core.Inf
	}

	return v
}

// Row returns a copy of the distances from i.
func (t *DistanceTable) Row(i int) []float64 { return t.d.Row(i) }

// Rows returns a copy of the whole table.
func (t *DistanceTable) Rows() [][]float64 {
	out := make([][]float64, t.N())
	for i := range out {
		out[i] = t.d.Row(i)
	}

	return out
}

// Lookup returns the distance between two labelled vertices.
func (t *DistanceTable) Lookup(from, to string) (float64, error) {
	i, j := -1, -1
	for k, l := range t.labels {
		if l == from {
			i = k
		}
		if l == to {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, fmt.Errorf("shortestpath: Lookup(%q,%q): %w", from, to, core.ErrUnknownVertex)
	}

	return t.At(i, j), nil
}

// Equal reports whether o has the same order and entrywise equal distances
// within tol. Inf entries must match exactly.
func (t *DistanceTable) Equal(o *DistanceTable, tol float64) bool {
	if o == nil || o.N() != t.N() {
		return false
	}
	n := t.N()
	var a, b float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b = t.At(i, j), o.At(i, j)
			if core.IsInf(a) || core.IsInf(b) {
				if core.IsInf(a) != core.IsInf(b) {
					return false
				}
				continue
			}
			if math.Abs(a-b) > tol {
				return false
			}
		}
	}

	return true
}

// NegativeDiagonal returns vertices whose distance to themselves is negative,
// i.e. vertices on a negative cycle after FloydWarshall. Empty for a valid table.
func (t *DistanceTable) NegativeDiagonal() []int { return matrix.NegativeDiagonal(t.d) }

// String renders the table for debugging.
func (t *DistanceTable) String() string { return t.d.String() }
