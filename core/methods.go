package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routenet/matrix"
)

// N returns the vertex count.
func (m *Model) N() int { return len(m.labels) }

// Directed reports whether routes are one-way.
func (m *Model) Directed() bool { return m.directed }

// Labels returns a copy of the vertex labels in index order.
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// Label returns the label of vertex i, or "" when i is out of range.
func (m *Model) Label(i int) string {
	if i < 0 || i >= len(m.labels) {
		return ""
	}

	return m.labels[i]
}

// Index resolves a label to its vertex index.
func (m *Model) Index(label string) (int, error) {
	i, ok := m.index[label]
	if !ok {
		return -1, fmt.Errorf("core: %q: %w", label, ErrUnknownVertex)
	}

	return i, nil
}

// Weight returns the direct route cost i→j (Inf when absent, 0 when i == j).
// Out-of-range indices yield Inf.
// Complexity: O(1).
func (m *Model) Weight(i, j int) float64 {
	v, err := m.w.At(i, j)
	if err != nil {
		return Inf
	}

	return v
}

// AddRoute records a route i→j of cost w, keeping the cheaper of the existing
// and new values. Undirected models update (j,i) identically.
//
// Any finite weight is accepted here, negative included, so callers can
// model reweighted or adversarial networks; Build adds the positivity check.
//
// Errors: ErrUnknownVertex (bad index), ErrSelfLoop, ErrInvalidWeight (NaN/±Inf).
func (m *Model) AddRoute(i, j int, w float64) error {
	n := len(m.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("core: AddRoute(%d,%d): %w", i, j, ErrUnknownVertex)
	}
	if i == j {
		return fmt.Errorf("core: AddRoute(%d,%d): %w", i, j, ErrSelfLoop)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("core: AddRoute(%d,%d) weight=%v: %w", i, j, w, ErrInvalidWeight)
	}

	m.setMin(i, j, w)
	if !m.directed {
		m.setMin(j, i, w)
	}

	return nil
}

// setMin writes w at (i,j) when it improves the stored value. Indices are
// validated by the caller.
func (m *Model) setMin(i, j int, w float64) {
	if cur, _ := m.w.At(i, j); w < cur {
		_ = m.w.Set(i, j, w)
	}
}

// Edges lists every finite off-diagonal cell as a directed-sense edge,
// row-major (i ascending, then j ascending). Undirected models therefore
// report each route twice, once per direction.
// Complexity: O(V²).
func (m *Model) Edges() []Edge {
	n := len(m.labels)
	out := make([]Edge, 0, n)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if w = m.Weight(i, j); !IsInf(w) {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// UndirectedEdges returns one edge per unordered pair {i, j} with i < j,
// ordered by i then j, weighted min(w(i,j), w(j,i)); pairs with no route in
// either direction are omitted.
// Complexity: O(V²).
func (m *Model) UndirectedEdges() []Edge {
	n := len(m.labels)
	out := make([]Edge, 0, n)
	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = math.Min(m.Weight(i, j), m.Weight(j, i))
			if !IsInf(w) {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// EdgeCount returns the number of routes: finite unordered pairs for
// undirected models, finite ordered pairs for directed ones.
func (m *Model) EdgeCount() int {
	if m.directed {
		return len(m.Edges())
	}

	return len(m.UndirectedEdges())
}

// MaxEdges returns V(V-1) for directed models and V(V-1)/2 otherwise.
func (m *Model) MaxEdges() int {
	n := len(m.labels)
	if m.directed {
		return n * (n - 1)
	}

	return n * (n - 1) / 2
}

// Density returns EdgeCount()/MaxEdges(), a value in [0, 1].
// A single-vertex model has density 0.
func (m *Model) Density() float64 {
	limit := m.MaxEdges()
	if limit == 0 {
		return 0
	}

	return float64(m.EdgeCount()) / float64(limit)
}

// HasNegativeWeight reports whether any finite route cost is negative.
func (m *Model) HasNegativeWeight() bool {
	for _, e := range m.Edges() {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}

// Matrix returns a private copy of the adjacency matrix.
func (m *Model) Matrix() *matrix.Dense { return m.w.Clone() }

// Name renders an edge with vertex labels, e.g. "NYC-LAX".
func (m *Model) Name(e Edge) string {
	return m.Label(e.From) + "-" + m.Label(e.To)
}
