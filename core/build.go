package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/routenet/matrix"
)

// Build constructs a Model from ordered labels and label-addressed routes.
//
// Steps:
//  1. Validate labels: MinVertices ≤ len ≤ MaxVertices, non-empty, unique.
//  2. Allocate an N×N matrix with every cell at Inf and the diagonal at 0.
//  3. Resolve and validate each edge in input order; the first failure aborts.
//  4. Apply AddRoute, which keeps the minimum weight per ordered pair
//     (and mirrors it for undirected models).
//
// Errors: ErrInvalidSpec, ErrUnknownVertex, ErrSelfLoop, ErrInvalidWeight,
// ErrAllocation, each wrapped with the offending edge for context.
//
// Complexity: O(V² + E).
func Build(labels []string, directed bool, edges []EdgeSpec) (*Model, error) {
	if len(labels) < MinVertices {
		return nil, fmt.Errorf("core: Build: %d vertices, need at least %d: %w", len(labels), MinVertices, ErrInvalidSpec)
	}
	m, err := New(labels, directed)
	if err != nil {
		return nil, fmt.Errorf("core: Build: %w", err)
	}

	var (
		from, to int
		ok       bool
	)
	for k, e := range edges {
		if from, ok = m.index[e.From]; !ok {
			return nil, fmt.Errorf("core: Build: edge %d %q->%q: source: %w", k, e.From, e.To, ErrUnknownVertex)
		}
		if to, ok = m.index[e.To]; !ok {
			return nil, fmt.Errorf("core: Build: edge %d %q->%q: destination: %w", k, e.From, e.To, ErrUnknownVertex)
		}
		if from == to {
			return nil, fmt.Errorf("core: Build: edge %d %q->%q: %w", k, e.From, e.To, ErrSelfLoop)
		}
		// Build accepts strictly positive, finite weights only.
		if !(e.Weight > 0) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("core: Build: edge %d %q->%q weight=%v: %w", k, e.From, e.To, e.Weight, ErrInvalidWeight)
		}
		if err = m.AddRoute(from, to, e.Weight); err != nil {
			return nil, fmt.Errorf("core: Build: edge %d: %w", k, err)
		}
	}

	return m, nil
}

// newStorage allocates the weight matrix. MaxVertices keeps requests well
// under matrix.MaxElements, so a failure here means the allocator refused.
var newStorage = matrix.NewDistance

// New returns a model over labels with no routes yet (every off-diagonal
// cell Inf). Unlike Build it accepts a single vertex; use AddRoute to fill it.
//
// Complexity: O(V²).
func New(labels []string, directed bool) (*Model, error) {
	if len(labels) == 0 || len(labels) > MaxVertices {
		return nil, fmt.Errorf("core: New: %d vertices, allowed 1..%d: %w", len(labels), MaxVertices, ErrInvalidSpec)
	}

	index := make(map[string]int, len(labels))
	own := make([]string, len(labels))
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return nil, fmt.Errorf("core: New: vertex %d: empty label: %w", i, ErrInvalidSpec)
		}
		if prev, dup := index[l]; dup {
			return nil, fmt.Errorf("core: New: label %q at %d and %d: duplicate: %w", l, prev, i, ErrInvalidSpec)
		}
		index[l] = i
		own[i] = l
	}

	w, err := newStorage(len(labels))
	if err != nil {
		if errors.Is(err, matrix.ErrTooLarge) || errors.Is(err, matrix.ErrInvalidDimensions) {
			return nil, fmt.Errorf("core: New: %w: %w", ErrAllocation, err)
		}

		return nil, err
	}

	return &Model{directed: directed, labels: own, index: index, w: w}, nil
}
