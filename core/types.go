package core

import (
	"errors"
	"math"

	"github.com/katalvlaran/routenet/matrix"
)

// Sentinel errors for model construction and lookup.
var (
	// ErrInvalidSpec indicates a malformed vertex list: too few or too many
	// labels, an empty label, or a duplicate label.
	ErrInvalidSpec = errors.New("core: invalid graph spec")

	// ErrUnknownVertex indicates a label or index that is not part of the model.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrSelfLoop indicates a route whose source and destination coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInvalidWeight indicates a non-positive weight passed to Build, or a
	// NaN/±Inf weight passed anywhere.
	ErrInvalidWeight = errors.New("core: invalid route weight")

	// ErrAllocation indicates that matrix storage could not be obtained.
	ErrAllocation = errors.New("core: storage allocation failed")
)

// Inf is the "no route" sentinel. It is +Inf so that comparisons against any
// finite distance behave naturally; code adding distances must still guard
// against Inf + (-Inf).
var Inf = math.Inf(1)

// MinVertices and MaxVertices bound the label count accepted by Build.
const (
	MinVertices = 2
	MaxVertices = 512
)

// IsInf reports whether w is the "no route" sentinel.
func IsInf(w float64) bool { return math.IsInf(w, 1) }

// Edge is a directed-sense connection between two vertex indices.
// For undirected enumerations From < To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the route cost.
	Weight float64
}

// EdgeSpec names one route by labels, the way callers describe input.
type EdgeSpec struct {
	From   string
	To     string
	Weight float64
}

// Model is a fixed-size route network over an adjacency matrix.
//
// labels and index never change after construction; w is written only by
// AddRoute while the model is being populated.
type Model struct {
	directed bool
	labels   []string
	index    map[string]int
	w        *matrix.Dense
}
