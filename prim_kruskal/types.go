package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/routenet/core"
)

// ErrNilModel indicates that a nil *core.Model was passed in.
var ErrNilModel = errors.New("prim_kruskal: model is nil")

// ErrDisconnected indicates that the network is not fully connected, so a
// spanning tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (dense O(V²) scan from vertex 0).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm named by the options.
//
//	– MethodKruskal: calls Kruskal(m).
//	– MethodPrim:    calls Prim(m).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(m *core.Model, opts ...Option) ([]core.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(m)
	case MethodPrim:
		return Prim(m)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
