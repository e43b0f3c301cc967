package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/routenet/core"
)

var (
	// ErrTooFewVertices indicates RandomSparse was asked for fewer than core.MinVertices vertices.
	ErrTooFewVertices = errors.New("dataset: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("dataset: probability must be in [0,1]")
)

// Default weight range of generated routes.
const (
	DefaultMinWeight = 1.0
	DefaultMaxWeight = 25.0
)

type randomConfig struct {
	directed  bool
	connected bool
	minW      float64
	maxW      float64
}

// RandomOption configures RandomSparse.
type RandomOption func(*randomConfig)

// WithDirected makes RandomSparse sample ordered pairs (one-way routes).
func WithDirected() RandomOption {
	return func(c *randomConfig) { c.directed = true }
}

// WithConnected lays a backbone chain V0–V1–…–V(n-1) before sampling, so the
// result has a single component (both directions when directed).
func WithConnected() RandomOption {
	return func(c *randomConfig) { c.connected = true }
}

// WithWeightRange samples route weights uniformly in [lo, hi], rounded to
// one decimal. Panics unless 0 < lo ≤ hi < Inf.
func WithWeightRange(lo, hi float64) RandomOption {
	if !(lo > 0) || hi < lo || math.IsInf(hi, 0) {
		panic(fmt.Sprintf("WithWeightRange: require 0 < lo ≤ hi < Inf, got lo=%g, hi=%g", lo, hi))
	}

	return func(c *randomConfig) {
		c.minW, c.maxW = lo, hi
	}
}

// RandomSparse samples an n-vertex network where every admissible pair gets
// a route independently with probability p.
//
// Determinism: vertex labels are spreadsheet-style columns ("A".."Z","AA",…);
// trials run i ascending then j ascending (j > i when undirected), so a fixed
// seed and option set always yields the same network.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64, seed int64, opts ...RandomOption) (Network, error) {
	if n < core.MinVertices {
		return Network{}, fmt.Errorf("dataset: RandomSparse: n=%d < %d: %w", n, core.MinVertices, ErrTooFewVertices)
	}
	if n > core.MaxVertices {
		return Network{}, fmt.Errorf("dataset: RandomSparse: n=%d > %d: %w", n, core.MaxVertices, core.ErrInvalidSpec)
	}
	if !(p >= 0 && p <= 1) {
		return Network{}, fmt.Errorf("dataset: RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}

	cfg := randomConfig{minW: DefaultMinWeight, maxW: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(seed))
	weight := func() float64 {
		w := cfg.minW + rng.Float64()*(cfg.maxW-cfg.minW)
		w = math.Round(w*10) / 10

		return math.Max(w, cfg.minW)
	}

	net := Network{
		Name:     fmt.Sprintf("random-%d-%g-%d", n, p, seed),
		Directed: cfg.directed,
		Vertices: make([]string, n),
	}
	for i := range net.Vertices {
		net.Vertices[i] = columnLabel(i)
	}

	// 1) Backbone.
	chained := make(map[[2]int]bool)
	if cfg.connected {
		for i := 1; i < n; i++ {
			net.Routes = append(net.Routes, Route{From: net.Vertices[i-1], To: net.Vertices[i], Weight: weight()})
			chained[[2]int{i - 1, i}] = true
			if cfg.directed {
				net.Routes = append(net.Routes, Route{From: net.Vertices[i], To: net.Vertices[i-1], Weight: weight()})
				chained[[2]int{i, i - 1}] = true
			}
		}
	}

	// 2) Bernoulli trials in a fixed order.
	var i, j, start int
	for i = 0; i < n; i++ {
		start = i + 1
		if cfg.directed {
			start = 0
		}
		for j = start; j < n; j++ {
			if i == j || chained[[2]int{i, j}] {
				continue
			}
			if rng.Float64() < p {
				net.Routes = append(net.Routes, Route{From: net.Vertices[i], To: net.Vertices[j], Weight: weight()})
			}
		}
	}

	return net, nil
}

// columnLabel returns the spreadsheet column name of idx: 0→"A", 25→"Z", 26→"AA".
func columnLabel(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}
