package analysis

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors of the analysis layer.
var (
	// ErrNilModel indicates that AnalyzeModel was given a nil model.
	ErrNilModel = errors.New("analysis: model is nil")

	// ErrInvalidOption indicates an unknown algorithm name or an out-of-range threshold.
	ErrInvalidOption = errors.New("analysis: invalid option")
)

// Heuristic defaults.
const (
	// DefaultDenseThreshold is the density at and above which Prim is recommended.
	DefaultDenseThreshold = 0.5

	// DefaultFloydMaxVertices is the largest vertex count for which
	// Floyd–Warshall is recommended over Johnson.
	DefaultFloydMaxVertices = 10
)

// MSTAlgorithm names a minimum-spanning-tree algorithm choice.
type MSTAlgorithm string

// MST choices. MSTAuto lets the density heuristic decide.
const (
	MSTAuto    MSTAlgorithm = ""
	MSTPrim    MSTAlgorithm = "prim"
	MSTKruskal MSTAlgorithm = "kruskal"
	MSTSkip    MSTAlgorithm = "skip"
)

// APSPAlgorithm names an all-pairs shortest-path algorithm choice.
type APSPAlgorithm string

// APSP choices. APSPAuto lets the size heuristic decide.
const (
	APSPAuto    APSPAlgorithm = ""
	APSPFloyd   APSPAlgorithm = "floyd-warshall"
	APSPJohnson APSPAlgorithm = "johnson"
	APSPSkip    APSPAlgorithm = "skip"
)

// Single-source algorithm names reported in SSSPResult.Algorithm.
const (
	SSSPDijkstra    = "dijkstra"
	SSSPBellmanFord = "bellman-ford"
)

// ParseMST maps a user-facing name ("auto", "prim", "kruskal", "skip") to an MSTAlgorithm.
func ParseMST(s string) (MSTAlgorithm, error) {
	switch s {
	case "", "auto":
		return MSTAuto, nil
	case string(MSTPrim), string(MSTKruskal), string(MSTSkip):
		return MSTAlgorithm(s), nil
	default:
		return "", fmt.Errorf("analysis: MST algorithm %q: %w", s, ErrInvalidOption)
	}
}

// ParseAPSP maps a user-facing name ("auto", "floyd", "floyd-warshall",
// "johnson", "skip") to an APSPAlgorithm.
func ParseAPSP(s string) (APSPAlgorithm, error) {
	switch s {
	case "", "auto":
		return APSPAuto, nil
	case "floyd", string(APSPFloyd):
		return APSPFloyd, nil
	case string(APSPJohnson), string(APSPSkip):
		return APSPAlgorithm(s), nil
	default:
		return "", fmt.Errorf("analysis: APSP algorithm %q: %w", s, ErrInvalidOption)
	}
}

// Config holds the tunable heuristic thresholds.
type Config struct {
	// DenseThreshold in [0, 1]: density ≥ DenseThreshold recommends Prim.
	DenseThreshold float64

	// FloydMaxVertices ≥ 0: V ≤ FloydMaxVertices recommends Floyd–Warshall.
	FloydMaxVertices int
}

// DefaultConfig returns the stock thresholds (0.5 density, 10 vertices).
func DefaultConfig() Config {
	return Config{
		DenseThreshold:   DefaultDenseThreshold,
		FloydMaxVertices: DefaultFloydMaxVertices,
	}
}

// Validate reports ErrInvalidOption for out-of-range thresholds.
func (c Config) Validate() error {
	if !(c.DenseThreshold >= 0 && c.DenseThreshold <= 1) {
		return fmt.Errorf("analysis: DenseThreshold %v outside [0,1]: %w", c.DenseThreshold, ErrInvalidOption)
	}
	if c.FloydMaxVertices < 0 {
		return fmt.Errorf("analysis: FloydMaxVertices %d < 0: %w", c.FloydMaxVertices, ErrInvalidOption)
	}

	return nil
}

// options is the resolved configuration of one analysis call.
type options struct {
	cfg      Config
	mst      MSTAlgorithm
	apsp     APSPAlgorithm
	source   string
	logger   *slog.Logger
	recorder Recorder
}

// Option configures an analysis call.
type Option func(*options)

// WithConfig replaces the heuristic thresholds.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithMST forces (MSTPrim, MSTKruskal), skips (MSTSkip) or restores the
// heuristic (MSTAuto) for the MST category.
func WithMST(a MSTAlgorithm) Option {
	return func(o *options) { o.mst = a }
}

// WithAPSP forces (APSPFloyd, APSPJohnson), skips (APSPSkip) or restores the
// heuristic (APSPAuto) for the all-pairs category.
func WithAPSP(a APSPAlgorithm) Option {
	return func(o *options) { o.apsp = a }
}

// WithSource turns the call into a single-source query from label.
// All-pairs analysis is then skipped unless WithAPSP forces an algorithm.
func WithSource(label string) Option {
	return func(o *options) { o.source = label }
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the sink that observes every run. nil disables recording.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		cfg:      DefaultConfig(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}

	if err := o.cfg.Validate(); err != nil {
		return o, err
	}
	switch o.mst {
	case MSTAuto, MSTPrim, MSTKruskal, MSTSkip:
	default:
		return o, fmt.Errorf("analysis: MST algorithm %q: %w", o.mst, ErrInvalidOption)
	}
	switch o.apsp {
	case APSPAuto, APSPFloyd, APSPJohnson, APSPSkip:
	default:
		return o, fmt.Errorf("analysis: APSP algorithm %q: %w", o.apsp, ErrInvalidOption)
	}

	return o, nil
}
