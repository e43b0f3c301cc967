package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/shortestpath"
)

// GraphSpec is the plain description of a route network that Analyze builds
// a core.Model from. Input adapters (package dataset, the CLI) produce it.
type GraphSpec struct {
	Labels   []string
	Directed bool
	Edges    []core.EdgeSpec
}

// MSTRun is the outcome of one MST algorithm.
type MSTRun struct {
	Algorithm MSTAlgorithm
	Edges     []core.Edge // in join order; nil on failure
	Total     float64
	Elapsed   time.Duration
	Err       error // nil, or wraps prim_kruskal.ErrDisconnected
}

// MSTSection groups both MST runs and the selection made between them.
type MSTSection struct {
	Recommended MSTAlgorithm
	Selected    MSTAlgorithm // MSTAuto ("") when both runs failed
	Forced      bool
	Fallback    bool
	Runs        []MSTRun // Prim first, then Kruskal
}

// Run returns the run of algorithm a, or nil.
func (s *MSTSection) Run(a MSTAlgorithm) *MSTRun {
	for i := range s.Runs {
		if s.Runs[i].Algorithm == a {
			return &s.Runs[i]
		}
	}

	return nil
}

// Result returns the selected run, or nil when nothing was selected.
func (s *MSTSection) Result() *MSTRun {
	if s.Selected == MSTAuto {
		return nil
	}

	return s.Run(s.Selected)
}

// APSPRun is the outcome of one all-pairs algorithm.
type APSPRun struct {
	Algorithm APSPAlgorithm
	Table     *shortestpath.DistanceTable // nil on failure
	Elapsed   time.Duration
	Err       error // nil, or wraps shortestpath.ErrNegativeCycle
}

// APSPSection groups both all-pairs runs and the selection made between them.
type APSPSection struct {
	Recommended APSPAlgorithm
	Selected    APSPAlgorithm // APSPAuto ("") when both runs failed
	Forced      bool
	Fallback    bool
	Runs        []APSPRun // Floyd–Warshall first, then Johnson
}

// Run returns the run of algorithm a, or nil.
func (s *APSPSection) Run(a APSPAlgorithm) *APSPRun {
	for i := range s.Runs {
		if s.Runs[i].Algorithm == a {
			return &s.Runs[i]
		}
	}

	return nil
}

// Result returns the selected run, or nil when nothing was selected.
func (s *APSPSection) Result() *APSPRun {
	if s.Selected == APSPAuto {
		return nil
	}

	return s.Run(s.Selected)
}

// SSSPResult is the outcome of a single-source query (WithSource).
type SSSPResult struct {
	Source    string
	Algorithm string    // SSSPDijkstra or SSSPBellmanFord
	Distances []float64 // indexed like Report.Labels; core.Inf when unreachable
	Elapsed   time.Duration
	Err       error
}

// Report is the result of one analysis call. It is built once and owns all
// of its slices and tables; callers treat it as read-only.
type Report struct {
	ID        uuid.UUID
	Labels    []string
	Directed  bool
	EdgeCount int
	MaxEdges  int
	Density   float64

	MST  *MSTSection  // nil when skipped
	APSP *APSPSection // nil when skipped
	SSSP *SSSPResult  // nil unless WithSource was given

	Notes []string
}

// Route renders e as "FROM-TO" using the report's labels.
func (r *Report) Route(e core.Edge) string {
	return r.Labels[e.From] + "-" + r.Labels[e.To]
}

func (r *Report) notef(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}
