package analysis

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/prim_kruskal"
	"github.com/katalvlaran/routenet/shortestpath"
)

// Analyze builds a model from spec and analyses it. Construction errors are
// returned wrapped and no report is produced.
func Analyze(spec GraphSpec, opts ...Option) (*Report, error) {
	m, err := core.Build(spec.Labels, spec.Directed, spec.Edges)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	return AnalyzeModel(m, opts...)
}

// AnalyzeModel analyses an already built model.
//
// Steps:
//  1. Resolve options and the optional source label.
//  2. Measure density and size.
//  3. MST category: recommend, run Prim and Kruskal, select.
//  4. APSP category (unless skipped): recommend, run Floyd–Warshall and Johnson, select.
//  5. Single-source query when WithSource was given.
//
// m is only read.
func AnalyzeModel(m *core.Model, opts ...Option) (*Report, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Source, if any.
	src := -1
	if o.source != "" {
		if src, err = m.Index(o.source); err != nil {
			return nil, fmt.Errorf("analysis: source: %w", err)
		}
	}

	// 2) Shape of the network.
	r := &Report{
		ID:        uuid.New(),
		Labels:    m.Labels(),
		Directed:  m.Directed(),
		EdgeCount: m.EdgeCount(),
		MaxEdges:  m.MaxEdges(),
		Density:   m.Density(),
	}
	a := &analyzer{
		m:   m,
		o:   o,
		r:   r,
		log: o.logger.With(slog.String("report", r.ID.String())),
	}
	a.log.Info("analysis started",
		slog.Int("vertices", m.N()),
		slog.Int("edges", r.EdgeCount),
		slog.Float64("density", r.Density),
		slog.Bool("directed", r.Directed))
	r.notef("density %.3f (%d of %d possible routes)", r.Density, r.EdgeCount, r.MaxEdges)

	// 3) MST.
	if o.mst == MSTSkip {
		r.notef("MST: skipped by caller")
	} else {
		r.MST = a.runMST()
	}

	// 4) APSP.
	switch {
	case o.apsp == APSPSkip:
		r.notef("APSP: skipped by caller")
	case src >= 0 && o.apsp == APSPAuto:
		r.notef("APSP: skipped for single-source query from %s", o.source)
	default:
		r.APSP = a.runAPSP()
	}

	// 5) SSSP.
	if src >= 0 {
		r.SSSP = a.runSSSP(src)
	}

	a.log.Info("analysis finished", slog.Int("notes", len(r.Notes)))

	return r, nil
}

// analyzer carries the state of one AnalyzeModel call.
type analyzer struct {
	m   *core.Model
	o   options
	r   *Report
	log *slog.Logger
}

// recommendMST applies the density heuristic.
func recommendMST(density float64, cfg Config) MSTAlgorithm {
	if density >= cfg.DenseThreshold {
		return MSTPrim
	}

	return MSTKruskal
}

// recommendAPSP applies the size heuristic.
func recommendAPSP(n int, cfg Config) APSPAlgorithm {
	if n <= cfg.FloydMaxVertices {
		return APSPFloyd
	}

	return APSPJohnson
}

func (a *analyzer) runMST() *MSTSection {
	s := &MSTSection{}
	if a.o.mst == MSTAuto {
		s.Recommended = recommendMST(a.r.Density, a.o.cfg)
		if s.Recommended == MSTPrim {
			a.r.notef("MST: density %.3f >= %.2f, recommending %s", a.r.Density, a.o.cfg.DenseThreshold, MSTPrim)
		} else {
			a.r.notef("MST: density %.3f < %.2f, recommending %s", a.r.Density, a.o.cfg.DenseThreshold, MSTKruskal)
		}
	} else {
		s.Recommended, s.Forced = a.o.mst, true
		a.r.notef("MST: %s forced by caller", a.o.mst)
	}

	for _, alg := range []MSTAlgorithm{MSTPrim, MSTKruskal} {
		start := time.Now()
		edges, total, err := prim_kruskal.Compute(a.m, prim_kruskal.WithMethod(string(alg)))
		run := MSTRun{Algorithm: alg, Edges: edges, Total: total, Elapsed: time.Since(start), Err: err}
		a.observe(CategoryMST, string(alg), run.Elapsed, err)
		s.Runs = append(s.Runs, run)
	}

	alt := MSTKruskal
	if s.Recommended == MSTKruskal {
		alt = MSTPrim
	}
	rec, other := s.Run(s.Recommended), s.Run(alt)
	switch {
	case rec.Err == nil:
		s.Selected = rec.Algorithm
	case other.Err == nil:
		s.Selected, s.Fallback = alt, true
		a.fallback(CategoryMST, string(rec.Algorithm), string(alt), rec.Err)
	default:
		a.r.notef("MST: no spanning tree: %s: %v; %s: %v", MSTPrim, s.Runs[0].Err, MSTKruskal, s.Runs[1].Err)
	}

	return s
}

func (a *analyzer) runAPSP() *APSPSection {
	n := a.m.N()
	s := &APSPSection{}
	if a.o.apsp == APSPAuto {
		s.Recommended = recommendAPSP(n, a.o.cfg)
		if s.Recommended == APSPFloyd {
			a.r.notef("APSP: %d vertices <= %d, recommending %s", n, a.o.cfg.FloydMaxVertices, APSPFloyd)
		} else {
			a.r.notef("APSP: %d vertices > %d, recommending %s", n, a.o.cfg.FloydMaxVertices, APSPJohnson)
		}
	} else {
		s.Recommended, s.Forced = a.o.apsp, true
		a.r.notef("APSP: %s forced by caller", a.o.apsp)
	}

	algos := []struct {
		alg APSPAlgorithm
		fn  func(*core.Model) (*shortestpath.DistanceTable, error)
	}{
		{APSPFloyd, shortestpath.FloydWarshall},
		{APSPJohnson, shortestpath.Johnson},
	}
	for _, c := range algos {
		start := time.Now()
		tbl, err := c.fn(a.m)
		run := APSPRun{Algorithm: c.alg, Table: tbl, Elapsed: time.Since(start), Err: err}
		a.observe(CategoryAPSP, string(c.alg), run.Elapsed, err)
		s.Runs = append(s.Runs, run)
	}

	// Floyd–Warshall has no cycle check of its own.
	if fw := s.Run(APSPFloyd); fw.Err == nil {
		if neg := fw.Table.NegativeDiagonal(); len(neg) > 0 {
			names := make([]string, len(neg))
			for i, v := range neg {
				names[i] = a.r.Labels[v]
			}
			a.r.notef("APSP: %s diagonal is negative at %s; the network has a negative cycle and those distances are not meaningful",
				APSPFloyd, strings.Join(names, ", "))
			a.log.Warn("negative cycle on floyd-warshall diagonal", slog.Any("vertices", names))
		}
	}

	alt := APSPJohnson
	if s.Recommended == APSPJohnson {
		alt = APSPFloyd
	}
	rec, other := s.Run(s.Recommended), s.Run(alt)
	switch {
	case rec.Err == nil:
		s.Selected = rec.Algorithm
	case other.Err == nil:
		s.Selected, s.Fallback = alt, true
		a.fallback(CategoryAPSP, string(rec.Algorithm), string(alt), rec.Err)
	default:
		a.r.notef("APSP: no distance table: %s: %v; %s: %v", APSPFloyd, s.Runs[0].Err, APSPJohnson, s.Runs[1].Err)
	}

	return s
}

func (a *analyzer) runSSSP(src int) *SSSPResult {
	res := &SSSPResult{Source: a.m.Label(src), Algorithm: SSSPDijkstra}
	if a.m.HasNegativeWeight() {
		res.Algorithm = SSSPBellmanFord
		a.r.notef("SSSP: negative weights present, using %s from %s", SSSPBellmanFord, res.Source)
	}

	start := time.Now()
	if res.Algorithm == SSSPDijkstra {
		res.Distances, res.Err = shortestpath.Dijkstra(a.m, src)
	} else {
		res.Distances, res.Err = shortestpath.BellmanFord(a.m, src)
	}
	res.Elapsed = time.Since(start)
	a.observe(CategorySSSP, res.Algorithm, res.Elapsed, res.Err)
	if res.Err != nil {
		a.r.notef("SSSP: %s from %s failed: %v", res.Algorithm, res.Source, res.Err)
	}

	return res
}

func (a *analyzer) observe(category, algorithm string, elapsed time.Duration, err error) {
	a.o.recorder.ObserveRun(category, algorithm, elapsed, err)
	attrs := []any{
		slog.String("category", category),
		slog.String("algorithm", algorithm),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	a.log.Debug("algorithm run", attrs...)
}

func (a *analyzer) fallback(category, failed, used string, cause error) {
	a.o.recorder.ObserveFallback(category)
	a.r.notef("%s: %s failed (%v), falling back to %s", strings.ToUpper(category), failed, cause, used)
	a.log.Warn("algorithm fallback",
		slog.String("category", category),
		slog.String("failed", failed),
		slog.String("selected", used),
		slog.String("cause", cause.Error()))
}
