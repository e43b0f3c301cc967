// Package analysis is the selection and reporting layer of routenet.
//
// Given a route network it measures density, recommends an algorithm per
// category, runs BOTH candidates of each category, times them, applies a
// failure-driven fallback and returns an immutable *Report.
//
// Entry points:
//
//	Analyze(spec, opts...)       – build a core.Model from a GraphSpec, then analyse it.
//	AnalyzeModel(model, opts...) – analyse an already built model (e.g. one with
//	                               negative weights created through core.New).
//
// Heuristics (thresholds live in Config, see DefaultConfig):
//
//	MST:  density ≥ DenseThreshold (0.5)    → Prim, else Kruskal.
//	APSP: V ≤ FloydMaxVertices (10)         → Floyd–Warshall, else Johnson.
//
// Selection rule, per category:
//
//	selected = recommended, unless the recommended run failed and the
//	alternative succeeded; then selected = alternative, Fallback = true and a
//	note explains why. If both fail nothing is selected.
//
// Options:
//
//	WithMST(MSTPrim | MSTKruskal | MSTSkip)            – force or skip the MST category.
//	WithAPSP(APSPFloyd | APSPJohnson | APSPSkip)       – force or skip the APSP category.
//	WithSource(label)                                  – single-source query; APSP is skipped unless forced.
//	WithConfig(cfg)                                    – override heuristic thresholds.
//	WithLogger(*slog.Logger)                           – structured run logging (discarded by default).
//	WithRecorder(Recorder)                             – per-run timing/outcome sink (e.g. package metrics).
//
// Errors:
//
//	Construction errors from core (ErrInvalidSpec, ErrUnknownVertex, ErrSelfLoop,
//	ErrInvalidWeight, ErrAllocation) abort Analyze with no report. So do
//	ErrNilModel, ErrInvalidOption and an unknown WithSource label.
//	Algorithm failures (prim_kruskal.ErrDisconnected, shortestpath.ErrNegativeCycle)
//	never abort: they are stored on the corresponding run.
//
// Runs are sequential and synchronous. Each call allocates its own buffers
// and keeps nothing after it returns; the input model is never mutated.
package analysis
