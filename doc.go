// Package routenet is an analysis engine for airline route networks.
//
// A network is a set of airports (vertices) joined by weighted routes
// (edges), one-way or two-way. routenet measures its density, recommends an
// algorithm per question, runs every candidate, times them and explains the
// selection:
//
//	Minimum spanning tree    – Prim (dense) or Kruskal (sparse).
//	All-pairs shortest path  – Floyd–Warshall (small) or Johnson (large).
//	Single source            – Dijkstra, or Bellman–Ford when weights go negative.
//
// Packages, leaf to root:
//
//	matrix/        – dense float64 matrix and the in-place Floyd–Warshall kernel
//	core/          – Model: labels, adjacency matrix, validation, density
//	prim_kruskal/  – MST engine and its union-find
//	shortestpath/  – Dijkstra, Bellman–Ford, Floyd–Warshall, Johnson, DistanceTable
//	analysis/      – heuristics, fallback and the Report
//	metrics/       – Prometheus Recorder for analysis runs
//	dataset/       – YAML catalog, file loader, random generator
//	cmd/routenet/  – command-line front end
//
// Quick start:
//
//	spec := analysis.GraphSpec{
//		Labels: []string{"A", "B", "C", "D"},
//		Edges: []core.EdgeSpec{
//			{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2},
//			{From: "C", To: "D", Weight: 1}, {From: "D", To: "A", Weight: 4},
//			{From: "A", To: "C", Weight: 3},
//		},
//	}
//	r, err := analysis.Analyze(spec)
//	// r.MST.Selected == "prim", r.MST.Result().Total == 4
//
// Unreachable pairs carry core.Inf (+Inf). Routes never reach the algorithms
// with Inf weights, so no arithmetic on Inf ever happens.
package routenet
