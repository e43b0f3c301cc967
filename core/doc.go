// Package core defines the route-network Model: a fixed set of airports
// (vertices) and the cheapest known direct route between every ordered pair,
// stored as a dense adjacency matrix.
//
// A Model is the single input shared by the MST engine (package prim_kruskal),
// the shortest-path engine (package shortestpath) and the selection layer
// (package analysis). It is populated once, before any algorithm runs, and
// algorithms only read it.
//
// Representation:
//
//   - Vertices are indexed 0..N()-1 in the order their labels were given.
//   - Weight(i, j) is the direct route cost i→j, or Inf when there is none.
//   - Weight(i, i) is always 0.
//   - Undirected models are symmetric: AddRoute writes both (i,j) and (j,i).
//
// Duplicate-route policy:
//
//	When several routes target the same ordered pair, the cheapest one is
//	kept and the others are dropped silently. Demo datasets list alternate
//	routes on purpose, so this is a documented policy and not an error.
//
// Construction:
//
//	Build(labels, directed, edges)  – validated entry point (positive weights only)
//	New(labels, directed)           – empty model; fill with AddRoute (any finite weight)
//
// Errors (sentinel, match with errors.Is):
//
//	ErrInvalidSpec    – fewer than 2 labels, more than MaxVertices, empty or duplicate label.
//	ErrUnknownVertex  – an edge or query names a label the model does not know.
//	ErrSelfLoop       – an edge starts and ends at the same vertex.
//	ErrInvalidWeight  – weight ≤ 0 (Build), NaN or ±Inf (always).
//	ErrAllocation     – matrix storage could not be obtained.
//
// Edge enumeration:
//
//	Edges()           – directed-sense list of every finite off-diagonal cell, row-major.
//	UndirectedEdges() – one edge per unordered pair (i<j), weight min(w(i,j), w(j,i)),
//	                    ordered by i then j; the working list of Kruskal.
//
// A Model is not safe for concurrent mutation; analysis never mutates it.
package core
