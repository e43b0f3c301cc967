// Package dataset supplies route networks to the analysis layer.
//
// Sources:
//
//	Names / Lookup / All  – the built-in catalog (catalog.yaml, embedded).
//	Parse / LoadFile      – a user YAML document describing one network.
//	RandomSparse          – a seeded Erdős–Rényi-style generator.
//
// Every source yields a Network, whose Spec method produces the
// analysis.GraphSpec consumed by analysis.Analyze.
//
// YAML shape of one network:
//
//	name: airline
//	directed: false
//	vertices: [NYC, LAX, CHI]
//	routes:
//	  - {from: NYC, to: CHI, weight: 7.9}
//
// Unknown keys are rejected. Route validation (unknown vertices, self-loops,
// non-positive weights) happens later in core.Build.
package dataset
