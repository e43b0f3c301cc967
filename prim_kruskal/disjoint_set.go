package prim_kruskal

// disjointSet is a union-find forest over [0, n) with path compression and
// union by rank. It is internal to Kruskal.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet makes n singleton sets.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the representative of x. Iterative, with path halving:
// every visited node is re-pointed at its grandparent.
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}
