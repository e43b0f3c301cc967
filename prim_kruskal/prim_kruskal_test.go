package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/internal/graphtest"
	"github.com/katalvlaran/routenet/prim_kruskal"
)

const tolerance = 1e-9

// buildSquare constructs the undirected network
//
//	A-B (1), B-C (2), C-D (1), D-A (4), A-C (3)
//
// whose unique MST is {A-B, B-C, C-D} with total weight 4.
func buildSquare(t *testing.T) *core.Model {
	t.Helper()
	m, err := core.Build([]string{"A", "B", "C", "D"}, false, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "A", Weight: 4},
		{From: "A", To: "C", Weight: 3},
	})
	require.NoError(t, err)

	return m
}

// edgeNames renders tree edges as "X-Y" with the endpoints sorted.
func edgeNames(m *core.Model, edges []core.Edge) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := m.Label(e.From), m.Label(e.To)
		if u > v {
			u, v = v, u
		}
		names[u+"-"+v] = true
	}

	return names
}

func TestNilModel(t *testing.T) {
	_, _, errP := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, errP, prim_kruskal.ErrNilModel)
	_, _, errK := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, errK, prim_kruskal.ErrNilModel)
}

func TestSquare_BothAlgorithms(t *testing.T) {
	m := buildSquare(t)

	for name, run := range map[string]func(*core.Model) ([]core.Edge, float64, error){
		"prim":    prim_kruskal.Prim,
		"kruskal": prim_kruskal.Kruskal,
	} {
		t.Run(name, func(t *testing.T) {
			mst, total, err := run(m)
			require.NoError(t, err)
			assert.Equal(t, 4.0, total)
			require.Len(t, mst, 3)

			names := edgeNames(m, mst)
			assert.True(t, names["A-B"], "edge A-B must be in MST")
			assert.True(t, names["B-C"], "edge B-C must be in MST")
			assert.True(t, names["C-D"], "edge C-D must be in MST")
		})
	}
}

func TestPrim_EmitsInJoinOrder(t *testing.T) {
	m := buildSquare(t)

	mst, _, err := prim_kruskal.Prim(m)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}, mst)
}

func TestKruskal_StableTies(t *testing.T) {
	// Triangle with all weights equal: stable sort keeps (0,1), (0,2), (1,2).
	m, err := core.Build([]string{"A", "B", "C"}, false, []core.EdgeSpec{
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	})
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}}, mst)
}

func TestPrim_TieBreaksOnLowestIndex(t *testing.T) {
	// From A both B and C cost 1; B (index 1) joins first.
	m, err := core.Build([]string{"A", "B", "C"}, false, []core.EdgeSpec{
		{From: "A", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	})
	require.NoError(t, err)

	mst, _, err := prim_kruskal.Prim(m)
	require.NoError(t, err)
	require.Len(t, mst, 2)
	assert.Equal(t, 1, mst[0].To)
	assert.Equal(t, 2, mst[1].To)
}

func TestTwoIsolatedVertices(t *testing.T) {
	m, err := core.Build([]string{"A", "B"}, false, nil)
	require.NoError(t, err)

	_, _, errK := prim_kruskal.Kruskal(m)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)

	_, _, errP := prim_kruskal.Prim(m)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

func TestDisconnectedWithEnoughEdges(t *testing.T) {
	// Four edges (≥ V−1 = 4 for V=5) but E is cut off from the rest.
	m, err := core.Build([]string{"A", "B", "C", "D", "E"}, false, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "A", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	require.NoError(t, err)

	mst, total, errK := prim_kruskal.Kruskal(m)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
	assert.Nil(t, mst)
	assert.Zero(t, total)

	_, _, errP := prim_kruskal.Prim(m)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

func TestSingleVertexModel(t *testing.T) {
	m, err := core.New([]string{"X"}, false)
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(m)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(m)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

func TestDirectedModelReadAsUndirected(t *testing.T) {
	// A→B (5), B→A (2), C→B (3): undirected view is A-B (2), B-C (3).
	m, err := core.Build([]string{"A", "B", "C"}, true, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "A", Weight: 2},
		{From: "C", To: "B", Weight: 3},
	})
	require.NoError(t, err)

	_, totalP, errP := prim_kruskal.Prim(m)
	require.NoError(t, errP)
	_, totalK, errK := prim_kruskal.Kruskal(m)
	require.NoError(t, errK)

	assert.Equal(t, 5.0, totalP)
	assert.Equal(t, 5.0, totalK)
}

func TestCompute_Dispatch(t *testing.T) {
	m := buildSquare(t)

	_, total, err := prim_kruskal.Compute(m)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	_, total, err = prim_kruskal.Compute(m, prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	_, _, err = prim_kruskal.Compute(m, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestComparison_RandomNetworks checks Prim and Kruskal against each other
// and against gonum's Kruskal on seeded random connected networks.
func TestComparison_RandomNetworks(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 5 + int(seed)%25
		p := 0.1 + float64(seed%5)*0.2
		m, err := graphtest.RandomModel(n, p, seed%3 == 0, true, seed)
		require.NoError(t, err)

		mstK, totalK, errK := prim_kruskal.Kruskal(m)
		require.NoError(t, errK, "seed %d", seed)
		assert.Len(t, mstK, n-1)

		mstP, totalP, errP := prim_kruskal.Prim(m)
		require.NoError(t, errP, "seed %d", seed)
		assert.Len(t, mstP, n-1)

		assert.InDelta(t, totalK, totalP, tolerance, "seed %d", seed)
		assert.InDelta(t, graphtest.GonumMSTWeight(m), totalK, tolerance, "seed %d", seed)
	}
}
