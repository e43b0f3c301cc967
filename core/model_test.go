package core_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenet/core"
)

// square builds the four-airport model used across tests:
//
//	A-B (1), B-C (2), C-D (1), D-A (4), A-C (3).
func square(t *testing.T) *core.Model {
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

func TestBuild_Validation(t *testing.T) {
	tooMany := make([]string, core.MaxVertices+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("V%d", i)
	}

	cases := []struct {
		name   string
		labels []string
		edges  []core.EdgeSpec
		want   error
	}{
		{"one vertex", []string{"A"}, nil, core.ErrInvalidSpec},
		{"no vertices", nil, nil, core.ErrInvalidSpec},
		{"too many vertices", tooMany, nil, core.ErrInvalidSpec},
		{"duplicate label", []string{"A", "B", "A"}, nil, core.ErrInvalidSpec},
		{"empty label", []string{"A", " "}, nil, core.ErrInvalidSpec},
		{"unknown source", []string{"A", "B"}, []core.EdgeSpec{{From: "X", To: "B", Weight: 1}}, core.ErrUnknownVertex},
		{"unknown destination", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "X", Weight: 1}}, core.ErrUnknownVertex},
		{"self loop", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "A", Weight: 1}}, core.ErrSelfLoop},
		{"zero weight", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "B", Weight: 0}}, core.ErrInvalidWeight},
		{"negative weight", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "B", Weight: -2}}, core.ErrInvalidWeight},
		{"NaN weight", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "B", Weight: math.NaN()}}, core.ErrInvalidWeight},
		{"Inf weight", []string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "B", Weight: math.Inf(1)}}, core.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := core.Build(tc.labels, false, tc.edges)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_DefaultsAndSymmetry(t *testing.T) {
	m := square(t)

	assert.Equal(t, 4, m.N())
	assert.False(t, m.Directed())
	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Labels())

	for i := 0; i < m.N(); i++ {
		assert.Zero(t, m.Weight(i, i), "diagonal must be 0")
		for j := 0; j < m.N(); j++ {
			assert.Equal(t, m.Weight(i, j), m.Weight(j, i), "undirected model must be symmetric at (%d,%d)", i, j)
		}
	}
	// B-D has no route.
	assert.True(t, core.IsInf(m.Weight(1, 3)))
	assert.True(t, core.IsInf(m.Weight(9, 0)), "out of range reads as no route")
}

func TestBuild_DuplicateKeepsMinimum(t *testing.T) {
	m, err := core.Build([]string{"NYC", "LAX"}, true, []core.EdgeSpec{
		{From: "NYC", To: "LAX", Weight: 9},
		{From: "NYC", To: "LAX", Weight: 4},
		{From: "NYC", To: "LAX", Weight: 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 4.0, m.Weight(0, 1))
	assert.True(t, core.IsInf(m.Weight(1, 0)), "directed model must not mirror")
}

func TestBuild_UndirectedReverseDuplicate(t *testing.T) {
	m, err := core.Build([]string{"A", "B"}, false, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "A", Weight: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.Weight(0, 1))
	assert.Equal(t, 2.0, m.Weight(1, 0))
}

func TestModel_IndexAndLabel(t *testing.T) {
	m := square(t)

	i, err := m.Index("C")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = m.Index("ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	assert.Equal(t, "D", m.Label(3))
	assert.Equal(t, "", m.Label(-1))
	assert.Equal(t, "A-B", m.Name(core.Edge{From: 0, To: 1}))
}

func TestModel_UndirectedEdgesOrder(t *testing.T) {
	m := square(t)

	got := m.UndirectedEdges()
	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 3},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}
	assert.Equal(t, want, got)
	assert.Len(t, m.Edges(), 10, "undirected routes appear once per direction")
}

func TestModel_UndirectedEdgesOfDirectedModel(t *testing.T) {
	m, err := core.Build([]string{"A", "B", "C"}, true, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "A", Weight: 3},
		{From: "C", To: "B", Weight: 7},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 2, Weight: 7},
	}, m.UndirectedEdges())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 6, m.MaxEdges())
	assert.InDelta(t, 0.5, m.Density(), 1e-12)
}

func TestModel_Density(t *testing.T) {
	m := square(t)
	assert.InDelta(t, 5.0/6.0, m.Density(), 1e-12)

	labels := []string{"A", "B", "C", "D", "E"}
	var edges []core.EdgeSpec
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			edges = append(edges, core.EdgeSpec{From: labels[i], To: labels[j], Weight: float64(i + j)})
		}
	}
	complete, err := core.Build(labels, false, edges)
	require.NoError(t, err)
	assert.Equal(t, 1.0, complete.Density())

	empty, err := core.Build([]string{"A", "B"}, false, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Density())
}

func TestModel_AddRoute(t *testing.T) {
	m, err := core.New([]string{"A", "B"}, true)
	require.NoError(t, err)

	require.NoError(t, m.AddRoute(0, 1, -3))
	assert.Equal(t, -3.0, m.Weight(0, 1))
	assert.True(t, m.HasNegativeWeight())

	assert.ErrorIs(t, m.AddRoute(0, 0, 1), core.ErrSelfLoop)
	assert.ErrorIs(t, m.AddRoute(0, 2, 1), core.ErrUnknownVertex)
	assert.ErrorIs(t, m.AddRoute(0, 1, math.NaN()), core.ErrInvalidWeight)
}

func TestModel_MatrixIsACopy(t *testing.T) {
	m := square(t)

	mat := m.Matrix()
	require.NoError(t, mat.Set(0, 1, 100))

	assert.Equal(t, 1.0, m.Weight(0, 1))
}

func TestNew_SingleVertex(t *testing.T) {
	m, err := core.New([]string{"X"}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, m.N())
	assert.Zero(t, m.Density())
	assert.Empty(t, m.UndirectedEdges())
}
