package metrics_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routenet/analysis"
	"github.com/katalvlaran/routenet/core"
	"github.com/katalvlaran/routenet/metrics"
	"github.com/katalvlaran/routenet/prim_kruskal"
	"github.com/katalvlaran/routenet/shortestpath"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeDisconnected,
		metrics.Outcome(fmt.Errorf("wrapped: %w", prim_kruskal.ErrDisconnected)))
	assert.Equal(t, metrics.OutcomeNegativeCycle, metrics.Outcome(shortestpath.ErrNegativeCycle))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("boom")))
}

func TestRecorder_ObservesRunsAndFallbacks(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.ObserveRun(analysis.CategoryMST, "prim", 3*time.Millisecond, nil)
	rec.ObserveRun(analysis.CategoryMST, "kruskal", time.Millisecond, prim_kruskal.ErrDisconnected)
	rec.ObserveFallback(analysis.CategoryAPSP)
	rec.ObserveFallback(analysis.CategoryAPSP)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "routenet_algorithm_duration_seconds"))

	expected := `
# HELP routenet_fallbacks_total Times a category selected its alternative because the recommended algorithm failed.
# TYPE routenet_fallbacks_total counter
routenet_fallbacks_total{category="apsp"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "routenet_fallbacks_total"))
}

func TestRecorder_RegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.New(reg)
	require.NoError(t, err)
	second, err := metrics.New(reg)
	require.NoError(t, err)

	first.ObserveFallback(analysis.CategoryMST)
	second.ObserveFallback(analysis.CategoryMST)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, 2.0, families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestRecorder_WithAnalysis(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	m, err := core.New([]string{"A", "B", "C"}, true)
	require.NoError(t, err)
	require.NoError(t, m.AddRoute(0, 1, 1))
	require.NoError(t, m.AddRoute(1, 2, -2))
	require.NoError(t, m.AddRoute(2, 1, 1))

	_, err = analysis.AnalyzeModel(m,
		analysis.WithConfig(analysis.Config{DenseThreshold: 0.5, FloydMaxVertices: 0}),
		analysis.WithRecorder(rec))
	require.NoError(t, err)

	// prim, kruskal, floyd-warshall, johnson
	assert.Equal(t, 4, testutil.CollectAndCount(reg, "routenet_algorithm_duration_seconds"))

	expected := `
# HELP routenet_fallbacks_total Times a category selected its alternative because the recommended algorithm failed.
# TYPE routenet_fallbacks_total counter
routenet_fallbacks_total{category="apsp"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "routenet_fallbacks_total"))
}
