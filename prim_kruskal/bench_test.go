package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/routenet/internal/graphtest"
	"github.com/katalvlaran/routenet/prim_kruskal"
)

// BenchmarkKruskal_Sparse measures Kruskal on a 300-vertex network at density ~2%.
func BenchmarkKruskal_Sparse(b *testing.B) {
	m, err := graphtest.RandomModel(300, 0.02, false, true, 42)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(m)
	}
}

// BenchmarkPrim_Dense measures Prim on a 300-vertex network at density ~70%.
func BenchmarkPrim_Dense(b *testing.B) {
	m, err := graphtest.RandomModel(300, 0.7, false, true, 42)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(m)
	}
}
