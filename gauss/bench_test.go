package gauss_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/matrix"
)

func benchMatrix(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.Random(matrix.NewRNG(7), n, n, -10, 10)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkDirectMotion_64(b *testing.B) {
	src := benchMatrix(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := src.Clone()
		_, _ = gauss.DirectMotion(a, nil, gauss.MaxElement{})
	}
}

func BenchmarkInverse_64(b *testing.B) {
	a := benchMatrix(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gauss.Inverse(a)
	}
}
