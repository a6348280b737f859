// SPDX-License-Identifier: MIT
// Package matrix: deterministic generators.
//
// Purpose:
//   - Generate fills a matrix from an index formula (used for the generated
//     example systems).
//   - Random fills a matrix with reproducible uniform values.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.

package matrix

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// GeneratorFunc computes element (i, j) of a rows×cols matrix. val is the
// free parameter handed to Generate (e.g. a variant number).
type GeneratorFunc func(i, j, rows, cols int, val float64) float64

// Generate builds a rows×cols matrix whose element (i, j) is fn(i, j, rows, cols, val).
// Indices are zero-based. Evaluation order is row-major.
func Generate(rows, cols int, val float64, fn GeneratorFunc) (*Dense, error) {
	m, err := NewDense(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf("Generate", err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		r := m.row(i)
		for j = 0; j < cols; j++ {
			r[j] = fn(i, j, rows, cols, val)
		}
	}

	return m, nil
}

// NewRNG returns a deterministic *rand.Rand. seed==0 selects defaultRNGSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns a rows×cols matrix with values drawn uniformly from [lo, hi).
// A nil rng uses NewRNG(0). lo > hi returns ErrInvalidShape.
func Random(rng *rand.Rand, rows, cols int, lo, hi float64) (*Dense, error) {
	if lo > hi {
		return nil, fmt.Errorf("Random: bounds [%g, %g): %w", lo, hi, ErrInvalidShape)
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	span := hi - lo

	return Generate(rows, cols, 0, func(_, _, _, _ int, _ float64) float64 {
		return lo + span*rng.Float64()
	})
}
