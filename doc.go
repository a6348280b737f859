// SPDX-License-Identifier: MIT

// Package gaussjordan solves systems of linear algebraic equations on dense
// float64 matrices: Gauss-Jordan elimination with a choice of pivoting,
// successive over-relaxation, and the quantities that fall out of
// elimination (determinant, rank, inverse).
//
// What's inside:
//
//	matrix/     - Dense row-major container, arithmetic, validators,
//	              generators and text/JSON codecs
//	gauss/      - pivot strategies, direct and counter motion,
//	              Determinant / SignedDeterminant / Rank / Inverse
//	sle/        - Solve with none/unique/infinite classification, SOR,
//	              stability under perturbation, relaxation sweep, metrics
//	harness/    - Tester of reference systems, built-in catalogue, Run reports
//	  sqlitestore/ - SQLite-backed case catalogue
//	answers/    - answer sinks (local directory, S3) with zero-padded keys
//	cmd/slebench - CLI that runs every solver over the catalogue
//
// Quick start:
//
//	a := matrix.MustFromRows([][]float64{{2, 1}, {1, 3}})
//	x, err := sle.SolveMaxElement(a, matrix.Column(3, 5))
//	// x = [[0.8], [1.4]]
//
// Elimination treats |v| <= gauss.ZeroTolerance (1e-9) as zero; Equal and the
// singularity check of Inverse use the looser matrix.EqualityTolerance (1e-5).
package gaussjordan
