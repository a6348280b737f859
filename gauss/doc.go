// SPDX-License-Identifier: MIT

// Package gauss implements Gauss–Jordan elimination over matrix.Dense with
// pluggable pivoting, and the computations derived from it.
//
// What is in here?
//
//   - Strategy: a pivot policy. Naive picks the first non-zero entry of a
//     column; MaxElement picks the largest magnitude (partial pivoting).
//   - DirectMotion: forward elimination to row echelon form, applied in
//     lockstep to a companion matrix B. Returns the number of row swaps.
//   - CounterMotion: backward pass from row echelon form to reduced row
//     echelon form (pivots normalised to 1, pivot columns cleared above).
//   - Determinant, Rank, Inverse built on the two passes.
//
// Tolerances:
//
//	ZeroTolerance (1e-9) decides whether an entry counts as zero during
//	elimination. matrix.EqualityTolerance (1e-5) is used for the singularity
//	check in Inverse. The two are deliberately different.
//
// Usage:
//
//	a := matrix.MustFromRows([][]float64{{2, 1}, {4, 3}})
//	det, _ := gauss.Determinant(a)
//	inv, _ := gauss.Inverse(a)
//	r := gauss.Rank(a)
//
// DirectMotion and CounterMotion mutate their arguments; the Get* variants
// work on copies and leave the inputs untouched.
//
// Complexity: both passes are O(r·c·(c+k)) for an r×c matrix with a k-column companion.
package gauss
