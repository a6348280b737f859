// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric container used by the elimination
// engine and the SLE solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table with bounds-checked element and row
//     access, in-place Resize/Transpose and row swaps.
//   - Whole-matrix arithmetic (Add, Sub, Mul, Scale) with strict shape checks.
//   - Tolerance-based equality (Equal uses EqualityTolerance = 1e-5).
//   - Identity, Generate and Random factories.
//   - Text and JSON codecs used by answer sinks and case stores.
//
// Zero-sized shapes are legal: a rows×0 Dense is the "no right-hand side"
// companion that elimination routines carry in lockstep with the coefficients.
//
// Every Dense owns its storage outright. Clone is deep; Row returns a view
// into the owner's buffer and is invalidated by Resize and Transpose.
package matrix
