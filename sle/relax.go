// SPDX-License-Identifier: MIT
// Package sle: relaxation-factor sweep.

package sle

import (
	"errors"
	"math"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// DefaultRelaxationStep is the w grid spacing used by BestRelaxation.
const DefaultRelaxationStep = 1e-3

// RelaxationResult is the fastest w found by BestRelaxation.
type RelaxationResult struct {
	W          float64
	Iterations int
	Converged  bool
}

// BestRelaxation runs SOR for w = step, 2·step, ... while w <= 2-step and
// returns the w with the fewest iterations (the smallest such w on ties).
//
// Behavior highlights:
//   - Runs that diverge are skipped.
//   - Runs that hit the cap still compete with Iterations == cap.
//   - opts configure eps, the cap and metrics; any relaxation in opts is
//     overridden by the sweep.
//
// Errors: ErrInvalidParameter when step is not in (0, 1); shape errors from
// SOR; ErrDivergent when every w diverged.
func BestRelaxation(a, f *matrix.Dense, step float64, opts ...Option) (RelaxationResult, error) {
	if math.IsNaN(step) || step <= 0 || step >= 1 {
		return RelaxationResult{}, sleErrorf(opBestRelaxation, ErrInvalidParameter)
	}

	best := RelaxationResult{}
	found := false
	limit := 2 - step + step*1e-6 // tolerate rounding of k·step at the top end
	runOpts := append(append([]Option(nil), opts...), nil)
	for k := 1; ; k++ {
		w := float64(k) * step
		if w > limit {
			break
		}
		runOpts[len(runOpts)-1] = WithRelaxation(w)
		res, err := SOR(a, f, runOpts...)
		if errors.Is(err, ErrDivergent) {
			continue
		}
		if err != nil {
			return RelaxationResult{}, sleErrorf(opBestRelaxation, err)
		}
		if !found || res.Iterations < best.Iterations {
			best = RelaxationResult{W: w, Iterations: res.Iterations, Converged: res.Converged}
			found = true
		}
	}
	if !found {
		return RelaxationResult{}, sleErrorf(opBestRelaxation, ErrDivergent)
	}

	return best, nil
}
