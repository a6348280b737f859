// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gaussjordan/answers"
	"github.com/katalvlaran/gaussjordan/gauss"
	"github.com/katalvlaran/gaussjordan/harness"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/sle"
)

// Output folders.
const (
	dirTests       = "tests"
	dirNaive       = "naive"
	dirMaxElement  = "max_element"
	dirSOR         = "sor"
	dirDeterminant = "determinants"
	dirInverse     = "inverse_matrices"
	dirStability   = "gauss_stability"
	dirConvergence = "iter_convergence"
)

const txt = ".txt"

type bench struct {
	cfg     config
	sink    answers.Sink
	log     *slog.Logger
	metrics *sle.Metrics
}

type solverRun struct {
	name  string
	dir   string
	solve sle.Solver
}

func (b *bench) run(ctx context.Context, cases []harness.Case) error {
	if len(cases) == 0 {
		return harness.ErrNoCases
	}
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if err := b.writeTests(ctx, cases); err != nil {
		return err
	}

	runs := []solverRun{
		{name: gauss.PivotNaive.String(), dir: dirNaive, solve: sle.SolveNaive},
		{name: gauss.PivotMaxElement.String(), dir: dirMaxElement, solve: sle.SolveMaxElement},
		{name: "sor", dir: dirSOR, solve: sle.SORSolver(sle.WithMetrics(b.metrics))},
	}
	for _, r := range runs {
		if err := b.runSolver(ctx, cases, r); err != nil {
			return err
		}
	}

	dets, err := b.determinants(ctx, cases)
	if err != nil {
		return err
	}
	if err = b.inverses(ctx, cases, dets); err != nil {
		return err
	}
	if err = b.stability(ctx, cases); err != nil {
		return err
	}
	if b.cfg.SkipRelax {
		b.log.Info("relaxation sweep skipped")
		return nil
	}

	return b.convergence(ctx, cases)
}

// reset clears dir so stale answers from a previous run never survive.
func (b *bench) reset(ctx context.Context, dir string) error {
	if err := b.sink.Clear(ctx, dir+"/"); err != nil {
		return fmt.Errorf("clear %s: %w", dir, err)
	}

	return nil
}

func (b *bench) key(dir, name string, i, total int) string {
	return answers.Key(dir, name, i+1, total, txt)
}

// writeTests stores each system as A then f in the matrix.WriteText layout,
// readable back with matrix.NewTextDecoder.
func (b *bench) writeTests(ctx context.Context, cases []harness.Case) error {
	if err := b.reset(ctx, dirTests); err != nil {
		return err
	}
	var buf bytes.Buffer
	for i, c := range cases {
		buf.Reset()
		if err := matrix.WriteText(&buf, c.A); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		if err := matrix.WriteText(&buf, c.F); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		if err := b.sink.Put(ctx, b.key(dirTests, "test", i, len(cases)), buf.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func (b *bench) runSolver(ctx context.Context, cases []harness.Case, r solverRun) error {
	if err := b.reset(ctx, r.dir); err != nil {
		return err
	}
	total := len(cases)
	hook := func(ctx context.Context, index int, _ harness.Case, x *matrix.Dense) error {
		return answers.WriteMatrix(ctx, b.sink, b.key(r.dir, "ans", index, total), x, b.cfg.Precision)
	}

	t := harness.NewTester(cases...)
	rep, err := t.Run(ctx, r.name, sle.Instrument(r.name, r.solve, b.metrics),
		harness.WithLogger(b.log), harness.WithAnswerFunc(hook))
	if err != nil {
		return fmt.Errorf("%s: %w", r.name, err)
	}
	if !rep.AllPassed() {
		b.log.Warn("solver disagrees with reference answers", "solver", r.name,
			"wrong", rep.Wrong, "incorrect", rep.Incorrect)
	}

	return nil
}

// determinants writes det(A) for every square case; the returned slice holds
// NaN for the rest.
func (b *bench) determinants(ctx context.Context, cases []harness.Case) ([]float64, error) {
	if err := b.reset(ctx, dirDeterminant); err != nil {
		return nil, err
	}
	dets := make([]float64, len(cases))
	for i, c := range cases {
		d, err := gauss.Determinant(c.A)
		if err != nil {
			dets[i] = math.NaN()
			b.log.Warn("determinant skipped", "case", i+1, "name", c.Name, "err", err)
			continue
		}
		dets[i] = d
		if err = answers.WriteValue(ctx, b.sink, b.key(dirDeterminant, "det", i, len(cases)), "%g", d); err != nil {
			return nil, err
		}
	}

	return dets, nil
}

func (b *bench) inverses(ctx context.Context, cases []harness.Case, dets []float64) error {
	if err := b.reset(ctx, dirInverse); err != nil {
		return err
	}
	for i, c := range cases {
		if math.IsNaN(dets[i]) || math.Abs(dets[i]) <= matrix.EqualityTolerance {
			continue
		}
		inv, err := gauss.Inverse(c.A)
		if err != nil {
			b.log.Warn("inverse skipped", "case", i+1, "name", c.Name, "err", err)
			continue
		}
		if err = answers.WriteMatrix(ctx, b.sink, b.key(dirInverse, "inv", i, len(cases)), inv, b.cfg.Precision); err != nil {
			return err
		}
	}

	return nil
}

// stability perturbs every case with a generator re-seeded from cfg.Seed,
// so each file is reproducible on its own.
func (b *bench) stability(ctx context.Context, cases []harness.Case) error {
	if err := b.reset(ctx, dirStability); err != nil {
		return err
	}
	worst := 0.0
	for i, c := range cases {
		dev, err := sle.Stability(c.A, c.F, sle.SolveMaxElement, matrix.NewRNG(b.cfg.Seed), b.cfg.StabilityDelta)
		if err != nil {
			b.log.Warn("stability skipped", "case", i+1, "name", c.Name, "outcome", sle.Outcome(err), "err", err)
			continue
		}
		worst = math.Max(worst, dev)
		if err = answers.WriteValue(ctx, b.sink, b.key(dirStability, "stab", i, len(cases)), "%g", dev); err != nil {
			return err
		}
	}
	b.log.Info("stability finished", "max_deviation", worst, "delta", b.cfg.StabilityDelta)

	return nil
}

// convergence writes "iterations (w)" for the fastest relaxation factor, or
// "-1 (-1)" when no factor produced a usable run.
func (b *bench) convergence(ctx context.Context, cases []harness.Case) error {
	if err := b.reset(ctx, dirConvergence); err != nil {
		return err
	}
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return err
		}
		key := b.key(dirConvergence, "cov", i, len(cases))
		best, err := sle.BestRelaxation(c.A, c.F, b.cfg.RelaxStep)
		if err != nil {
			if !errors.Is(err, sle.ErrDivergent) && !errors.Is(err, sle.ErrNotSquare) &&
				!errors.Is(err, sle.ErrDimensionMismatch) {
				return err
			}
			b.log.Warn("no convergent relaxation", "case", i+1, "name", c.Name, "err", err)
			if err = answers.WriteValue(ctx, b.sink, key, "-1 (-1)"); err != nil {
				return err
			}
			continue
		}
		if err = answers.WriteValue(ctx, b.sink, key, "%d (%g)", best.Iterations, best.W); err != nil {
			return err
		}
		b.log.Info("best relaxation", "case", i+1, "name", c.Name, "w", best.W,
			"iterations", best.Iterations, "converged", best.Converged)
	}

	return nil
}
