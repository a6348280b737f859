// SPDX-License-Identifier: MIT
// Package harness: driving a solver over every case.

package harness

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/sle"
)

// AnswerFunc receives every answer a solver produced, before it is graded.
// index is zero-based. A non-nil error aborts Run.
type AnswerFunc func(ctx context.Context, index int, c Case, answer *matrix.Dense) error

// CaseResult is the outcome of one case.
type CaseResult struct {
	Index   int
	Name    string
	Verdict Verdict
	Answer  *matrix.Dense // nil when the solver failed
	Err     error         // solver error behind VerdictIncorrectTest
	Elapsed time.Duration
}

// Report summarises a Run.
type Report struct {
	Solver    string
	Results   []CaseResult
	Passed    int
	Wrong     int
	Pending   int
	Incorrect int
}

// AllPassed reports whether no case was graded WA or IT. Pending cases do
// not count against the run.
func (r Report) AllPassed() bool { return r.Wrong == 0 && r.Incorrect == 0 }

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	logger   *slog.Logger
	onAnswer AnswerFunc
}

// WithLogger routes verdict records to l. nil discards them.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// WithAnswerFunc installs a hook called with every produced answer.
func WithAnswerFunc(fn AnswerFunc) RunOption {
	return func(c *runConfig) { c.onAnswer = fn }
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// Run resets t and solves every case once with solve, in order.
//
// A solver error grades the case IT and the run continues; a failing answer
// hook or a cancelled ctx stops the run and returns the partial report
// together with the error.
//
// Errors: ErrNoCases, ctx.Err(), errors from the answer hook.
func (t *Tester) Run(ctx context.Context, name string, solve sle.Solver, opts ...RunOption) (Report, error) {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}
	log = log.With("solver", name)

	rep := Report{Solver: name}
	if t.Len() == 0 {
		return rep, ErrNoCases
	}

	t.Reset()
	for i := 0; i < t.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		c, _ := t.Next()
		res := CaseResult{Index: i, Name: c.Name}

		start := time.Now()
		x, err := solve(c.A, c.F)
		res.Elapsed = time.Since(start)
		if err != nil {
			res.Verdict, res.Err = VerdictIncorrectTest, err
			rep.add(res)
			log.Warn("case rejected", "verdict", res.Verdict.String(), "case", i+1, "name", c.Name,
				"outcome", sle.Outcome(err), "err", err)
			continue
		}
		res.Answer = x

		if cfg.onAnswer != nil {
			if err = cfg.onAnswer(ctx, i, c, x); err != nil {
				return rep, err
			}
		}

		if res.Verdict, err = t.Check(x); err != nil {
			return rep, err
		}
		rep.add(res)

		switch res.Verdict {
		case VerdictOK:
			log.Info("case passed", "verdict", res.Verdict.String(), "case", i+1, "name", c.Name,
				"elapsed", res.Elapsed)
		case VerdictPending:
			log.Info("case can't be checked", "verdict", res.Verdict.String(), "case", i+1, "name", c.Name,
				"elapsed", res.Elapsed)
		default:
			log.Warn("case failed", "verdict", res.Verdict.String(), "case", i+1, "name", c.Name,
				"want", c.Answer.String(), "got", x.String())
		}
	}
	log.Info("run finished", "passed", rep.Passed, "wrong", rep.Wrong,
		"pending", rep.Pending, "incorrect", rep.Incorrect, "all_passed", rep.AllPassed())

	return rep, nil
}

func (r *Report) add(res CaseResult) {
	r.Results = append(r.Results, res)
	switch res.Verdict {
	case VerdictOK:
		r.Passed++
	case VerdictWrong:
		r.Wrong++
	case VerdictPending:
		r.Pending++
	case VerdictIncorrectTest:
		r.Incorrect++
	}
}
