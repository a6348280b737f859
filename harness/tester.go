// SPDX-License-Identifier: MIT
// Package harness: the cycling tester.

package harness

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Verdict grades one answer.
type Verdict int

const (
	// VerdictOK: the answer matches the reference.
	VerdictOK Verdict = iota
	// VerdictWrong: the answer differs from the reference.
	VerdictWrong
	// VerdictPending: the case has no reference; the answer needs review.
	VerdictPending
	// VerdictIncorrectTest: the solver rejected the system.
	VerdictIncorrectTest
)

// String returns the two-letter tag: OK, WA, PR or IT.
func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "OK"
	case VerdictWrong:
		return "WA"
	case VerdictPending:
		return "PR"
	case VerdictIncorrectTest:
		return "IT"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Tester hands out cases in order, wrapping around at the end, and grades
// answers against the case handed out last. Not safe for concurrent use.
type Tester struct {
	cases []Case
	cur   int // index handed out by the next call to Next
	last  int // index handed out last; -1 before the first Next
}

// NewTester returns a Tester over cases (kept in order).
func NewTester(cases ...Case) *Tester {
	t := &Tester{last: -1}
	t.cases = append(t.cases, cases...)

	return t
}

// Add appends a case.
func (t *Tester) Add(c Case) { t.cases = append(t.cases, c) }

// Len returns the number of cases.
func (t *Tester) Len() int { return len(t.cases) }

// Cases returns the cases in order. The slice is a copy; matrices are shared.
func (t *Tester) Cases() []Case { return append([]Case(nil), t.cases...) }

// Current returns the index the next call to Next will hand out.
func (t *Tester) Current() int { return t.cur }

// SetCurrent moves the cursor to i, clamped to [0, Len()-1]. The clamped
// index also counts as the last case handed out.
func (t *Tester) SetCurrent(i int) {
	switch {
	case len(t.cases) == 0 || i < 0:
		i = 0
	case i >= len(t.cases):
		i = len(t.cases) - 1
	}
	t.cur, t.last = i, i
	if len(t.cases) == 0 {
		t.last = -1
	}
}

// Reset restarts from the first case.
func (t *Tester) Reset() {
	t.SetCurrent(0)
	t.last = -1
}

// Next returns the next case, wrapping to the first after the last.
// Errors: ErrNoCases.
func (t *Tester) Next() (Case, error) {
	if len(t.cases) == 0 {
		return Case{}, ErrNoCases
	}
	if t.cur >= len(t.cases) {
		t.cur = 0
	}
	t.last = t.cur
	t.cur++

	return t.cases[t.last], nil
}

// Last returns the index of the case handed out last, or -1.
func (t *Tester) Last() int { return t.last }

// Check grades answer against the case handed out last.
// Errors: ErrNoCases, ErrNotStarted, ErrNoAnswer.
func (t *Tester) Check(answer *matrix.Dense) (Verdict, error) {
	if len(t.cases) == 0 {
		return 0, ErrNoCases
	}
	if t.last < 0 || t.last >= len(t.cases) {
		return 0, ErrNotStarted
	}
	if answer == nil {
		return 0, ErrNoAnswer
	}
	c := t.cases[t.last]
	switch {
	case !c.HasAnswer():
		return VerdictPending, nil
	case matrix.Equal(c.Answer, answer):
		return VerdictOK, nil
	default:
		return VerdictWrong, nil
	}
}
