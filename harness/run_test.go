package harness_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/gaussjordan/harness"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/sle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedCases() []harness.Case {
	return []harness.Case{
		{Name: "ok", A: matrix.MustFromRows([][]float64{{4, 0}, {0, 5}}), F: matrix.Column(1, 1), Answer: matrix.Column(0.25, 0.2)},
		{Name: "wrong", A: matrix.MustFromRows([][]float64{{1, 0}, {0, 1}}), F: matrix.Column(1, 1), Answer: matrix.Column(2, 2)},
		{Name: "pending", A: matrix.MustFromRows([][]float64{{2, -2, 0, 1}, {2, 3, 1, -3}, {3, 4, -1, 2}, {1, 3, 1, -1}}), F: matrix.Column(-3, -6, 0, 2)},
		{Name: "infinite", A: matrix.MustFromRows([][]float64{{1, 2}, {2, 4}}), F: matrix.Column(3, 6)},
	}
}

func TestRun_Report(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tr := harness.NewTester(mixedCases()...)

	var seen []int
	hook := func(_ context.Context, i int, _ harness.Case, x *matrix.Dense) error {
		require.NotNil(t, x)
		seen = append(seen, i)
		return nil
	}

	rep, err := tr.Run(context.Background(), "max_element", sle.SolveMaxElement,
		harness.WithLogger(logger), harness.WithAnswerFunc(hook))
	require.NoError(t, err)

	assert.Equal(t, "max_element", rep.Solver)
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Wrong)
	assert.Equal(t, 1, rep.Pending)
	assert.Equal(t, 1, rep.Incorrect)
	assert.False(t, rep.AllPassed())
	require.Len(t, rep.Results, 4)
	assert.ErrorIs(t, rep.Results[3].Err, sle.ErrInfiniteSolutions)
	assert.Nil(t, rep.Results[3].Answer)
	assert.Equal(t, []int{0, 1, 2}, seen, "hook skipped for rejected systems")

	out := buf.String()
	for _, tag := range []string{"verdict=OK", "verdict=WA", "verdict=PR", "verdict=IT", "outcome=infinite"} {
		assert.Contains(t, out, tag)
	}
}

func TestRun_HookErrorStops(t *testing.T) {
	boom := errors.New("disk full")
	tr := harness.NewTester(mixedCases()...)
	rep, err := tr.Run(context.Background(), "naive", sle.SolveNaive,
		harness.WithAnswerFunc(func(context.Context, int, harness.Case, *matrix.Dense) error { return boom }))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, rep.Results)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := harness.NewTester(mixedCases()...).Run(ctx, "naive", sle.SolveNaive)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	_, err := harness.NewTester().Run(context.Background(), "naive", sle.SolveNaive)
	require.ErrorIs(t, err, harness.ErrNoCases)
}

func TestRun_AllPassedOnKnownAnswers(t *testing.T) {
	var known []harness.Case
	for _, c := range harness.DefaultCases() {
		if c.HasAnswer() {
			known = append(known, c)
		}
	}
	require.Len(t, known, 7)

	for name, solve := range map[string]sle.Solver{
		"naive":       sle.SolveNaive,
		"max_element": sle.SolveMaxElement,
	} {
		rep, err := harness.NewTester(known...).Run(context.Background(), name, solve)
		require.NoError(t, err)
		assert.True(t, rep.AllPassed(), name)
		assert.Equal(t, 7, rep.Passed, name)
	}
}
