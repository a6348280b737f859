package main

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/answers"
	"github.com/katalvlaran/gaussjordan/harness"
	"github.com/katalvlaran/gaussjordan/harness/sqlitestore"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/sle"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, env(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, config{
		Out:            defaultOut,
		Sink:           answers.DriverFilesystem,
		StabilityDelta: sle.DefaultPerturbation,
		RelaxStep:      sle.DefaultRelaxationStep,
		Precision:      defaultPrecision,
	}, cfg)
}

func TestParseConfig_EnvAndFlags(t *testing.T) {
	e := env(map[string]string{
		envOut: "/tmp/x", envSink: "S3", envSeed: "42", envRelaxStep: "0.01", envPrecision: "3",
	})
	cfg, err := parseConfig([]string{"-out", "here", "-skip-relax", "-stability-delta", "0.5"}, e, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "here", cfg.Out)
	assert.Equal(t, answers.DriverS3, cfg.Sink)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.01, cfg.RelaxStep)
	assert.Equal(t, 0.5, cfg.StabilityDelta)
	assert.Equal(t, 3, cfg.Precision)
	assert.True(t, cfg.SkipRelax)
}

func TestParseConfig_Errors(t *testing.T) {
	cases := map[string]struct {
		args []string
		env  map[string]string
	}{
		"unknown sink":  {args: []string{"-sink", "ftp"}},
		"bad step":      {args: []string{"-relax-step", "1.5"}},
		"negative prec": {args: []string{"-precision", "-1"}},
		"negative eps":  {args: []string{"-stability-delta", "-1"}},
		"stray arg":     {args: []string{"extra"}},
		"bad env seed":  {env: map[string]string{envSeed: "abc"}},
		"bad env delta": {env: map[string]string{envStabilityDelta: "x"}},
		"unknown flag":  {args: []string{"-nope"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(tc.args, env(tc.env), io.Discard)
			require.Error(t, err)
		})
	}
}

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), []string{"-sink", "ftp"}, env(nil), &stderr))
	assert.Contains(t, stderr.String(), "unknown sink")
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, env(nil), io.Discard))
}

func smallCases() []harness.Case {
	return []harness.Case{
		{
			Name:   "diagonal",
			A:      matrix.MustFromRows([][]float64{{4, 0}, {0, 5}}),
			F:      matrix.Column(8, 10),
			Answer: matrix.Column(2, 2),
		},
		{
			Name: "wide",
			A:    matrix.MustFromRows([][]float64{{1, 2, 3}, {2, 4, 6}}),
			F:    matrix.Column(1, 2),
		},
	}
}

func newTestBench(t *testing.T, cfg config) (*bench, *answers.Memory) {
	t.Helper()
	m, err := sle.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	sink := answers.NewMemory()

	return &bench{cfg: cfg, sink: sink, log: slog.New(slog.NewTextHandler(io.Discard, nil)), metrics: m}, sink
}

func TestBench_Outputs(t *testing.T) {
	b, sink := newTestBench(t, config{Precision: 1, StabilityDelta: 1e-3, RelaxStep: 0.5})
	require.NoError(t, sink.Put(context.Background(), "naive/stale.txt", []byte("old")))
	require.NoError(t, b.run(context.Background(), smallCases()))

	keys := sink.Keys()
	for _, k := range []string{
		"tests/test1.txt", "tests/test2.txt",
		"naive/ans1.txt", "max_element/ans1.txt", "sor/ans1.txt",
		"determinants/det1.txt", "inverse_matrices/inv1.txt",
		"gauss_stability/stab1.txt",
		"iter_convergence/cov1.txt", "iter_convergence/cov2.txt",
	} {
		assert.Contains(t, keys, k)
	}
	assert.NotContains(t, keys, "naive/stale.txt")
	assert.NotContains(t, keys, "naive/ans2.txt", "infinite solutions are not written")
	assert.NotContains(t, keys, "determinants/det2.txt")
	assert.NotContains(t, keys, "inverse_matrices/inv2.txt")

	get := func(k string) string {
		body, ok := sink.Get(k)
		require.True(t, ok, k)
		return string(body)
	}
	assert.Equal(t, "-------\n| 2.0 |\n-------\n| 2.0 |\n-------\n", get("naive/ans1.txt"))
	assert.Equal(t, "20\n", get("determinants/det1.txt"))
	assert.Equal(t, "2 (1)\n", get("iter_convergence/cov1.txt"))
	assert.Equal(t, "-1 (-1)\n", get("iter_convergence/cov2.txt"))
	assert.Equal(t, "2 2\n4 0\n0 5\n2 1\n8\n10\n", get("tests/test1.txt"))

	dec := matrix.NewTextDecoder(strings.NewReader(get("tests/test2.txt")))
	a, err := dec.Decode()
	require.NoError(t, err)
	f, err := dec.Decode()
	require.NoError(t, err)
	assert.True(t, matrix.Equal(smallCases()[1].A, a))
	assert.True(t, matrix.Equal(smallCases()[1].F, f))
}

func TestBench_RejectsInvalidCase(t *testing.T) {
	b, sink := newTestBench(t, config{Precision: 2, SkipRelax: true})
	err := b.run(context.Background(), []harness.Case{{Name: "bad", F: matrix.Column(1)}})
	require.ErrorIs(t, err, harness.ErrInvalidCase)
	assert.Empty(t, sink.Keys())
}

func TestBench_SkipRelax(t *testing.T) {
	b, sink := newTestBench(t, config{Precision: 2, SkipRelax: true})
	require.NoError(t, b.run(context.Background(), smallCases()[:1]))
	for _, k := range sink.Keys() {
		assert.False(t, strings.HasPrefix(k, dirConvergence+"/"), k)
	}
	require.ErrorIs(t, b.run(context.Background(), nil), harness.ErrNoCases)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "answers")
	db := filepath.Join(dir, "cases.db")
	prom := filepath.Join(dir, "metrics.prom")

	var stderr bytes.Buffer
	code := run(context.Background(),
		[]string{"-out", out, "-db", db, "-metrics-file", prom, "-skip-relax", "-seed", "7"},
		env(nil), &stderr)
	require.Equal(t, 0, code, stderr.String())

	store, err := sqlitestore.Open(context.Background(), db)
	require.NoError(t, err)
	n, err := store.Count(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.Equal(t, 27, n)

	_, err = os.Stat(filepath.Join(out, "max_element", "ans01.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "tests", "test27.txt"))
	require.NoError(t, err)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "gaussjordan_sle_solves_total")

	// second run reuses the seeded catalogue
	stderr.Reset()
	require.Equal(t, 0, run(context.Background(), []string{"-out", out, "-db", db, "-skip-relax"}, env(nil), &stderr))
	assert.Contains(t, stderr.String(), "catalogue loaded")
}

func TestRun_InvalidStoredCase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.db")

	store, err := sqlitestore.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO cases(position, name, payload) VALUES(0, 'bad', ?)`,
		`{"name":"bad","a":null,"f":[[1]]}`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var stderr bytes.Buffer
	code := run(ctx, []string{"-db", path, "-out", filepath.Join(dir, "out"), "-skip-relax"}, env(nil), &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid")
}
