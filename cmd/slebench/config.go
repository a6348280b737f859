// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gaussjordan/answers"
	"github.com/katalvlaran/gaussjordan/sle"
)

// Environment fallbacks; an explicit flag always wins.
const (
	envOut            = "SLEBENCH_OUT"
	envSink           = "SLEBENCH_SINK"
	envDB             = "SLEBENCH_DB"
	envSeed           = "SLEBENCH_SEED"
	envMetricsFile    = "SLEBENCH_METRICS_FILE"
	envStabilityDelta = "SLEBENCH_STABILITY_DELTA"
	envRelaxStep      = "SLEBENCH_RELAX_STEP"
	envPrecision      = "SLEBENCH_PRECISION"
)

const (
	defaultOut       = "answers"
	defaultPrecision = 6
)

var errUsage = errors.New("usage")

type config struct {
	Out            string
	Sink           answers.Driver
	DB             string
	Seed           int64
	MetricsFile    string
	StabilityDelta float64
	RelaxStep      float64
	SkipRelax      bool
	Precision      int
}

func envString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}

	return def
}

func envFloat(getenv func(string) string, key string, def float64) (float64, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}

	return f, nil
}

func envInt(getenv func(string) string, key string, def int64) (int64, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}

	return n, nil
}

// parseConfig reads flags from args with defaults taken from getenv.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config
	seed, err := envInt(getenv, envSeed, 0)
	if err != nil {
		return cfg, err
	}
	prec, err := envInt(getenv, envPrecision, defaultPrecision)
	if err != nil {
		return cfg, err
	}
	delta, err := envFloat(getenv, envStabilityDelta, sle.DefaultPerturbation)
	if err != nil {
		return cfg, err
	}
	step, err := envFloat(getenv, envRelaxStep, sle.DefaultRelaxationStep)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("slebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Out, "out", envString(getenv, envOut, defaultOut), "output directory for the fs sink")
	sink := fs.String("sink", envString(getenv, envSink, string(answers.DriverFilesystem)), "answer sink: fs|s3")
	fs.StringVar(&cfg.DB, "db", envString(getenv, envDB, ""), "SQLite case catalogue (seeded when empty); built-in catalogue if unset")
	fs.Int64Var(&cfg.Seed, "seed", seed, "seed for random systems and perturbations")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", envString(getenv, envMetricsFile, ""), "write Prometheus metrics in text format to this file")
	fs.Float64Var(&cfg.StabilityDelta, "stability-delta", delta, "perturbation bound for the stability check")
	fs.Float64Var(&cfg.RelaxStep, "relax-step", step, "relaxation factor step for the convergence sweep")
	fs.BoolVar(&cfg.SkipRelax, "skip-relax", false, "skip the relaxation sweep")
	fs.IntVar(&cfg.Precision, "precision", int(prec), "fractional digits in matrix output")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	cfg.Sink = answers.Driver(strings.ToLower(*sink))
	switch cfg.Sink {
	case answers.DriverFilesystem, answers.DriverS3:
	default:
		return cfg, fmt.Errorf("%w: unknown sink %q", errUsage, *sink)
	}
	if cfg.Precision < 0 {
		return cfg, fmt.Errorf("%w: negative precision %d", errUsage, cfg.Precision)
	}
	if cfg.StabilityDelta < 0 {
		return cfg, fmt.Errorf("%w: negative stability delta %g", errUsage, cfg.StabilityDelta)
	}
	if !cfg.SkipRelax && (cfg.RelaxStep <= 0 || cfg.RelaxStep >= 1) {
		return cfg, fmt.Errorf("%w: relax step %g not in (0, 1)", errUsage, cfg.RelaxStep)
	}

	return cfg, nil
}
