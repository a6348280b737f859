// SPDX-License-Identifier: MIT

// Command slebench runs every linear-system solver over the case catalogue
// and writes the results to an answer sink:
//
//	tests/testNN.txt                A, then f, in the matrix.WriteText layout
//	naive/ansNN.txt                 Gauss-Jordan, naive pivoting
//	max_element/ansNN.txt           Gauss-Jordan, max-element pivoting
//	sor/ansNN.txt                   successive over-relaxation
//	determinants/detNN.txt
//	inverse_matrices/invNN.txt      non-singular square cases only
//	gauss_stability/stabNN.txt      RMS deviation under perturbation
//	iter_convergence/covNN.txt      "iterations (w)" of the best relaxation
//
// Usage:
//
//	slebench [-out dir] [-sink fs|s3] [-db cases.db] [-seed n]
//	         [-metrics-file m.prom] [-stability-delta d] [-relax-step s]
//	         [-skip-relax] [-precision p]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gaussjordan/answers"
	answersfs "github.com/katalvlaran/gaussjordan/answers/fs"
	answerss3 "github.com/katalvlaran/gaussjordan/answers/s3"
	"github.com/katalvlaran/gaussjordan/harness"
	"github.com/katalvlaran/gaussjordan/harness/sqlitestore"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/sle"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stderr)
	stop()
	exitFunc(code)
}

func run(ctx context.Context, args []string, getenv func(string) string, stderr io.Writer) int {
	cfg, err := parseConfig(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "slebench:", err)
		return 2
	}
	log := slog.New(slog.NewTextHandler(stderr, nil))

	sink, err := openSink(ctx, cfg)
	if err != nil {
		log.Error("open sink", "driver", cfg.Sink, "err", err)
		return 1
	}
	cases, err := loadCases(ctx, cfg, log)
	if err != nil {
		log.Error("load cases", "err", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	metrics, err := sle.NewMetrics(reg)
	if err != nil {
		log.Error("register metrics", "err", err)
		return 1
	}

	b := &bench{cfg: cfg, sink: sink, log: log, metrics: metrics}
	if err := b.run(ctx, cases); err != nil {
		log.Error("bench failed", "err", err)
		return 1
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			log.Error("write metrics", "path", cfg.MetricsFile, "err", err)
			return 1
		}
	}

	return 0
}

func openSink(ctx context.Context, cfg config) (answers.Sink, error) {
	switch cfg.Sink {
	case answers.DriverS3:
		return answerss3.OpenFromEnv(ctx)
	default:
		return answersfs.New(cfg.Out)
	}
}

// loadCases returns the SQLite catalogue at cfg.DB, seeding it with the
// built-in catalogue when empty, or the built-in catalogue when no DB is set.
func loadCases(ctx context.Context, cfg config, log *slog.Logger) ([]harness.Case, error) {
	if cfg.DB == "" {
		return harness.Catalogue(matrix.NewRNG(cfg.Seed))
	}

	store, err := sqlitestore.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	cases, err := store.LoadCases(ctx)
	if err != nil {
		return nil, err
	}
	if len(cases) > 0 {
		log.Info("catalogue loaded", "path", store.Path(), "cases", len(cases))
		return cases, nil
	}

	if cases, err = harness.Catalogue(matrix.NewRNG(cfg.Seed)); err != nil {
		return nil, err
	}
	if err = store.SaveCases(ctx, cases); err != nil {
		return nil, err
	}
	log.Info("catalogue seeded", "path", store.Path(), "cases", len(cases))

	return cases, nil
}
