// SPDX-License-Identifier: MIT

// Package harness runs SLE solvers over a catalogue of example systems and
// grades their answers.
//
// A Tester holds an ordered list of Cases, each a system (A, F) with an
// optional reference answer. Next hands out cases in order and wraps around;
// Check grades an answer against the case handed out last:
//
//	[OK] matches the reference within matrix.EqualityTolerance
//	[WA] differs from the reference
//	[PR] no reference answer, pending review
//	[IT] the solver rejected the system (no/infinite solutions, divergence)
//
// Run drives a sle.Solver over every case, logs each verdict through
// log/slog and returns a Report. An answer hook lets callers persist every
// produced answer (see package answers).
//
// The built-in catalogue (Catalogue, DefaultCases) contains hand-written
// systems with known answers, three textbook systems without answers, two
// generated families of parameterised systems and random symmetric positive
// definite systems. CaseStore abstracts where a catalogue is kept;
// MemoryStore is the in-process implementation and harness/sqlitestore the
// persistent one.
package harness
