// SPDX-License-Identifier: MIT
// Package harness: sentinel error set.

package harness

import "errors"

var (
	// ErrNoCases is returned by Next, Check and Run on an empty Tester.
	ErrNoCases = errors.New("harness: no cases in collection")

	// ErrNotStarted is returned by Check before the first Next.
	ErrNotStarted = errors.New("harness: no case has been handed out")

	// ErrNoAnswer is returned by Check when the answer to grade is nil.
	ErrNoAnswer = errors.New("harness: no answer to check")

	// ErrInvalidCase reports a case without a coefficient matrix or right-hand side.
	ErrInvalidCase = errors.New("harness: invalid case")
)
